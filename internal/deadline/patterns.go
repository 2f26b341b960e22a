package deadline

import "regexp"

// Each pattern is a named matcher so title, time, and category logic can be
// exercised independently of the full extraction pipeline.
const (
	monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`
	dayPattern   = `\d{1,2}(?:st|nd|rd|th)?`
	yearPattern  = `\d{4}`
	timePattern  = `\d{1,2}:\d{2}\s?(?:AM|PM)`
)

var (
	// dateRe requires a four-digit year; a bare "March 5" is never a date,
	// which keeps arbitrary numbers in prose from becoming events.
	dateRe = regexp.MustCompile(`(?i)` + monthPattern + `\s+` + dayPattern + `,?\s+` + yearPattern)

	// timeRangeRe matches two clock times joined by a hyphen or a dash
	// variant. Normalization already folds dashes, but the originals are
	// still tolerated here.
	timeRangeRe  = regexp.MustCompile(`(?i)` + timePattern + `\s*[-\x{2013}\x{2014}]\s*` + timePattern)
	singleTimeRe = regexp.MustCompile(`(?i)` + timePattern)
	rangeSplitRe = regexp.MustCompile(`[-\x{2013}\x{2014}]`)

	// ignoredSectionsRe erases syllabus headings that would otherwise leak
	// into derived titles.
	ignoredSectionsRe = regexp.MustCompile(`(?i)\b(?:Course Description|Learning Outcomes|Late Policy|Office Hours|Resources|Academic Integrity)\b`)

	// titleSplitRe separates the clause owning the date from earlier prose:
	// sentence-like delimiters or a parenthesized grade weight like (25%).
	titleSplitRe  = regexp.MustCompile(`[.;|]\s*|\(\s*\d+%\s*\)`)
	percentRe     = regexp.MustCompile(`\b\d+%`)
	boilerplateRe = regexp.MustCompile(`(?i)\b(?:Component|Weight|Date\s*/?\s*Deadline|Important Dates)\b`)

	multiTitleSplitRe = regexp.MustCompile(`[,;]`)
	whitespaceRe      = regexp.MustCompile(`\s+`)

	// Canonicalization for the lenient date parser: drop ordinal suffixes
	// and fold the four-letter September abbreviation.
	ordinalRe = regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)`)
	septRe    = regexp.MustCompile(`(?i)\bSept\b`)
)
