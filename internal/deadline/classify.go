package deadline

import (
	"regexp"

	"github.com/plannerpal/plannerpal/internal/event"
)

// categoryChecks is ordered: a title containing both "midterm" and "exam"
// classifies as Midterm because that check runs first.
var categoryChecks = []struct {
	re  *regexp.Regexp
	cat event.Category
}{
	{regexp.MustCompile(`(?i)\bmidterm\b`), event.CategoryMidterm},
	{regexp.MustCompile(`(?i)\b(?:final|exam|test)\b`), event.CategoryExam},
	{regexp.MustCompile(`(?i)\bquiz\b`), event.CategoryQuiz},
	{regexp.MustCompile(`(?i)\blab\b`), event.CategoryLab},
	{regexp.MustCompile(`(?i)\b(?:assignment|hw|homework)\b`), event.CategoryAssignment},
	{regexp.MustCompile(`(?i)\b(?:project|presentation|report)\b`), event.CategoryProject},
}

// Classify infers the event category from keywords in the title. It is total
// over all inputs; anything unrecognized is Other.
func Classify(title string) event.Category {
	for _, check := range categoryChecks {
		if check.re.MatchString(title) {
			return check.cat
		}
	}
	return event.CategoryOther
}
