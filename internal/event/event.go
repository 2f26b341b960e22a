package event

import "fmt"

// Category is the closed set of event kinds the system understands.
type Category string

const (
	CategoryLab        Category = "Lab"
	CategoryAssignment Category = "Assignment"
	CategoryExam       Category = "Exam"
	CategoryMidterm    Category = "Midterm"
	CategoryQuiz       Category = "Quiz"
	CategoryProject    Category = "Project"
	CategoryOther      Category = "Other"
)

// Categories lists every allowed category.
var Categories = []Category{
	CategoryLab,
	CategoryAssignment,
	CategoryExam,
	CategoryMidterm,
	CategoryQuiz,
	CategoryProject,
	CategoryOther,
}

// ParseCategory validates a caller-supplied type string against the
// allowed set. Construction-time validation keeps arbitrary strings out
// of stored records.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Provenance values for stored events.
const (
	SourcePDFUpload = "pdf_upload"
	SourceManual    = "manual"
)

// Event is a persisted calendar event. Start and End are ISO-8601 local
// datetime strings; the store assigns ID.
type Event struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Type          Category `json:"type"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	AllDay        bool     `json:"allDay"`
	Source        string   `json:"source"`
	Description   string   `json:"description"`
	Course        string   `json:"course"`
	ExtractedFrom string   `json:"extracted_from"`
}
