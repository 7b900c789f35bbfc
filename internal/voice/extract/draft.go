package extract

import "encoding/json"

// Category values a draft may carry.
const (
	CategoryWork     = "work"
	CategoryPersonal = "personal"
	CategoryStudy    = "study"
	CategoryHealth   = "health"
	CategoryOther    = "other"
)

// Categories lists the accepted draft categories.
var Categories = []string{CategoryWork, CategoryPersonal, CategoryStudy, CategoryHealth, CategoryOther}

// Draft is a structured task proposal extracted from a transcript.
// Absent fields are nil and serialize as null.
type Draft struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Deadline    *string `json:"deadline"`
}

// HasContent reports whether the draft has a title or a description.
func (d Draft) HasContent() bool {
	return d.Title != nil || d.Description != nil
}

// Merge combines two drafts field by field: model values win and rule
// values fill the gaps.
func Merge(model, rules Draft) Draft {
	return Draft{
		Title:       pick(model.Title, rules.Title),
		Description: pick(model.Description, rules.Description),
		Priority:    pick(model.Priority, rules.Priority),
		Category:    pick(model.Category, rules.Category),
		Deadline:    pick(model.Deadline, rules.Deadline),
	}
}

// String renders the draft as JSON for logs.
func (d Draft) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

func pick(primary, fallback *string) *string {
	if primary != nil {
		return primary
	}
	return fallback
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
