package domain

import "fmt"

// FieldIssue records a data problem that was recovered from while reading a record.
// Issues never abort processing of the rest of the collection.
type FieldIssue struct {
	Index    int       `json:"index"`
	RecordID string    `json:"record_id,omitempty"`
	Field    string    `json:"field"`
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"message"`
}

func (i FieldIssue) String() string {
	id := i.RecordID
	if id == "" {
		id = fmt.Sprintf("#%d", i.Index)
	}
	return fmt.Sprintf("%s %s: %s (%s)", id, i.Field, i.Message, i.Kind)
}

// ValidationReport summarizes a dataset check.
type ValidationReport struct {
	Source  string       `json:"source"`
	Total   int          `json:"total"`
	Valid   int          `json:"valid"`
	Issues  []FieldIssue `json:"issues"`
	Invalid []string     `json:"invalid"`
}

// OK reports whether every record passed the required-field checks.
func (r ValidationReport) OK() bool {
	return r.Valid == r.Total
}
