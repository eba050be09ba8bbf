package entities

import "time"

// FieldMapping maps one field of an external schema to a CSL variable.
type FieldMapping struct {
	Name     string
	Variable string
	Status   string
}

// MappingReport is the result of comparing a field mapping document with the
// set of CSL variables.
type MappingReport struct {
	Title       string
	Fields      []FieldMapping
	Uncovered   []string
	GeneratedAt time.Time
}

// Count returns the number of fields with the given status.
func (r MappingReport) Count(status string) int {
	n := 0
	for _, f := range r.Fields {
		if f.Status == status {
			n++
		}
	}
	return n
}
