package reviews

import (
	"fmt"
	"strings"
)

// Validation is the structured outcome of checking a normalized table.
// Errors block aggregation; warnings never do.
type Validation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a normalized table for required columns and data sanity.
func Validate(t *Table) Validation {
	v := Validation{
		IsValid:  true,
		Errors:   []string{},
		Warnings: []string{},
	}

	var missing []string
	for _, f := range RequiredFields {
		if !t.Mapping.Resolved(f) {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		v.Errors = append(v.Errors, fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	if len(t.Rows) == 0 {
		v.Errors = append(v.Errors, "data file is empty")
	}

	if t.RawRatingOutOfRange > 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("found %d rows with out-of-range star rating", t.RawRatingOutOfRange))
	}

	v.IsValid = len(v.Errors) == 0
	return v
}
