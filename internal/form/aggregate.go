package form

// ValidateAll runs every field rule against values and returns the verdicts
// keyed by field.
func (v *Validator) ValidateAll(values Values) map[FieldName]Result {
	results := make(map[FieldName]Result, len(Fields))
	for _, f := range Fields {
		results[f] = v.Validate(f, values)
	}
	return results
}

// Failures returns the failing fields in display order with their messages.
func (v *Validator) Failures(values Values) []FieldFailure {
	var out []FieldFailure
	for _, f := range Fields {
		if r := v.Validate(f, values); !r.Valid {
			out = append(out, FieldFailure{Field: f, Result: r})
		}
	}
	return out
}

// FieldFailure pairs a failing field with its verdict.
type FieldFailure struct {
	Field  FieldName
	Result Result
}

// IsSubmittable reports whether every field currently passes. Optional
// fields pass through their own rules; no field is exempt.
func (v *Validator) IsSubmittable(values Values) bool {
	for _, f := range Fields {
		if !v.Validate(f, values).Valid {
			return false
		}
	}
	return true
}
