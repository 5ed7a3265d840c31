// Package ensure gates string inputs that may arrive absent, null or empty.
package ensure

// NonEmpty narrows value to a guaranteed non-empty string.
//
// Checks run in a fixed order: absent, then null, then empty. The empty
// check is exact equality with "", so whitespace-only strings pass.
func NonEmpty(value String) (string, error) {
	switch value.state {
	case Absent:
		return "", &Error{Kind: KindMissing}
	case Null:
		return "", &Error{Kind: KindNull}
	}
	if value.value == "" {
		return "", &Error{Kind: KindEmpty}
	}
	return value.value, nil
}

// ValidateNonEmpty returns nil when value is present and not "".
func ValidateNonEmpty(value String) error {
	_, err := NonEmpty(value)
	return err
}

// Field is ValidateNonEmpty with the failure attributed to name.
func Field(name string, value String) error {
	if _, err := NonEmpty(value); err != nil {
		e := err.(*Error)
		e.Field = name
		return e
	}
	return nil
}
