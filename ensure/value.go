package ensure

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// State describes which of the three boundary shapes a String holds.
type State uint8

const (
	// Absent means no value was supplied at all. It is the zero State.
	Absent State = iota
	// Null means the slot was supplied but deliberately holds nothing.
	Null
	// Present means a string value was supplied (it may still be empty).
	Present
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// String is a string as it arrives at a boundary: absent, null, or present.
// The zero value is Absent, so a struct field that was never decoded stays
// Absent.
type String struct {
	state State
	value string
}

// Of returns a present String holding s.
func Of(s string) String {
	return String{state: Present, value: s}
}

// NullString returns an explicitly null String.
func NullString() String {
	return String{state: Null}
}

// FromPtr maps a nil pointer to Null and anything else to Present.
func FromPtr(p *string) String {
	if p == nil {
		return NullString()
	}
	return Of(*p)
}

func (s String) State() State { return s.state }

// Get returns the held string and whether one is present.
func (s String) Get() (string, bool) {
	return s.value, s.state == Present
}

// IsZero reports whether s is Absent. Used by encoding/json for omitzero.
func (s String) IsZero() bool { return s.state == Absent }

func (s String) String() string {
	if s.state == Present {
		return s.value
	}
	return "<" + s.state.String() + ">"
}

var jsonNull = []byte("null")

func (s *String) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*s = NullString()
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode string: %w", err)
	}
	*s = Of(v)
	return nil
}

func (s String) MarshalJSON() ([]byte, error) {
	if s.state != Present {
		return jsonNull, nil
	}
	return json.Marshal(s.value)
}

// Scan implements sql.Scanner. SQL NULL scans to Null.
func (s *String) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = NullString()
	case string:
		*s = Of(v)
	case []byte:
		*s = Of(string(v))
	default:
		return fmt.Errorf("scan ensure.String: unsupported type %T", src)
	}
	return nil
}

// Value implements driver.Valuer. Absent and Null both store as NULL.
func (s String) Value() (driver.Value, error) {
	if s.state != Present {
		return nil, nil
	}
	return s.value, nil
}
