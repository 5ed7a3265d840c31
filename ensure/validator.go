package ensure

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Tag is the struct tag that runs ValidateNonEmpty on a field.
//
//	type request struct {
//		Name ensure.String `json:"name" validate:"nonempty"`
//	}
const Tag = "nonempty"

var stringType = reflect.TypeOf(String{})

// RegisterValidation installs Tag on v. Tagged fields may be String or
// string, or pointers to them. A nil pointer is rejected by the validator
// itself before the check runs and is reported as null by Translate. Any
// other field type panics during validation, like the validator's built-in
// tags do.
func RegisterValidation(v *validator.Validate) error {
	if err := v.RegisterValidation(Tag, validateField); err != nil {
		return fmt.Errorf("register %q validation: %w", Tag, err)
	}
	return nil
}

func validateField(fl validator.FieldLevel) bool {
	field := fl.Field()
	s, ok := fieldValue(field)
	if !ok {
		panic(fmt.Sprintf("ensure: %s tag on unsupported type %s", Tag, field.Type()))
	}
	return ValidateNonEmpty(s) == nil
}

func fieldValue(v reflect.Value) (String, bool) {
	if !v.IsValid() {
		return NullString(), true
	}
	if v.Type() == stringType {
		return v.Interface().(String), true
	}
	if v.Kind() == reflect.String {
		return Of(v.String()), true
	}
	return String{}, false
}

// Translate rewrites the Tag failures inside a validator.ValidationErrors
// into *Error values. Failures on other tags are kept as a
// validator.ValidationErrors joined after them, as are Tag failures whose
// value does not explain the rejection (a nil pointer to an unsupported
// type). Any other error is returned unchanged.
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var out []error
	var rest validator.ValidationErrors
	for _, fe := range verrs {
		if fe.ActualTag() != Tag {
			rest = append(rest, fe)
			continue
		}
		kind, ok := kindOfValue(fe.Value())
		if !ok {
			rest = append(rest, fe)
			continue
		}
		out = append(out, &Error{Field: fe.Field(), Kind: kind})
	}
	if len(out) == 0 {
		return err
	}
	if len(rest) > 0 {
		out = append(out, rest)
	}
	return errors.Join(out...)
}

func kindOfValue(value any) (Kind, bool) {
	var s String
	switch v := value.(type) {
	case String:
		s = v
	case *String:
		if v == nil {
			return KindNull, true
		}
		s = *v
	case string:
		s = Of(v)
	case *string:
		s = FromPtr(v)
	case nil:
		return KindNull, true
	default:
		return 0, false
	}
	if err := ValidateNonEmpty(s); err != nil {
		return KindOf(err), true
	}
	return 0, false
}
