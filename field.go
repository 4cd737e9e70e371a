package signin

import "fmt"

// Field identifies one input of the sign-in form.
type Field string

const (
	Email    Field = "email"
	Password Field = "password"
	Remember Field = "remember"
)

// Kind tells which Value variant a field holds.
type Kind int

const (
	KindText Kind = iota + 1
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFlag:
		return "flag"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Fields returns every form field in display order.
func Fields() []Field {
	return []Field{Email, Password, Remember}
}

// ParseField converts a field name into a Field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
	return f, nil
}

func (f Field) Valid() bool {
	switch f {
	case Email, Password, Remember:
		return true
	}
	return false
}

// Kind returns the value kind the field accepts, or 0 for unknown fields.
func (f Field) Kind() Kind {
	switch f {
	case Email, Password:
		return KindText
	case Remember:
		return KindFlag
	}
	return 0
}

func (f Field) String() string {
	return string(f)
}
