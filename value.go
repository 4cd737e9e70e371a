package signin

import (
	"log/slog"

	"github.com/dmitrymomot/signin/pkg/sanitizer"
)

// Value is a field value. The only implementations are Text and Flag.
type Value interface {
	Kind() Kind
	isValue()
}

// Text is the value of the email and password fields.
type Text string

func (Text) Kind() Kind { return KindText }
func (Text) isValue()   {}

// Flag is the value of the remember-me toggle.
type Flag bool

func (Flag) Kind() Kind { return KindFlag }
func (Flag) isValue()   {}

// Values holds the current value of every field.
type Values struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Get returns the value of f, or nil for an unknown field.
func (v Values) Get(f Field) Value {
	switch f {
	case Email:
		return Text(v.Email)
	case Password:
		return Text(v.Password)
	case Remember:
		return Flag(v.Remember)
	}
	return nil
}

// text returns the string value of a text field.
func (v Values) text(f Field) string {
	switch f {
	case Email:
		return v.Email
	case Password:
		return v.Password
	}
	return ""
}

// set assumes f and val were checked by the caller.
func (v *Values) set(f Field, val Value) {
	switch f {
	case Email:
		v.Email = string(val.(Text))
	case Password:
		v.Password = string(val.(Text))
	case Remember:
		v.Remember = bool(val.(Flag))
	}
}

// LogValue keeps credentials out of logs.
func (v Values) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", sanitizer.MaskEmail(v.Email)),
		slog.String("password", sanitizer.MaskSecret(v.Password)),
		slog.Bool("remember", v.Remember),
	)
}

// Payload is the snapshot of all values handed to the SubmitSink after a
// successful submit. It is a plain value; the engine keeps no reference to it.
type Payload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// LogValue keeps credentials out of logs.
func (p Payload) LogValue() slog.Value {
	return Values(p).LogValue()
}

// SubmitSink receives the payload of a successful submit.
type SubmitSink func(Payload)
