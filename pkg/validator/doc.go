// Package validator provides small, composable validation rules for form
// fields.
//
// A Rule pairs a predicate over a value with a translation-friendly
// ValidationError. Rules are plain values with no hidden state, so a rule
// slice can be built once and evaluated any number of times.
//
// First evaluates a rule slice in order and stops at the first failing rule,
// returning its error. A missing value therefore reports "required" and the
// format checks after it are skipped.
//
// # Usage
//
//	rules := []validator.Rule[string]{
//	    validator.Required("email"),
//	    validator.ValidEmail("email"),
//	}
//	if verr := validator.First(input, rules...); verr != nil {
//	    fmt.Println(verr.Message)
//	}
//
// # Error Handling
//
// Every ValidationError carries a Code. Unwrap maps the code to one of the
// package sentinels (ErrFieldRequired, ErrInvalidFormat, ErrTooShort), so
// errors.Is works on individual field errors.
package validator
