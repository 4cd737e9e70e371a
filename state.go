package signin

import (
	"log/slog"
	"maps"
)

// State is an immutable snapshot of a form instance.
// Renderers read it and call back into the Engine to change anything.
type State struct {
	FormID           string               `json:"form_id"`
	Values           Values               `json:"values"`
	Errors           map[Field]FieldError `json:"errors,omitempty"`
	Status           map[Field]Status     `json:"status"`
	Dirty            map[Field]bool       `json:"dirty,omitempty"`
	SubmitCount      int                  `json:"submit_count"`
	SubmitSuccessful bool                 `json:"submit_successful"`
	Submittable      bool                 `json:"submittable"`
}

// Error returns the current error of f, if any.
func (s State) Error(f Field) (FieldError, bool) {
	fe, ok := s.Errors[f]
	return fe, ok
}

// ErrorMessage returns the display text of f's error, or "" when f is valid.
func (s State) ErrorMessage(f Field) string {
	return s.Errors[f].Message
}

// Submitted reports whether a submit was attempted since the last initialize.
func (s State) Submitted() bool {
	return s.SubmitCount > 0
}

func (s State) LogValue() slog.Value {
	failing := make([]string, 0, len(s.Errors))
	for _, f := range Fields() {
		if _, ok := s.Errors[f]; ok {
			failing = append(failing, f.String())
		}
	}
	return slog.GroupValue(
		slog.String("form_id", s.FormID),
		slog.Any("values", s.Values),
		slog.Any("errors", failing),
		slog.Int("submit_count", s.SubmitCount),
		slog.Bool("submittable", s.Submittable),
	)
}

// submittable is derived from the error mapping alone.
func submittable(errs map[Field]FieldError) bool {
	return len(errs) == 0
}

func cloneErrors(errs map[Field]FieldError) map[Field]FieldError {
	out := make(map[Field]FieldError, len(errs))
	for f, fe := range errs {
		fe.TranslationValues = maps.Clone(fe.TranslationValues)
		out[f] = fe
	}
	return out
}
