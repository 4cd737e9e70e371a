package handler

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// ValidationError maps field names to their error messages.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Error lists the first message of each field, ordered by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	var parts []string
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

type validationFailedResponse struct {
	err   ValidationError
	patch TemplPatch
}

// Render writes the component with the status of err. Datastar requests get
// the component as a patch followed by err in the ErrorSignal.
func (v validationFailedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	info := classifyError(v.err)

	if !IsDataStar(r) {
		return templResponse{status: info.StatusCode, patches: []TemplPatch{v.patch}}.Render(w, r)
	}

	stream := &streamContext{Context: NewContext(w, r), sse: NewSSE(w, r)}
	if err := stream.SendComponent(v.patch.Component, v.patch.Options...); err != nil {
		return err
	}
	return stream.SendSignals(map[string]any{ErrorSignal: info.Message})
}

// ValidationFailed re-renders component, typically a form showing its
// errors, for a request whose input was rejected.
func ValidationFailed(err ValidationError, component templ.Component, opts ...TemplOption) Response {
	return validationFailedResponse{err: err, patch: Patch(component, opts...)}
}
