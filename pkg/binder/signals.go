package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the datastar signal payload of a request using `json` tags.
// GET requests carry signals in the "datastar" query parameter, other methods
// in the JSON body. Requests not issued by datastar are reported as
// ErrBinderNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !isDatastarRequest(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseSignals, err)
		}
		return nil
	}
}

func isDatastarRequest(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	if r.Method == http.MethodGet {
		return r.URL.Query().Has("datastar")
	}
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
