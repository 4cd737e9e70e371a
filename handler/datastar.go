package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by datastar when it expects an event stream.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarRequestHeader is set to "true" on every datastar fetch.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter  = datastar.ElementPatchModeOuter
	PatchInner  = datastar.ElementPatchModeInner
	PatchRemove = datastar.ElementPatchModeRemove
)

// IsDataStar reports whether r was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
