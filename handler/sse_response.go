package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// SSEHandler runs for the lifetime of an event stream connection.
// The stream ends when the handler returns or the client disconnects.
type SSEHandler func(stream StreamContext) error

// StreamContext sends patches over an open datastar event stream.
type StreamContext interface {
	Context

	SendComponent(component templ.Component, opts ...TemplOption) error
	SendMultiple(patches ...TemplPatch) error
	SendSignals(signals map[string]any) error
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "sse_requires_datastar")
	}
	return s.handler(&streamContext{
		Context: NewContext(w, r),
		sse:     NewSSE(w, r),
	})
}

// SSE creates a streaming response.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		sub := engine.Subscribe(stream)
//		defer sub.Close()
//		for st := range sub.Receive() {
//			if err := stream.SendComponent(view(st)); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, p := range patches {
		if err := c.SendComponent(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
