// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value already filled in by
// the configured binders, and returns a Response that knows how to render
// itself. Responses check IsDataStar and answer datastar requests with
// server-sent events (element patches, signal patches, client redirects)
// and every other request with plain HTML or HTTP redirects.
//
//	r.Post("/{id}", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Signals(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](handler.NewErrorHandler(log)),
//	))
//
// Errors returned from binding or rendering go to the ErrorHandler.
// HTTPError carries a status code; ValidationError maps to 422.
package handler
