// Package binder decodes HTTP request data into request structs.
//
// Binders share the signature func(*http.Request, any) error so they can be
// chained by handler.Wrap. A binder that does not recognise the request
// returns ErrBinderNotApplicable and the next one is tried.
//
//	type SubmitRequest struct {
//		Email    string `form:"email" json:"email"`
//		Password string `form:"password" json:"password"`
//		Remember bool   `form:"remember" json:"remember"`
//	}
//
//	http.HandleFunc("/signin", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Signals(), binder.Form()),
//	))
//
// Form accepts url-encoded and multipart bodies and parses checkbox values
// leniently ("on", "yes", "1", "true"). Signals reads the datastar signal
// payload from the query string or the JSON body.
package binder
