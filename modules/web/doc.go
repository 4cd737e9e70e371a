// Package web serves the sign-in form over HTTP.
//
// GET / creates a form instance and renders the page. The page opens an
// event stream at /{id}/stream and posts every input change to
// /{id}/fields/{field}; each engine state change is streamed back as
// datastar element patches for the error slots and the submit button.
// POST /{id} submits the form: on success the instance is discarded and the
// client is redirected, otherwise the form is rendered again with a 422.
// Browsers without JavaScript get the same behaviour through plain form posts.
//
//	svc := web.NewService(cfg, web.Views{}, log, signin.WithSink(authenticate))
//	go svc.Forms().Run(ctx, time.Minute)
//	r.Mount("/signin", svc.Handle())
package web
