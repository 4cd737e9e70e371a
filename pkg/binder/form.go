package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies using `form` struct tags. Requests without a form body are
// reported as ErrBinderNotApplicable.
//
//	type SubmitRequest struct {
//		Email    string `form:"email"`
//		Password string `form:"password"`
//		Remember bool   `form:"remember"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrFailedToParseForm)

		default:
			return ErrBinderNotApplicable
		}
	}
}

// DefaultMaxMemory caps the in-memory part of a multipart body.
const DefaultMaxMemory = 1 << 20
