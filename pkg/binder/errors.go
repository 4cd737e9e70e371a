package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")

	// ErrBinderNotApplicable tells the caller to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
