package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g. Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNilEngine is returned by New when no engine is given.
	ErrNilEngine = errors.New("prompt: engine is nil")
	// ErrTooManyAttempts is returned by Run when the attempt limit is reached.
	ErrTooManyAttempts = errors.New("prompt: too many submit attempts")
)
