package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signin/pkg/logger"
)

// ErrorSignal is the datastar signal that carries the error message of a failed request.
const ErrorSignal = "_error"

// ErrorInfo is the classification of an error returned from a handler.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = validationErr.Error()
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns an ErrorHandler that logs the error and answers
// with a plain text error, or with the ErrorSignal for datastar requests.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = logger.Discard()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) {
			stream := &streamContext{Context: ctx, sse: NewSSE(ctx.ResponseWriter(), r)}
			if sendErr := stream.SendSignals(map[string]any{ErrorSignal: info.Message}); sendErr != nil {
				log.Error("failed to send error signal", logger.Error(sendErr))
			}
			return
		}

		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
	}
}
