package logger

import (
	"context"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FormID records the form instance identifier under the key "form_id".
// If id is nil, it returns an empty Attr.
func FormID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("form_id", id)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

type formIDKey struct{}

// WithFormID stores a form id in ctx for FormIDExtractor.
func WithFormID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, formIDKey{}, id)
}

// FormIDExtractor adds the form id stored by WithFormID to every record logged with that context.
func FormIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := ctx.Value(formIDKey{}).(string)
		if !ok || id == "" {
			return slog.Attr{}, false
		}
		return FormID(id), true
	}
}
