// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record. FormIDExtractor pairs with WithFormID to tag
// every record logged for one form instance:
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signin"),
//	    logger.WithContextExtractors(logger.FormIDExtractor()),
//	)
//	ctx = logger.WithFormID(ctx, id)
//	log.InfoContext(ctx, "submitted") // ... form_id=<id>
//
// Discard returns a logger that drops everything and is the default for
// components constructed without one.
package logger
