// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys.
//
// New picks a JSON or text handler, attaches static attributes and wraps the
// handler so that registered ContextExtractor callbacks add request-scoped
// attributes (a request id, for instance) to every record logged with a
// context:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("safeop"),
//	    logger.WithContextValue("tenant", tenantKey{}),
//	)
//	log.InfoContext(ctx, "operation failed",
//	    logger.Operation("numeric.clamp"),
//	    logger.Failure(out.Failure()),
//	)
//
// Helpers such as Error and Failure return an empty Attr for nil input, which
// slog drops, so callers need no nil checks.
//
// Noop returns a discarding logger for components whose logger is optional.
package logger
