// Package logger builds the *slog.Logger used across beanform.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the chosen slog handler with LogHandlerDecorator, which injects
// attributes extracted from the context on every record, e.g. the request
// locale:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("locale", localeKey),
//	)
//
// The attribute helpers in attr.go keep key names consistent: Component,
// Property, Constraint, Resolver, Error.
package logger
