// Package errors provides the classified error primitives used across reverie.
//
// Every failure that should halt a build (a missing translation key, an unknown
// theme, a post without a title) is reported as a ClassifiedError so the CLI can
// pick an exit code and a log level without string matching.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, i18n, theme, content, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example usage:
//
//	err := errors.ThemeError("unknown theme").
//		WithContext("theme", name).
//		WithContext("available", names).
//		Build()
package errors
