// Package errors provides foundational, type-safe error primitives used across componentdocs.
//
// This package contains classified error types and helpers for error handling
// in the page assembly and preview paths, including a fluent builder API for
// constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, source, metadata, render, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - RetryStrategy: Retry behavior (never, immediate, backoff, user action)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - HTTP and CLI adapters for error presentation
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryNotFound, "example source missing").
//		Fatal().
//		WithContext("file", "simple.go").
//		WithCause(originalErr).
//		Build()
package errors
