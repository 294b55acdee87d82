// Package errors provides the classified error primitives used across classydoc.
//
// Resolution stages never fail on loosely structured input; the errors built here
// surface the conditions that do stop a run (bad configuration, unreadable input,
// output that cannot be written) together with enough context to act on them.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "failed to write page").
//		WithContext("path", outPath).
//		Fatal().
//		Build()
package errors
