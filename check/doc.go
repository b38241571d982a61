// Package check has building blocks for validation strategies: defaults,
// environment fallback, ranges and conversions of looked up options into
// richer types.
//
// Errors are argseq.UsageError values of kind argseq.ErrInvalidValue, or an
// argseq.ConflictError from Switch.
package check
