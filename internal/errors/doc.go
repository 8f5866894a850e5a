// Package errors provides structured errors for the reconciliation engine.
//
// Each error carries a stable code, a category, and optionally a detail and
// suggestion. Contract violations (codes W1xx) are fatal: the reconciler
// panics with the Format rendering, which keeps the code visible to
// recovery sites. Validation findings (codes W2xx) are ordinary errors.
package errors
