package errors

import "fmt"

// Known reconciler error codes.
const (
	CodeMissingState  = "W101" // reused id has no live state entry
	CodeStateMismatch = "W102" // state entry downcast to the wrong type
	CodeStoreMisuse   = "W103" // malformed input to the reconciler
	CodeDuplicateKey  = "W201" // duplicate keys among siblings
)

// MissingState reports a reused identity whose state entry is gone. This is
// a matching-policy bug: the entry must outlive every pass that can still
// select the id.
func MissingState(id uint64, store, tag string) *Error {
	return New(CodeMissingState, CategoryContract,
		fmt.Sprintf("no %s state entry for reused id %d (tag %q)", store, id, tag)).
		WithDetail("the identity-matching policy chose to reuse id %d but the %s store has no entry under it; reinitializing silently would mask the loss of per-instance state", id, store).
		WithSuggestion("run garbage collection only after a pass commits, never while one is in progress")
}

// StateMismatch reports a type-erased state entry read back as the wrong
// concrete type.
func StateMismatch(id uint64, want, got string) *Error {
	return New(CodeStateMismatch, CategoryState,
		fmt.Sprintf("state entry for id %d is %s, not %s", id, got, want)).
		WithDetail("an id never changes the concrete type stored under it; a mismatch means two instances were conflated").
		WithSuggestion("check that sibling keys are unique and that tags are distinct per component type")
}

// StoreMisuse reports malformed reconciler input, such as a component call
// without a View function.
func StoreMisuse(message string) *Error {
	return New(CodeStoreMisuse, CategoryState, message)
}

// DuplicateKey reports duplicate keys among the children of one parent.
// Matching is deterministic but which match wins is unspecified.
func DuplicateKey(parentTag, key string) *Error {
	return New(CodeDuplicateKey, CategoryValidation,
		fmt.Sprintf("duplicate sibling key %q under %q", key, parentTag)).
		WithSuggestion("make keys unique among siblings; derive them from stable data identifiers")
}
