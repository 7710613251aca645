package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrMalformedID indicates a path identifier is not a well-formed store id.
	ErrMalformedID = errors.New("malformed id")
	// ErrAllocationExhausted is returned when no free invoice code was found
	// within the allocator's attempt budget.
	ErrAllocationExhausted = errors.New("could not generate a unique invoice ID")
	// ErrStoreUnavailable wraps connection failures to the document store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// DuplicateKeyError reports a uniqueness violation on a stored field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s field has to be unique", e.Field)
}
