package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Read when no document exists for the
// requested database name.
var ErrNotFound = errors.New("database document not found")

// CorruptDocumentError reports a document whose stored bytes do not decode
// into the expected Tables/Rows shape.
type CorruptDocumentError struct {
	Name string
	Err  error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("corrupt document for database %q: %v", e.Name, e.Err)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Err
}
