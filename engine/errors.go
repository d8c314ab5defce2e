package engine

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned when a statement references a table whose
// schema is absent from the snapshot.
var ErrTableNotFound = errors.New("table not found")

// UnknownColumnError reports a column name that is not part of the target
// table's schema (INSERT column lists and UPDATE assignments).
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q in table %q", e.Column, e.Table)
}
