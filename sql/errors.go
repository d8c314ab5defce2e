package sql

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned when the leading keyword of a statement is
// not one of the six supported commands.
var ErrUnknownCommand = errors.New("unknown command")

// SyntaxError reports input that does not match the grammar for its leading
// keyword, including column/value count mismatches.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Reason
}

func syntaxErrf(format string, args ...any) error {
	return &SyntaxError{Reason: fmt.Sprintf(format, args...)}
}

// TypeConversionError reports a literal that cannot be parsed as the
// column's declared type, e.g. non-numeric text for an INT column.
type TypeConversionError struct {
	Text string
	Type ColumnType
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s", e.Text, e.Type)
}
