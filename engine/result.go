package engine

import "jsondb/sql"

// ResultKind discriminates the two reply shapes a statement can produce.
// The connection layer needs this tag to decide how to serialize a reply.
type ResultKind int

const (
	// StatusResult carries a plain status or error message.
	StatusResult ResultKind = iota
	// RowsResult carries a sequence of row mappings from a SELECT.
	RowsResult
)

// Result is the outcome of executing one statement.
type Result struct {
	Kind    ResultKind
	Message string
	Rows    []sql.Row
}

func statusResult(msg string) Result {
	return Result{Kind: StatusResult, Message: msg}
}

func rowsResult(rows []sql.Row) Result {
	return Result{Kind: RowsResult, Rows: rows}
}
