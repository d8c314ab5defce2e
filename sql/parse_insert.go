package sql

import "strings"

// parseInsert parses an INSERT INTO ... VALUES (...) statement:
//
//	INSERT INTO users (username, age, salary) VALUES ('hamza', 24, 100.0);
//
// The column count must equal the value count. Commas inside single-quoted
// text do not split the value list.
func parseInsert(query string, tokens []string) (Statement, error) {
	if len(tokens) < 2 || !strings.EqualFold(tokens[1], "INTO") {
		return nil, syntaxErrf("INSERT: expected INTO")
	}

	idxInto := indexFold(query, "INTO")
	afterInto := strings.TrimSpace(query[idxInto+len("INTO"):])

	idxValues := indexFold(afterInto, "VALUES")
	if idxValues == -1 {
		return nil, syntaxErrf("INSERT: missing VALUES")
	}

	head := strings.TrimSpace(afterInto[:idxValues])
	if head == "" {
		return nil, syntaxErrf("INSERT: missing table name")
	}

	// head is: tableName ( col1, col2, ... )
	openIdx := strings.Index(head, "(")
	if openIdx == -1 {
		return nil, syntaxErrf("INSERT: missing column list")
	}
	closeIdx := strings.LastIndex(head, ")")
	if closeIdx == -1 || closeIdx <= openIdx {
		return nil, syntaxErrf("INSERT: missing ')' after column list")
	}

	tableName := strings.TrimSpace(head[:openIdx])
	if tableName == "" {
		return nil, syntaxErrf("INSERT: missing table name")
	}

	columns := splitCommaSeparated(head[openIdx+1 : closeIdx])
	if len(columns) == 0 {
		return nil, syntaxErrf("INSERT: empty column list")
	}

	rest := strings.TrimSpace(afterInto[idxValues+len("VALUES"):])
	if !strings.HasPrefix(rest, "(") {
		return nil, syntaxErrf("INSERT: expected '(' after VALUES")
	}
	closeVals := strings.LastIndex(rest, ")")
	if closeVals == -1 {
		return nil, syntaxErrf("INSERT: missing closing ')'")
	}

	values := splitQuoteAware(rest[1:closeVals])
	if len(values) == 0 {
		return nil, syntaxErrf("INSERT: empty VALUES list")
	}

	if len(columns) != len(values) {
		return nil, syntaxErrf("INSERT: %d column(s) but %d value(s)", len(columns), len(values))
	}

	return &InsertStmt{
		TableName: tableName,
		Columns:   columns,
		Values:    values,
	}, nil
}
