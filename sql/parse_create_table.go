package sql

import "strings"

// parseCreateTable parses:
//
//	CREATE TABLE users (username VARCHAR, age INT, salary FLOAT);
//
// Each column definition is "name TYPE"; TYPE must be one of INT, FLOAT,
// VARCHAR (case-insensitive).
func parseCreateTable(query string, tokens []string) (Statement, error) {
	if len(tokens) < 2 || !strings.EqualFold(tokens[1], "TABLE") {
		return nil, syntaxErrf("CREATE: expected TABLE")
	}

	// Find the parenthesized column list.
	openIdx := strings.Index(query, "(")
	if openIdx == -1 {
		return nil, syntaxErrf("CREATE TABLE: missing '('")
	}
	closeIdx := strings.LastIndex(query, ")")
	if closeIdx == -1 || closeIdx <= openIdx {
		return nil, syntaxErrf("CREATE TABLE: missing or misplaced ')'")
	}

	// head contains: CREATE TABLE tableName
	head := strings.TrimSpace(query[:openIdx])
	headTokens := strings.Fields(head)
	if len(headTokens) < 3 {
		return nil, syntaxErrf("CREATE TABLE: missing table name")
	}
	tableName := headTokens[len(headTokens)-1]

	colsPart := strings.TrimSpace(query[openIdx+1 : closeIdx])
	if colsPart == "" {
		return nil, syntaxErrf("CREATE TABLE: no column definitions")
	}

	colDefs := splitCommaSeparated(colsPart)
	columns := make([]ColumnDef, 0, len(colDefs))
	for _, def := range colDefs {
		parts := strings.Fields(def)
		if len(parts) != 2 {
			return nil, syntaxErrf("CREATE TABLE: invalid column definition %q (want \"name TYPE\")", def)
		}
		colType, err := ParseColumnType(parts[1])
		if err != nil {
			return nil, err
		}
		columns = append(columns, ColumnDef{Name: parts[0], Type: colType})
	}
	if len(columns) == 0 {
		return nil, syntaxErrf("CREATE TABLE: no valid columns")
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}
