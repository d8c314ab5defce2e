package sql

import "strings"

// parseDropTable parses:
//
//	DROP TABLE users;
func parseDropTable(tokens []string) (Statement, error) {
	if len(tokens) < 2 || !strings.EqualFold(tokens[1], "TABLE") {
		return nil, syntaxErrf("DROP: expected TABLE")
	}
	if len(tokens) < 3 {
		return nil, syntaxErrf("DROP TABLE: missing table name")
	}

	return &DropTableStmt{TableName: tokens[2]}, nil
}
