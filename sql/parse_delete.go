package sql

import "strings"

// parseDelete parses:
//
//	DELETE FROM users;
//	DELETE FROM users WHERE age < 18 OR name IS NULL;
//
// Without WHERE the statement clears the whole table.
func parseDelete(tokens []string) (Statement, error) {
	if len(tokens) < 2 || !strings.EqualFold(tokens[1], "FROM") {
		return nil, syntaxErrf("DELETE: expected FROM")
	}
	if len(tokens) < 3 {
		return nil, syntaxErrf("DELETE: missing table name")
	}

	tableName := tokens[2]

	rest := tokens[3:]
	var where []Condition
	if len(rest) > 0 {
		if !strings.EqualFold(rest[0], "WHERE") {
			return nil, syntaxErrf("DELETE: unexpected token %q after table name", rest[0])
		}
		w, err := parseWhereChain(rest[1:])
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &DeleteStmt{
		TableName: tableName,
		Where:     where,
	}, nil
}
