package sql

import "strings"

// parseSelect parses:
//
//	SELECT * FROM users;
//	SELECT username, age FROM users;
//	SELECT * FROM users WHERE age > 20 AND name = 'Alice';
//
// A "*" projection is encoded as an empty column list.
func parseSelect(tokens []string) (Statement, error) {
	// tokens[0] is SELECT; everything up to FROM is the projection.
	idxFrom := -1
	for i, tok := range tokens {
		if strings.EqualFold(tok, "FROM") {
			idxFrom = i
			break
		}
	}
	if idxFrom == -1 {
		return nil, syntaxErrf("SELECT: FROM not found")
	}
	if idxFrom == 1 {
		return nil, syntaxErrf("SELECT: missing column list")
	}
	if idxFrom+1 >= len(tokens) {
		return nil, syntaxErrf("SELECT: missing table name")
	}

	colsPart := strings.Join(tokens[1:idxFrom], "")
	var columns []string
	if colsPart != "*" {
		columns = splitCommaSeparated(colsPart)
		if len(columns) == 0 {
			return nil, syntaxErrf("SELECT: missing column list")
		}
	}

	tableName := tokens[idxFrom+1]

	rest := tokens[idxFrom+2:]
	var where []Condition
	if len(rest) > 0 {
		if !strings.EqualFold(rest[0], "WHERE") {
			return nil, syntaxErrf("SELECT: unexpected token %q after table name", rest[0])
		}
		w, err := parseWhereChain(rest[1:])
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &SelectStmt{
		TableName: tableName,
		Columns:   columns,
		Where:     where,
	}, nil
}
