package sql

import "strings"

// parseUpdate parses:
//
//	UPDATE users SET age = 25 WHERE username = 'hamza';
//	UPDATE users SET age = 25, salary = 200.0;
//
// The SET list reuses quote-aware comma splitting, so a literal like
// 'Doe, John' stays one assignment value. Keywords are matched with
// surrounding spaces so a table named "assets" does not trip the SET scan.
func parseUpdate(query string) (Statement, error) {
	rest := strings.TrimSpace(query[len("UPDATE"):])

	idxSet := indexFold(" "+rest, " SET ")
	if idxSet == -1 {
		return nil, syntaxErrf("UPDATE: missing SET")
	}
	idxSet-- // compensate the probe padding

	tableName := strings.TrimSpace(rest[:idxSet+1])
	if tableName == "" {
		return nil, syntaxErrf("UPDATE: missing table name")
	}

	afterSet := strings.TrimSpace(rest[idxSet+len(" SET"):])
	if afterSet == "" {
		return nil, syntaxErrf("UPDATE: missing assignments after SET")
	}

	assignsPart := afterSet
	var wherePart string
	if idxWhere := indexFold(" "+afterSet, " WHERE "); idxWhere != -1 {
		assignsPart = strings.TrimSpace(afterSet[:idxWhere])
		wherePart = strings.TrimSpace(afterSet[idxWhere+len(" WHERE"):])
	}

	assignDefs := splitQuoteAware(assignsPart)
	if len(assignDefs) == 0 {
		return nil, syntaxErrf("UPDATE: no assignments found")
	}

	assignments := make([]Assignment, 0, len(assignDefs))
	for _, def := range assignDefs {
		idxEq := strings.Index(def, "=")
		if idxEq == -1 {
			return nil, syntaxErrf("UPDATE: expected '=' in assignment %q", def)
		}

		column := strings.TrimSpace(def[:idxEq])
		value := strings.TrimSpace(def[idxEq+1:])
		if column == "" || value == "" {
			return nil, syntaxErrf("UPDATE: invalid assignment %q", def)
		}

		assignments = append(assignments, Assignment{Column: column, Value: value})
	}

	var where []Condition
	if wherePart != "" {
		w, err := parseWhereChain(strings.Fields(wherePart))
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &UpdateStmt{
		TableName:   tableName,
		Assignments: assignments,
		Where:       where,
	}, nil
}
