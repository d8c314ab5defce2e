package engine

import (
	"fmt"

	"jsondb/sql"
)

// updateRows applies the assignments in place to every row that satisfies
// the condition chain (or to every row when the chain is empty) and
// returns the count of rows mutated. Assignment values are type-parsed
// once up front against the schema.
func (e *Engine) updateRows(tableName string, assignments []sql.Assignment, conds []sql.Condition) (int, error) {
	schema, ok := e.tables[tableName]
	if !ok {
		return 0, fmt.Errorf("UPDATE: table %q: %w", tableName, ErrTableNotFound)
	}

	parsed := make(map[string]sql.Value, len(assignments))
	for _, a := range assignments {
		colType, ok := schema[a.Column]
		if !ok {
			return 0, &UnknownColumnError{Table: tableName, Column: a.Column}
		}
		v, err := sql.ParseLiteral(a.Value, colType)
		if err != nil {
			return 0, fmt.Errorf("UPDATE: column %q: %w", a.Column, err)
		}
		parsed[a.Column] = v
	}

	updated := 0
	for _, row := range e.rows[tableName] {
		if len(conds) > 0 && !matchesConditions(row, schema, conds) {
			continue
		}
		for col, v := range parsed {
			row[col] = v
		}
		updated++
	}

	if err := e.markDirtyAndFlush(); err != nil {
		return 0, err
	}
	return updated, nil
}
