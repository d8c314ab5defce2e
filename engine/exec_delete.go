package engine

import (
	"fmt"

	"jsondb/sql"
)

// deleteRows removes every row that satisfies the condition chain and
// returns the count removed. With an empty chain the whole table is
// cleared. The kept set is built as the complement of the matching rows.
func (e *Engine) deleteRows(tableName string, conds []sql.Condition) (int, error) {
	schema, ok := e.tables[tableName]
	if !ok {
		return 0, fmt.Errorf("DELETE: table %q: %w", tableName, ErrTableNotFound)
	}

	rows := e.rows[tableName]

	if len(conds) == 0 {
		n := len(rows)
		e.rows[tableName] = nil
		if err := e.markDirtyAndFlush(); err != nil {
			return 0, err
		}
		return n, nil
	}

	kept := make([]sql.Row, 0, len(rows))
	for _, row := range rows {
		if !matchesConditions(row, schema, conds) {
			kept = append(kept, row)
		}
	}
	removed := len(rows) - len(kept)

	e.rows[tableName] = kept
	if err := e.markDirtyAndFlush(); err != nil {
		return 0, err
	}
	return removed, nil
}
