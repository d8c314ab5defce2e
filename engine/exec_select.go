package engine

import (
	"fmt"

	"jsondb/sql"
)

// selectRows filters the table's rows through the condition chain and then
// applies the projection. An empty projection means all columns; projected
// columns absent from a row are omitted from the output mapping, not
// materialized as Null.
func (e *Engine) selectRows(tableName string, projection []string, conds []sql.Condition) ([]sql.Row, error) {
	schema, ok := e.tables[tableName]
	if !ok {
		return nil, fmt.Errorf("SELECT: table %q: %w", tableName, ErrTableNotFound)
	}

	rows := e.rows[tableName]

	var matched []sql.Row
	if len(conds) == 0 {
		matched = rows
	} else {
		for _, row := range rows {
			if matchesConditions(row, schema, conds) {
				matched = append(matched, row)
			}
		}
	}

	if len(projection) == 0 {
		out := make([]sql.Row, len(matched))
		for i, row := range matched {
			out[i] = copyRow(row)
		}
		return out, nil
	}

	out := make([]sql.Row, 0, len(matched))
	for _, row := range matched {
		proj := make(sql.Row, len(projection))
		for _, col := range projection {
			if v, ok := row[col]; ok {
				proj[col] = v
			}
		}
		out = append(out, proj)
	}
	return out, nil
}

// copyRow returns a shallow copy so callers cannot mutate stored rows.
func copyRow(row sql.Row) sql.Row {
	out := make(sql.Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
