package engine

import (
	"fmt"

	"jsondb/sql"
)

// insertRow builds a new row by iterating the full schema: provided
// columns are parsed with their declared type, absent ones are stored as
// Null. Provided columns outside the schema are rejected.
func (e *Engine) insertRow(tableName string, columns []string, values []string) error {
	schema, ok := e.tables[tableName]
	if !ok {
		return fmt.Errorf("INSERT: table %q: %w", tableName, ErrTableNotFound)
	}

	provided := make(map[string]string, len(columns))
	for i, col := range columns {
		if _, ok := schema[col]; !ok {
			return &UnknownColumnError{Table: tableName, Column: col}
		}
		provided[col] = values[i]
	}

	row := make(sql.Row, len(schema))
	for colName, colType := range schema {
		literal, ok := provided[colName]
		if !ok {
			row[colName] = sql.Null
			continue
		}
		v, err := sql.ParseLiteral(literal, colType)
		if err != nil {
			return fmt.Errorf("INSERT: column %q: %w", colName, err)
		}
		row[colName] = v
	}

	e.rows[tableName] = append(e.rows[tableName], row)

	return e.markDirtyAndFlush()
}
