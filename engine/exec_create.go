package engine

import "jsondb/sql"

// createTable installs the schema for a table. Re-creating an existing
// table replaces its schema and drops its rows, so the stored rows can
// never disagree with the schema that governs them.
func (e *Engine) createTable(tableName string, cols []sql.ColumnDef) error {
	schema := make(sql.Schema, len(cols))
	for _, c := range cols {
		schema[c.Name] = c.Type
	}

	e.tables[tableName] = schema
	e.rows[tableName] = nil

	return e.markDirtyAndFlush()
}
