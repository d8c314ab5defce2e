package engine

// dropTable removes a table's schema and row data. Dropping a table that
// does not exist is a no-op, not an error.
func (e *Engine) dropTable(tableName string) error {
	delete(e.tables, tableName)
	delete(e.rows, tableName)

	return e.markDirtyAndFlush()
}
