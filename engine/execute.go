package engine

import (
	"fmt"
	"strings"

	"jsondb/sql"
)

// Reply strings are part of the wire contract with the connection layer
// and must be reproduced byte for byte.
const (
	msgTableCreated = "OK: New Table Created !"
	msgRowInserted  = "OK: New Row Has Been Inserted !"
	msgTableDropped = "OK: Table Dropped !"
	msgRowsDeleted  = "OK: %d Row(s) Deleted !"
	msgRowsUpdated  = "OK: %d Row(s) Updated !"
)

// Execute parses and runs a single statement. SELECT produces a RowsResult;
// every other statement produces a StatusResult. Errors are returned to the
// caller untouched; converting them to user-visible strings is the
// connection layer's job (see ExecuteScript).
func (e *Engine) Execute(raw string) (Result, error) {
	if e.owner != nil {
		e.owner.Lock()
		defer e.owner.Unlock()
	}

	stmt, err := sql.Parse(raw)
	if err != nil {
		return Result{}, err
	}

	// Pending writes are flushed before reads and writes alike. Writes
	// flush as they happen, so this is normally a no-op.
	if err := e.flush(); err != nil {
		return Result{}, err
	}

	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		if err := e.createTable(s.TableName, s.Columns); err != nil {
			return Result{}, err
		}
		return statusResult(msgTableCreated), nil

	case *sql.DropTableStmt:
		if err := e.dropTable(s.TableName); err != nil {
			return Result{}, err
		}
		return statusResult(msgTableDropped), nil

	case *sql.InsertStmt:
		if err := e.insertRow(s.TableName, s.Columns, s.Values); err != nil {
			return Result{}, err
		}
		return statusResult(msgRowInserted), nil

	case *sql.SelectStmt:
		rows, err := e.selectRows(s.TableName, s.Columns, s.Where)
		if err != nil {
			return Result{}, err
		}
		return rowsResult(rows), nil

	case *sql.UpdateStmt:
		n, err := e.updateRows(s.TableName, s.Assignments, s.Where)
		if err != nil {
			return Result{}, err
		}
		return statusResult(fmt.Sprintf(msgRowsUpdated, n)), nil

	case *sql.DeleteStmt:
		n, err := e.deleteRows(s.TableName, s.Where)
		if err != nil {
			return Result{}, err
		}
		return statusResult(fmt.Sprintf(msgRowsDeleted, n)), nil

	default:
		return Result{}, fmt.Errorf("unsupported statement type %T", stmt)
	}
}

// ExecuteScript runs a ';'-separated batch in order, one result per
// statement. A failed statement becomes an "Error: <message>" status in
// its batch position; prior statements stay applied (no batch atomicity).
// This is the single place where engine errors turn into user-visible
// text.
func (e *Engine) ExecuteScript(raw string) []Result {
	var results []Result

	for _, stmtText := range strings.Split(raw, ";") {
		if strings.TrimSpace(stmtText) == "" {
			continue
		}

		res, err := e.Execute(stmtText)
		if err != nil {
			e.logger.Debug("statement failed", "error", err)
			res = statusResult("Error: " + err.Error())
		}
		results = append(results, res)
	}

	return results
}
