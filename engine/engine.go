// Package engine holds the in-memory snapshot of one database and executes
// parsed statements against it. Every write is flushed to the disk store
// before the operation that produced it returns.
package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"jsondb/config"
	"jsondb/sql"
	"jsondb/storage"
)

// Engine binds one in-memory snapshot to a database name. By default each
// Engine owns a private snapshot even when several instances share a name;
// with SerializeWriters enabled, all instances bound to the same name take
// a process-wide lock around each operation.
type Engine struct {
	name   string
	store  *storage.DiskStore
	logger *slog.Logger

	tables map[string]sql.Schema
	rows   map[string][]sql.Row
	dirty  bool

	// owner serializes operations across engines sharing this database
	// name. Nil unless SerializeWriters is set.
	owner *sync.Mutex
}

// Process-wide registry of per-database-name locks, used when
// SerializeWriters is enabled.
var (
	ownersMu sync.Mutex
	owners   = make(map[string]*sync.Mutex)
)

func ownerLock(name string) *sync.Mutex {
	ownersMu.Lock()
	defer ownersMu.Unlock()

	mu, ok := owners[name]
	if !ok {
		mu = &sync.Mutex{}
		owners[name] = mu
	}
	return mu
}

// New constructs an engine bound to the database name. If a document
// exists for the name it is loaded; otherwise an empty snapshot is created
// and immediately persisted, so every referenced name has a backing file
// from first use. A nil logger disables logging.
func New(name string, cfg config.Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		name:   name,
		store:  storage.NewDiskStore(cfg.DataDir),
		logger: logger.With("database", name),
		tables: make(map[string]sql.Schema),
		rows:   make(map[string][]sql.Row),
	}
	if cfg.SerializeWriters {
		e.owner = ownerLock(name)
	}

	if e.store.Exists(name) {
		doc, err := e.store.Read(name)
		if err != nil {
			return nil, err
		}
		if err := e.loadDocument(doc); err != nil {
			return nil, &storage.CorruptDocumentError{Name: name, Err: err}
		}
		e.logger.Debug("snapshot loaded", "tables", len(e.tables))
	} else {
		e.dirty = true
		if err := e.flush(); err != nil {
			return nil, err
		}
		e.logger.Debug("snapshot created")
	}

	return e, nil
}

// Name returns the database name the engine is bound to.
func (e *Engine) Name() string { return e.name }

// loadDocument reconciles a decoded document into typed tables and rows.
// Cell values come back from encoding/json untyped; the declared schema
// decides what each one is.
func (e *Engine) loadDocument(doc *storage.Document) error {
	for tableName, cols := range doc.Tables {
		schema := make(sql.Schema, len(cols))
		for colName, typeName := range cols {
			colType, err := sql.ParseColumnType(typeName)
			if err != nil {
				return fmt.Errorf("table %q column %q: %w", tableName, colName, err)
			}
			schema[colName] = colType
		}
		e.tables[tableName] = schema
	}

	for tableName, rawRows := range doc.Rows {
		schema, ok := e.tables[tableName]
		if !ok {
			// Row data with no schema is unreachable through the engine;
			// treat it as damage rather than guessing types.
			return fmt.Errorf("rows for unknown table %q", tableName)
		}

		rows := make([]sql.Row, 0, len(rawRows))
		for _, rawRow := range rawRows {
			row := make(sql.Row, len(rawRow))
			for colName, raw := range rawRow {
				colType, ok := schema[colName]
				if !ok {
					return fmt.Errorf("table %q: stored column %q not in schema", tableName, colName)
				}
				v, err := sql.FromNative(raw, colType)
				if err != nil {
					return fmt.Errorf("table %q column %q: %w", tableName, colName, err)
				}
				row[colName] = v
			}
			rows = append(rows, row)
		}
		e.rows[tableName] = rows
	}

	return nil
}

// buildDocument converts the snapshot into its persisted shape.
func (e *Engine) buildDocument() *storage.Document {
	doc := storage.NewDocument()

	for tableName, schema := range e.tables {
		cols := make(map[string]string, len(schema))
		for colName, colType := range schema {
			cols[colName] = colType.String()
		}
		doc.Tables[tableName] = cols

		rawRows := make([]map[string]any, 0, len(e.rows[tableName]))
		for _, row := range e.rows[tableName] {
			rawRow := make(map[string]any, len(row))
			for colName, v := range row {
				rawRow[colName] = v.Native()
			}
			rawRows = append(rawRows, rawRow)
		}
		doc.Rows[tableName] = rawRows
	}

	return doc
}

// flush persists the snapshot when the dirty flag is set and clears it.
// A clean snapshot is a no-op, so calling this before reads costs nothing.
func (e *Engine) flush() error {
	if !e.dirty {
		return nil
	}
	if err := e.store.Write(e.name, e.buildDocument()); err != nil {
		return err
	}
	e.dirty = false
	e.logger.Debug("snapshot flushed", "tables", len(e.tables))
	return nil
}

// markDirtyAndFlush is the write-path tail shared by all five mutating
// statements: any write is durable before the operation returns.
func (e *Engine) markDirtyAndFlush() error {
	e.dirty = true
	return e.flush()
}
