package storage

// Document is the persisted shape of one database: a single JSON file with
// two top-level fields. Tables maps table name to column name to the
// column-type name ("INT", "FLOAT", "VARCHAR"); Rows maps table name to
// the ordered list of row objects, with cell values encoded as native JSON
// numbers, strings, or null.
//
// The document is deliberately untyped on the value side: encoding/json
// decodes every number as float64, and reconciling cells back to typed
// values is the snapshot's job, using the declared schema.
type Document struct {
	Tables map[string]map[string]string `json:"Tables"`
	Rows   map[string][]map[string]any  `json:"Rows"`
}

// NewDocument returns an empty document with both maps allocated, so a
// freshly created database persists as {"Tables":{},"Rows":{}} rather than
// nulls.
func NewDocument() *Document {
	return &Document{
		Tables: make(map[string]map[string]string),
		Rows:   make(map[string][]map[string]any),
	}
}
