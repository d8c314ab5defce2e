package sql

// Statement is the common interface for all parsed SQL statements.
// The set of implementations is closed: one struct per supported command,
// so the executor's dispatch can be an exhaustive type switch.
type Statement interface {
	stmtNode()
}

// ColumnDef is a single "name TYPE" entry of a CREATE TABLE column list.
// Order is preserved as written, even though the schema itself is unordered.
type ColumnDef struct {
	Name string
	Type ColumnType
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []ColumnDef
}

// DropTableStmt represents a parsed DROP TABLE statement.
type DropTableStmt struct {
	TableName string
}

// InsertStmt represents a parsed INSERT INTO ... VALUES (...) statement.
// Values holds the raw literal texts; they are parsed against the target
// table's schema at execution time, not here.
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    []string
}

// SelectStmt represents a parsed SELECT statement. An empty Columns slice
// means "all columns" (SELECT *).
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     []Condition
}

// Assignment is one "column = literal" entry of an UPDATE SET list.
type Assignment struct {
	Column string
	Value  string
}

// UpdateStmt represents a parsed UPDATE ... SET ... statement.
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       []Condition
}

// DeleteStmt represents a parsed DELETE FROM statement. An empty Where
// slice means "delete everything".
type DeleteStmt struct {
	TableName string
	Where     []Condition
}

func (*CreateTableStmt) stmtNode() {}
func (*DropTableStmt) stmtNode()   {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}

// CompareOp is a WHERE comparison operator.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
	OpIsNull
	OpIsNotNull
)

func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGe:
		return ">="
	case OpLe:
		return "<="
	case OpIsNull:
		return "IS NULL"
	case OpIsNotNull:
		return "IS NOT NULL"
	default:
		return "?"
	}
}

// Connective joins a condition to the running result of the conditions
// before it. ConnNone is only valid on the first condition of a chain.
type Connective int

const (
	ConnNone Connective = iota
	ConnAnd
	ConnOr
)

// Condition is one predicate of a WHERE chain. Value holds the raw literal
// text; it is parsed against the column's declared type at evaluation time.
// The NULL operators carry no literal.
type Condition struct {
	Column     string
	Op         CompareOp
	Value      string
	Connective Connective
}
