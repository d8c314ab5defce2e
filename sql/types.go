package sql

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnType is the declared type of a table column. It is fixed at
// CREATE TABLE time and never changes for the lifetime of the table.
type ColumnType int

const (
	ColInt ColumnType = iota
	ColFloat
	ColVarchar
)

// ParseColumnType maps a SQL type name (case-insensitive) to a ColumnType.
func ParseColumnType(s string) (ColumnType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INT":
		return ColInt, nil
	case "FLOAT":
		return ColFloat, nil
	case "VARCHAR":
		return ColVarchar, nil
	default:
		return 0, &SyntaxError{Reason: fmt.Sprintf("unknown column type %q (want INT, FLOAT or VARCHAR)", s)}
	}
}

// String returns the SQL type name, which is also the on-disk encoding.
func (t ColumnType) String() string {
	switch t {
	case ColInt:
		return "INT"
	case ColFloat:
		return "FLOAT"
	case ColVarchar:
		return "VARCHAR"
	default:
		return "UNKNOWN"
	}
}

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindText
)

// Value represents a single cell in a table (one column in one row).
// Only the field matching Kind should be read; other fields remain at their
// zero values to keep the struct compact and easy to inspect while debugging.
type Value struct {
	Kind ValueKind

	I64 int64   // for KindInt
	F64 float64 // for KindFloat
	S   string  // for KindText
}

// Null is the canonical null Value.
var Null = Value{Kind: KindNull}

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// String returns the textual form of the value. Null renders as the empty
// string; floats use the shortest representation that round-trips.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'f', -1, 64)
	case KindText:
		return v.S
	default:
		return ""
	}
}

// Native converts v to the value stored in the JSON document: a number,
// a string, or nil.
func (v Value) Native() any {
	switch v.Kind {
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindText:
		return v.S
	default:
		return nil
	}
}

// FromNative reconciles a generically decoded JSON value back into a typed
// Value using the column's declared type. encoding/json decodes every
// number as float64, so the schema decides whether it was an integer.
func FromNative(raw any, t ColumnType) (Value, error) {
	if raw == nil {
		return Null, nil
	}
	switch t {
	case ColInt:
		switch n := raw.(type) {
		case float64:
			return Value{Kind: KindInt, I64: int64(n)}, nil
		case int64:
			return Value{Kind: KindInt, I64: n}, nil
		}
	case ColFloat:
		switch n := raw.(type) {
		case float64:
			return Value{Kind: KindFloat, F64: n}, nil
		case int64:
			return Value{Kind: KindFloat, F64: float64(n)}, nil
		}
	case ColVarchar:
		if s, ok := raw.(string); ok {
			return Value{Kind: KindText, S: s}, nil
		}
	}
	return Value{}, fmt.Errorf("stored value %v (%T) does not match column type %s", raw, raw, t)
}

// ParseLiteral parses a raw SQL literal against a declared column type.
// The bare word NULL (case-insensitive) yields Null for any column type.
// VARCHAR literals have one level of single quotes stripped when present.
func ParseLiteral(text string, t ColumnType) (Value, error) {
	s := strings.TrimSpace(text)
	if strings.EqualFold(s, "NULL") {
		return Null, nil
	}

	switch t {
	case ColInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, &TypeConversionError{Text: s, Type: t}
		}
		return Value{Kind: KindInt, I64: i}, nil
	case ColFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, &TypeConversionError{Text: s, Type: t}
		}
		return Value{Kind: KindFloat, F64: f}, nil
	case ColVarchar:
		if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
			s = s[1 : len(s)-1]
		}
		return Value{Kind: KindText, S: s}, nil
	default:
		return Value{}, &TypeConversionError{Text: s, Type: t}
	}
}

// Compare is the typed three-way comparison shared by every WHERE operator.
// Integer vs float compares by promoting the integer; any pairing outside
// the numeric and text/text cases falls back to ordinal comparison of the
// two textual forms.
func Compare(a, b Value) int {
	switch {
	case a.Kind == KindInt && b.Kind == KindInt:
		return cmpInt64(a.I64, b.I64)
	case a.Kind == KindFloat && b.Kind == KindFloat:
		return cmpFloat64(a.F64, b.F64)
	case a.Kind == KindInt && b.Kind == KindFloat:
		return cmpFloat64(float64(a.I64), b.F64)
	case a.Kind == KindFloat && b.Kind == KindInt:
		return cmpFloat64(a.F64, float64(b.I64))
	default:
		return strings.Compare(a.String(), b.String())
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Schema maps column name to declared type. Column order is not significant.
type Schema map[string]ColumnType

// Row maps column name to Value. After insertion every schema column is
// physically present; columns the INSERT did not provide hold Null.
type Row map[string]Value
