package engine

import "jsondb/sql"

// matchesConditions evaluates the flat condition chain against one row.
// The first condition seeds the accumulator; every later condition
// combines its own result with the accumulator through its declared
// connective, strictly left to right. There is no precedence and no
// grouping, mirroring the grammar's lack of parentheses:
// "a AND b OR c" is ((a AND b) OR c).
func matchesConditions(row sql.Row, schema sql.Schema, conds []sql.Condition) bool {
	result := false
	for i, cond := range conds {
		v := evalCondition(row, schema, cond)
		if i == 0 {
			result = v
			continue
		}
		switch cond.Connective {
		case sql.ConnOr:
			result = result || v
		default:
			result = result && v
		}
	}
	return result
}

// evalCondition evaluates a single predicate. A column missing from the
// row or the schema makes the condition false. A stored Null fails every
// operator except the two NULL operators, which look only at the
// null/non-null state and never need the column type.
func evalCondition(row sql.Row, schema sql.Schema, cond sql.Condition) bool {
	stored, ok := row[cond.Column]
	if !ok {
		return false
	}
	colType, ok := schema[cond.Column]
	if !ok {
		return false
	}

	switch cond.Op {
	case sql.OpIsNull:
		return stored.IsNull()
	case sql.OpIsNotNull:
		return !stored.IsNull()
	}

	if stored.IsNull() {
		return false
	}

	literal, err := parseConditionLiteral(cond.Value, colType)
	if err != nil {
		// A literal that cannot take a comparable type can never match.
		return false
	}

	cmp := sql.Compare(stored, literal)
	return applyCompareOp(cond.Op, cmp)
}

// parseConditionLiteral parses a WHERE literal against the column's
// declared type. A non-integral literal on an INT column falls back to
// float, so "age < 20.5" compares 20 against 20.5 by numeric promotion
// instead of silently matching nothing.
func parseConditionLiteral(text string, colType sql.ColumnType) (sql.Value, error) {
	v, err := sql.ParseLiteral(text, colType)
	if err != nil && colType == sql.ColInt {
		return sql.ParseLiteral(text, sql.ColFloat)
	}
	return v, err
}

func applyCompareOp(op sql.CompareOp, cmp int) bool {
	switch op {
	case sql.OpEq:
		return cmp == 0
	case sql.OpNe:
		return cmp != 0
	case sql.OpGt:
		return cmp > 0
	case sql.OpLt:
		return cmp < 0
	case sql.OpGe:
		return cmp >= 0
	case sql.OpLe:
		return cmp <= 0
	default:
		return false
	}
}
