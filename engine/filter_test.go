package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jsondb/sql"
)

func TestEvalCondition(t *testing.T) {
	schema := sql.Schema{
		"username": sql.ColVarchar,
		"age":      sql.ColInt,
		"salary":   sql.ColFloat,
	}
	row := sql.Row{
		"username": textVal("hamza"),
		"age":      intVal(24),
		"salary":   sql.Null,
	}

	tests := []struct {
		name string
		cond sql.Condition
		want bool
	}{
		{"eq text", sql.Condition{Column: "username", Op: sql.OpEq, Value: "'hamza'"}, true},
		{"eq text quoteless literal", sql.Condition{Column: "username", Op: sql.OpEq, Value: "hamza"}, true},
		{"ne text", sql.Condition{Column: "username", Op: sql.OpNe, Value: "'x'"}, true},
		{"gt int", sql.Condition{Column: "age", Op: sql.OpGt, Value: "20"}, true},
		{"ge boundary", sql.Condition{Column: "age", Op: sql.OpGe, Value: "24"}, true},
		{"lt fails", sql.Condition{Column: "age", Op: sql.OpLt, Value: "24"}, false},
		{"int vs float literal", sql.Condition{Column: "age", Op: sql.OpLt, Value: "24.5"}, true},
		{"unknown column", sql.Condition{Column: "ghost", Op: sql.OpEq, Value: "1"}, false},
		{"null fails comparison", sql.Condition{Column: "salary", Op: sql.OpEq, Value: "0"}, false},
		{"null fails gt", sql.Condition{Column: "salary", Op: sql.OpGt, Value: "0"}, false},
		{"is null on null", sql.Condition{Column: "salary", Op: sql.OpIsNull}, true},
		{"is null on value", sql.Condition{Column: "age", Op: sql.OpIsNull}, false},
		{"is not null on value", sql.Condition{Column: "age", Op: sql.OpIsNotNull}, true},
		{"is not null on null", sql.Condition{Column: "salary", Op: sql.OpIsNotNull}, false},
		{"unparsable literal", sql.Condition{Column: "age", Op: sql.OpEq, Value: "'abc'"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evalCondition(row, schema, tt.cond))
		})
	}
}

func TestMatchesConditions_LeftToRight(t *testing.T) {
	schema := sql.Schema{"age": sql.ColInt, "salary": sql.ColFloat}

	conds := []sql.Condition{
		{Column: "age", Op: sql.OpGt, Value: "20"},
		{Column: "salary", Op: sql.OpLt, Value: "1500.0", Connective: sql.ConnAnd},
		{Column: "age", Op: sql.OpEq, Value: "18", Connective: sql.ConnOr},
	}

	tests := []struct {
		name string
		row  sql.Row
		want bool
	}{
		{"both left conditions hold", sql.Row{"age": intVal(24), "salary": floatVal(1000)}, true},
		{"or branch rescues", sql.Row{"age": intVal(18), "salary": floatVal(2000)}, true},
		{"and half fails, or fails", sql.Row{"age": intVal(24), "salary": floatVal(2000)}, false},
		{"nothing holds", sql.Row{"age": intVal(19), "salary": floatVal(2000)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesConditions(tt.row, schema, conds))
		})
	}
}

func TestMatchesConditions_EmptyChainIsFalse(t *testing.T) {
	// Callers treat an empty chain as "no filter" before ever reaching
	// this function; called directly it matches nothing.
	assert.False(t, matchesConditions(sql.Row{}, sql.Schema{}, nil))
}
