package sql

import "strings"

// parseWhereChain walks the tokens after WHERE and builds the flat
// condition chain. AND/OR set the connective for the condition that
// follows them. A predicate is either the 3-token "column op literal"
// form, "column IS NULL", or "column IS NOT NULL".
//
// A malformed trailing fragment (fewer tokens left than a predicate needs)
// is dropped silently rather than rejected; the engine has always been
// permissive here and callers rely on it.
func parseWhereChain(tokens []string) ([]Condition, error) {
	var conds []Condition
	conn := ConnNone

	i := 0
	for i < len(tokens) {
		switch strings.ToUpper(tokens[i]) {
		case "AND":
			conn = ConnAnd
			i++
			continue
		case "OR":
			conn = ConnOr
			i++
			continue
		}

		column := tokens[i]

		// NULL predicates: "col IS NULL" / "col IS NOT NULL".
		if i+1 < len(tokens) && strings.EqualFold(tokens[i+1], "IS") {
			if i+2 < len(tokens) && strings.EqualFold(tokens[i+2], "NULL") {
				conds = append(conds, Condition{Column: column, Op: OpIsNull, Connective: conn})
				conn = ConnNone
				i += 3
				continue
			}
			if i+3 < len(tokens) && strings.EqualFold(tokens[i+2], "NOT") && strings.EqualFold(tokens[i+3], "NULL") {
				conds = append(conds, Condition{Column: column, Op: OpIsNotNull, Connective: conn})
				conn = ConnNone
				i += 4
				continue
			}
			// Trailing "col IS" fragment: drop it.
			break
		}

		if i+2 >= len(tokens) {
			// Trailing fragment shorter than "column op literal": drop it.
			break
		}

		op, err := parseCompareOp(tokens[i+1])
		if err != nil {
			return nil, err
		}

		conds = append(conds, Condition{
			Column:     column,
			Op:         op,
			Value:      tokens[i+2],
			Connective: conn,
		})
		conn = ConnNone
		i += 3
	}

	return conds, nil
}

func parseCompareOp(tok string) (CompareOp, error) {
	switch tok {
	case "=":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case ">":
		return OpGt, nil
	case "<":
		return OpLt, nil
	case ">=":
		return OpGe, nil
	case "<=":
		return OpLe, nil
	default:
		return 0, syntaxErrf("WHERE: unsupported operator %q", tok)
	}
}
