package sql

import (
	"fmt"
	"strings"
)

// Parse parses a single SQL statement string into an AST Statement.
// Keywords are case-insensitive and whitespace is flexible; comparison
// operators glued to identifiers (age=24) are accepted.
func Parse(query string) (Statement, error) {
	// Trim leading & trailing whitespace.
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, syntaxErrf("empty statement")
	}

	// Remove trailing semicolon if present.
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}

	// Pad comparison operators with spaces so that "age=24" and
	// "salary>=100" tokenize the same as their spaced forms. This runs on
	// the whole statement text; operators never legally appear as bare
	// characters inside a quoted literal in the supported grammar.
	q = normalizeOperators(q)

	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return nil, syntaxErrf("empty statement")
	}

	switch strings.ToUpper(tokens[0]) {
	case "SELECT":
		return parseSelect(tokens)
	case "INSERT":
		return parseInsert(q, tokens)
	case "CREATE":
		return parseCreateTable(q, tokens)
	case "DROP":
		return parseDropTable(tokens)
	case "DELETE":
		return parseDelete(tokens)
	case "UPDATE":
		return parseUpdate(q)
	default:
		return nil, fmt.Errorf("%w %q (supported: SELECT, INSERT, CREATE, DROP, DELETE, UPDATE)", ErrUnknownCommand, tokens[0])
	}
}

// normalizeOperators inserts a surrounding space around every comparison
// operator so glued forms tokenize correctly. Two-character operators are
// matched first so ">=" does not split into "> =".
func normalizeOperators(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); {
		if i+1 < len(s) {
			two := s[i : i+2]
			if two == ">=" || two == "<=" || two == "!=" {
				b.WriteByte(' ')
				b.WriteString(two)
				b.WriteByte(' ')
				i += 2
				continue
			}
		}
		c := s[i]
		if c == '=' || c == '>' || c == '<' {
			b.WriteByte(' ')
			b.WriteByte(c)
			b.WriteByte(' ')
			i++
			continue
		}
		b.WriteByte(c)
		i++
	}

	return b.String()
}
