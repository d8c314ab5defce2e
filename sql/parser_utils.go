package sql

import "strings"

// splitQuoteAware splits s on commas, except commas inside single-quoted
// text. Each piece is trimmed; empty pieces are dropped. This is shared by
// the INSERT value list and the UPDATE SET list, where a literal like
// 'Doe, John' must stay one value.
func splitQuoteAware(s string) []string {
	var out []string
	var b strings.Builder
	inQuote := false

	for _, r := range s {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == ',' && !inQuote:
			if p := strings.TrimSpace(b.String()); p != "" {
				out = append(out, p)
			}
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if p := strings.TrimSpace(b.String()); p != "" {
		out = append(out, p)
	}

	return out
}

// splitCommaSeparated splits a plain comma list ("id, name, age") and trims
// each piece. It is fine for column lists, which never contain quotes.
func splitCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// indexFold returns the index of the first occurrence of the upper-case
// keyword kw in s, matched case-insensitively, or -1.
func indexFold(s, kw string) int {
	return strings.Index(strings.ToUpper(s), kw)
}
