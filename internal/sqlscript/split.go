// Package sqlscript runs semicolon-terminated SQL scripts statement by
// statement, the way schema provisioning scripts are shipped.
package sqlscript

import "strings"

// Split tokenizes a script into individual statements. Line comments
// (-- to end of line) and block comments are stripped first; a semicolon
// inside a single- or double-quoted literal does not terminate a
// statement; a trailing statement without a semicolon is still emitted.
//
// Quote tracking is a two-state machine that remembers which quote
// character opened the string. It does not understand escaped quotes
// inside a literal; comment stripping runs before quote tracking and is
// itself not quote-aware. Both are accepted limitations for DDL scripts.
func Split(script string) []string {
	script = stripComments(script)

	var (
		statements []string
		current    strings.Builder
		inString   bool
		quote      byte
	)

	for i := 0; i < len(script); i++ {
		ch := script[i]

		if ch == '\'' || ch == '"' {
			switch {
			case !inString:
				inString = true
				quote = ch
			case ch == quote:
				inString = false
			}
		}

		current.WriteByte(ch)

		if ch == ';' && !inString {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}

func stripComments(script string) string {
	var out strings.Builder

	for i := 0; i < len(script); {
		if strings.HasPrefix(script[i:], "--") {
			if end := strings.IndexByte(script[i:], '\n'); end >= 0 {
				i += end // keep the newline
			} else {
				i = len(script)
			}

			continue
		}

		if strings.HasPrefix(script[i:], "/*") {
			if end := strings.Index(script[i+2:], "*/"); end >= 0 {
				i += 2 + end + 2
			} else {
				i = len(script)
			}

			continue
		}

		out.WriteByte(script[i])
		i++
	}

	return out.String()
}
