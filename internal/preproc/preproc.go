// Package preproc strips comments from source text before it reaches the
// lexer. It is a direct, idiomatic-Go port of the original shiro
// interpreter's preprocessing pass: a single left-to-right scan with a nesting counter
// for block comments, so that "[# outer [# inner #] still-outer #]"
// closes correctly.
package preproc

import "strings"

// Strip removes `#` line comments and nestable `[# ... #]` block comments
// from code, and normalizes CRLF/CR line endings to LF. It never returns an
// error: unterminated block comments simply consume the rest of the input,
// matching the original preprocessor's behavior.
func Strip(code string) string {
	var out strings.Builder
	out.Grow(len(code))

	runes := []rune(code)
	n := len(runes)
	nesting := 0
	singleLine := false

	peek := func(i int) rune {
		if i >= n {
			return 0
		}
		return runes[i]
	}

	for i := 0; i < n; i++ {
		cur := runes[i]
		if cur == '\r' {
			continue
		}

		nxt := peek(i + 1)

		if cur == '[' && nxt == '#' {
			nesting++
			i++
			continue
		}
		if cur == '#' && nxt == ']' {
			if nesting > 0 {
				nesting--
			}
			i++
			continue
		}
		if cur == '#' && !singleLine {
			nesting++
			singleLine = true
			continue
		}
		if cur == '\n' && nesting > 0 && singleLine {
			singleLine = false
			nesting--
		}

		if nesting == 0 {
			out.WriteRune(cur)
		}
	}

	return out.String()
}
