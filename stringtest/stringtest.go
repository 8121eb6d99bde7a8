// Package stringtest provides helpers for constructing multi-line string
// fixtures in tests.
package stringtest

import "strings"

// Input converts an indented raw-string literal into test input: a leading
// blank line is dropped, the common leading tab indentation of the remaining
// lines is stripped, and a trailing newline is preserved.
//
// Example:
//
//	input := stringtest.Input(`
//		## @param port - integer - optional - default: 8080
//		port: 8080
//	`)
func Input(s string) string {
	lines := strings.Split(s, "\n")

	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	// Common indentation is the minimum tab run across non-blank lines.
	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := 0
		for n < len(line) && line[n] == '\t' {
			n++
		}

		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		return strings.Join(lines, "\n") + "\n"
	}

	out := make([]string, len(lines))

	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		} else {
			out[i] = line
		}
	}

	return strings.Join(out, "\n") + "\n"
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
