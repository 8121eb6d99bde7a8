package confschema

import "strings"

// docLine is one line of the input document. The slice of docLines is
// immutable for the duration of a parse; the scan helpers below read it by
// index and never mutate state.
type docLine struct {
	trimmed string // fully whitespace-trimmed
	indent  int    // count of leading whitespace characters
}

// splitLines loads a document into line-indexed text.
func splitLines(input []byte) []docLine {
	raw := strings.Split(string(input), "\n")
	lines := make([]docLine, len(raw))

	for i, s := range raw {
		s = strings.TrimRight(s, " \t\r")
		lines[i] = docLine{
			trimmed: strings.TrimSpace(s),
			indent:  len(s) - len(strings.TrimLeft(s, " \t")),
		}
	}

	return lines
}

// descriptionAfter assembles the human-readable description following the
// parameter directive at index i. It consumes contiguous comment lines,
// stopping (without consuming) at the next @param directive or an @env
// annotation, so descriptions never bleed between adjacent parameters.
// Returns an empty string when no description lines are present.
func descriptionAfter(lines []docLine, i int) string {
	var parts []string

	for j := i + 1; j < len(lines); j++ {
		t := lines[j].trimmed
		if !strings.HasPrefix(t, commentMarker) {
			break
		}

		if strings.HasPrefix(t, "## @param") || strings.HasPrefix(t, "## @env") {
			break
		}

		desc := strings.TrimSpace(strings.TrimPrefix(t, commentMarker))
		if desc != "" {
			parts = append(parts, desc)
		}
	}

	return strings.Join(parts, " ")
}

// configIndentAfter returns the indentation depth of the first genuine
// configuration line following the comment block of the directive at index
// i. Comment and template-marker lines are skipped. Returns 0 when the end
// of the document is reached first, which places the parameter at the root.
//
// The configuration line a comment documents is the only reliable signal of
// nesting depth; the comment block itself carries no indentation semantics.
func configIndentAfter(lines []docLine, i int) int {
	j := i + 1

	for j < len(lines) && strings.HasPrefix(lines[j].trimmed, commentMarker) {
		j++
	}

	for ; j < len(lines); j++ {
		t := lines[j].trimmed
		if t != "" && !strings.HasPrefix(t, commentMarker) && !strings.HasPrefix(t, templateMarker) {
			return lines[j].indent
		}
	}

	return 0
}

// sectionContext walks preceding lines in reverse looking for the section
// directive that owns the parameter at index i. The scan is bounded by the
// nearest template close: a parameter appearing after a closed block never
// resolves to the long-since-closed section.
func sectionContext(lines []docLine, i int) (string, bool) {
	for j := i - 1; j >= 0; j-- {
		t := lines[j].trimmed

		if name, ok := ParseSection(t); ok {
			return name, true
		}

		if strings.HasPrefix(t, templateMarker) && strings.Contains(t, "end") {
			break
		}
	}

	return "", false
}

// resolveSection decides which section owns the parameter at index i, if
// any. Indentation and explicit section scope are both partial signals in
// hand-written templates, so the decision composes them with a strict
// precedence:
//
//  1. A zero-indent parameter always documents a root-level setting.
//  2. An indented parameter belongs to the innermost open section.
//  3. With no section open, fall back to the backward context scan.
//
// An empty result means root attachment. The function is pure: a fixed
// (lines, i, current, indent) input always resolves the same way.
func resolveSection(lines []docLine, i int, current string, indent int) string {
	if indent == 0 {
		return ""
	}

	if current != "" {
		return current
	}

	if name, ok := sectionContext(lines, i); ok {
		return name
	}

	return ""
}
