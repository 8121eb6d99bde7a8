package confschema

import (
	"fmt"
	"regexp"
	"strings"
)

// Structural markers recognized by the classifier. All other delimiter
// conventions in the input are opaque content.
const (
	commentMarker  = "##"
	templateMarker = "{{"
)

var (
	paramExpr   = regexp.MustCompile(`^## @param (\w+) - ([^-]+) - (optional|required)(?: - default: (.+))?`)
	sectionExpr = regexp.MustCompile(`^## @param (\w+) - custom object - optional`)
)

// LineKind classifies one whitespace-trimmed line of a configuration
// template.
type LineKind int

// Line kinds, in classification order.
const (
	// KindContent is any line that is neither a comment nor a template
	// control marker, including blank lines.
	KindContent LineKind = iota
	// KindComment is a comment line carrying no recognized directive.
	// Malformed directives reclassify here.
	KindComment
	// KindTemplateOpen is a template control marker opening a block.
	KindTemplateOpen
	// KindTemplateClose is a template control marker containing the "end"
	// token.
	KindTemplateClose
	// KindSection is a section-opening directive
	// ("## @param <name> - custom object - optional").
	KindSection
	// KindParam is a parameter directive.
	KindParam
)

// ParamDirective is one parsed ## @param comment line.
type ParamDirective struct {
	// Name is the parameter identifier.
	Name string
	// RawType is the free-text type description as written, e.g.
	// "list of strings". Map it with [SchemaType].
	RawType string
	// RawDefault is the free-text default value. Meaningful only when
	// HasDefault is true.
	RawDefault string
	// HasDefault reports whether a "default:" clause was written.
	HasDefault bool
	// Required reports whether the directive was flagged required.
	Required bool
}

// String re-serializes the directive into its comment grammar.
func (p ParamDirective) String() string {
	flag := "optional"
	if p.Required {
		flag = "required"
	}

	s := fmt.Sprintf("## @param %s - %s - %s", p.Name, p.RawType, flag)
	if p.HasDefault {
		s += " - default: " + p.RawDefault
	}

	return s
}

// Classify determines what kind of line a whitespace-trimmed template line
// is. Classification is total: every input maps to exactly one kind, and a
// comment line that fails both directive grammars is a plain comment rather
// than an error.
func Classify(trimmed string) LineKind {
	switch {
	case strings.HasPrefix(trimmed, templateMarker):
		if strings.Contains(trimmed, "end") {
			return KindTemplateClose
		}

		return KindTemplateOpen

	case strings.HasPrefix(trimmed, commentMarker):
		if _, ok := ParseSection(trimmed); ok {
			return KindSection
		}

		if _, ok := ParseParam(trimmed); ok {
			return KindParam
		}

		return KindComment
	}

	return KindContent
}

// ParseSection parses a section-opening directive and returns the section
// name. Sections are always optional custom objects; any other shape fails.
func ParseSection(trimmed string) (string, bool) {
	m := sectionExpr.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}

	return m[1], true
}

// ParseParam parses a parameter directive line. The type text is everything
// between the first " - " and the required/optional token and may not embed
// that separator; the default clause is only consumed when the literal
// "default:" token follows.
func ParseParam(trimmed string) (ParamDirective, bool) {
	m := paramExpr.FindStringSubmatch(trimmed)
	if m == nil {
		return ParamDirective{}, false
	}

	p := ParamDirective{
		Name:     m[1],
		RawType:  strings.TrimSpace(m[2]),
		Required: m[3] == "required",
	}

	if m[4] != "" {
		p.RawDefault = strings.TrimSpace(m[4])
		p.HasDefault = true
	}

	return p, true
}
