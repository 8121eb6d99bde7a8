package confschema

import (
	"errors"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaURI is the JSON Schema dialect emitted for templated configuration
// files.
const SchemaURI = "http://json-schema.org/draft-07/schema#"

// Sentinel errors surfaced by the CLI layer. Extraction itself never fails;
// these cover the I/O around it.
var (
	ErrReadInput   = errors.New("read input")
	ErrWriteOutput = errors.New("write output")
)

// Generator extracts a JSON Schema from a templated configuration file.
//
// Create instances with [NewGenerator]. A Generator carries only
// configuration; each [Generator.Generate] call owns its parse state
// exclusively, so a Generator may be reused across calls but a single call
// must be treated as atomic.
type Generator struct {
	title string
	id    string
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithID sets the schema $id.
func WithID(id string) Option {
	return func(g *Generator) {
		g.id = id
	}
}

// parseState is the record of mutable state for one Generate call: the
// immutable line sequence, the schema document under construction, and the
// section scope. All mutation is confined to the driver loop; the scan
// helpers read lines by index and return values.
type parseState struct {
	lines          []docLine
	schema         *jsonschema.Schema
	currentSection string
	sectionStack   []string
}

// Generate walks the document once, left to right, and returns the
// assembled schema. It never fails: every per-line ambiguity is resolved
// with a documented default (see the package documentation).
func (g *Generator) Generate(input []byte) *jsonschema.Schema {
	st := &parseState{
		lines: splitLines(input),
		schema: &jsonschema.Schema{
			Schema:               SchemaURI,
			Title:                g.title,
			ID:                   g.id,
			Type:                 typeObject,
			Properties:           make(map[string]*jsonschema.Schema),
			AdditionalProperties: FalseSchema(),
		},
	}

	for i, ln := range st.lines {
		if ln.trimmed == "" {
			continue
		}

		switch Classify(ln.trimmed) {
		case KindTemplateClose:
			st.popSection()

		case KindTemplateOpen:
			// Template opens do not affect section scope; only section
			// directives push.

		case KindSection:
			name, ok := ParseSection(ln.trimmed)
			if ok {
				st.openSection(name)
			}

		case KindParam:
			p, ok := ParseParam(ln.trimmed)
			if ok {
				st.addParam(i, p)
			}

		case KindComment, KindContent:
		}
	}

	return st.schema
}

// popSection closes the innermost open section. Popping with no open
// section is a no-op, never an error.
func (st *parseState) popSection() {
	if len(st.sectionStack) == 0 {
		return
	}

	popped := st.sectionStack[len(st.sectionStack)-1]
	st.sectionStack = st.sectionStack[:len(st.sectionStack)-1]

	st.currentSection = ""
	if len(st.sectionStack) > 0 {
		st.currentSection = st.sectionStack[len(st.sectionStack)-1]
	}

	slog.Debug("closed template block",
		slog.String("popped", popped),
		slog.String("current", st.currentSection),
	)
}

// openSection makes name the current section and creates its object node
// under the root properties. Sections are only ever declared at comment
// scope, so they always attach to the root mapping by name; re-declaring a
// section replaces its node.
func (st *parseState) openSection(name string) {
	st.currentSection = name
	st.sectionStack = append(st.sectionStack, name)

	st.schema.Properties[name] = &jsonschema.Schema{
		Type:        typeObject,
		Description: "Configuration for " + name,
		Properties:  make(map[string]*jsonschema.Schema),
	}

	slog.Debug("opened section",
		slog.String("section", name),
		slog.Int("depth", len(st.sectionStack)),
	)
}

// addParam builds the property node for the directive at index i and
// inserts it at its resolved attachment point.
func (st *parseState) addParam(i int, p ParamDirective) {
	desc := descriptionAfter(st.lines, i)
	indent := configIndentAfter(st.lines, i)
	section := resolveSection(st.lines, i, st.currentSection, indent)

	slog.Debug("resolved parameter",
		slog.String("name", p.Name),
		slog.Int("indent", indent),
		slog.String("section", section),
	)

	node := buildNode(p, desc)

	target := st.schema
	if section != "" {
		target = st.sectionNode(section)
	}

	target.Properties[p.Name] = node

	if p.Required {
		target.Required = append(target.Required, p.Name)
	}
}

// sectionNode returns the root-level node for the named section, creating
// it on demand. Creation only happens when the backward context scan
// resolves a section whose directive failed to produce a node earlier;
// aborting would violate the best-effort contract.
func (st *parseState) sectionNode(name string) *jsonschema.Schema {
	node, ok := st.schema.Properties[name]
	if !ok {
		node = &jsonschema.Schema{
			Type:        typeObject,
			Description: "Configuration for " + name,
			Properties:  make(map[string]*jsonschema.Schema),
		}
		st.schema.Properties[name] = node
	}

	if node.Properties == nil {
		node.Properties = make(map[string]*jsonschema.Schema)
	}

	return node
}

// buildNode converts a parsed directive and its description into a property
// schema node.
func buildNode(p ParamDirective, desc string) *jsonschema.Schema {
	t := SchemaType(p.RawType)

	node := &jsonschema.Schema{
		Type:        t,
		Description: desc,
	}

	if p.HasDefault {
		if v, ok := CoerceDefault(p.RawDefault); ok {
			node.Default = DefaultValue(v)
		}
	}

	switch t {
	case typeArray:
		node.Items = ItemsSchema(p.RawType)

		if node.Default == nil {
			node.Default = DefaultValue([]any{})
		}

	case typeObject:
		// The source format never enumerates sub-keys of plain object
		// parameters, so the schema must admit unknown ones.
		node.AdditionalProperties = TrueSchema()
	}

	return node
}
