// Package confschema extracts JSON Schema (Draft 7) from templated
// configuration files whose schema information lives in comment directives.
//
// The input format interleaves three kinds of structure:
//
//   - Comment directives of the form
//     "## @param <name> - <type> - optional|required [- default: <value>]"
//     carrying the schema metadata for the configuration line that follows.
//   - Template control blocks ("{{ ... }}") bounding the scope of sections.
//   - The configuration lines themselves, whose indentation is the only
//     reliable signal of nesting depth.
//
// There is no close marker tying a parameter to its owning section, so
// section membership is inferred from three composed signals with strict
// precedence: a zero-indent parameter always attaches to the root; an
// indented parameter attaches to the innermost open section; and when no
// section is open, a backward scan over already-seen section directives,
// bounded by the nearest template close, decides the context.
//
// # Best-Effort Parsing
//
// Extraction never fails. Per-line ambiguity is resolved locally with a safe
// default: malformed directives reclassify as plain comments, unknown type
// descriptions map to "string", unparseable or placeholder defaults omit the
// default field, and a template close with no open section is a no-op. The
// goal is to recover as much schema as possible from loosely structured
// comments, not to validate them.
//
// # Usage
//
//	gen := confschema.NewGenerator(
//		confschema.WithTitle("Agent Configuration"),
//	)
//
//	schema := gen.Generate(templateBytes)
//
//	out, err := json.MarshalIndent(schema, "", "  ")
//
// Each Generate call owns its parse state exclusively; a Generator may be
// reused, but a single Generate call must be treated as atomic.
//
// For already-structured configuration spec trees (where every node nests
// explicitly), see the subpackage [github.com/confkit/confschema/specyaml].
package confschema
