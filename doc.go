// Package mdtext converts a goldmark Markdown AST into a flat sequence of
// styled text lines suitable for terminal rendering.
//
// # Quick Start
//
// Parse and convert in one step with ConvertString:
//
//	doc, err := mdtext.ConvertString("# Hello\n\nSome *body* text.", mdtext.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range doc.Lines {
//	    // hand each line to a renderer
//	}
//
// Callers that already hold a parsed tree can convert it directly:
//
//	doc, err := mdtext.Convert(root, source, mdtext.DefaultOptions())
//
// # Model
//
// The output is a Document: an ordered slice of Lines. A Line is either a
// styled block (paragraph, header, code, quote, list item) holding a run of
// Compounds, or a structural marker such as a horizontal rule. A Compound is
// a fragment of text tagged with independent bold, italic, code, and
// strikeout flags. Compounds never span a line break; layout concerns such
// as wrapping and column widths are left entirely to the renderer.
//
// # Coverage
//
// Headings, paragraphs, text, emphasis, strong, strikethrough, inline code,
// links, unordered lists, code blocks, and thematic breaks convert. Ordered
// lists, tables, images, block quotes, and raw HTML are rejected with an
// error that names the offending node and its ancestry; see EmitError.
//
// Conversion is a single synchronous walk over a borrowed tree. Each call
// owns its own state, so concurrent calls are safe as long as the inputs are
// not mutated.
package mdtext
