package mdtext

import (
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// classify maps a node to the stable symbolic name used in error messages.
// It is total: every kind goldmark or its bundled extensions can produce has
// a name, and unknown kinds fall back to goldmark's own kind string so new
// extensions still classify to something readable.
func classify(n ast.Node) string {
	switch n.Kind() {
	case ast.KindDocument:
		return "document"
	case ast.KindHeading:
		return "heading"
	case ast.KindParagraph:
		return "paragraph"
	case ast.KindTextBlock:
		return "text block"
	case ast.KindText:
		return "text"
	case ast.KindString:
		return "string"
	case ast.KindEmphasis:
		// goldmark folds *x* and **x** into one node; keep the distinction
		// the way a reader of the source markdown would.
		if em, ok := n.(*ast.Emphasis); ok && em.Level >= 2 {
			return "strong"
		}
		return "emphasis"
	case ast.KindCodeSpan:
		return "inline code"
	case ast.KindLink:
		return "link"
	case ast.KindAutoLink:
		return "auto link"
	case ast.KindImage:
		return "image"
	case ast.KindList:
		return "list"
	case ast.KindListItem:
		return "list item"
	case ast.KindCodeBlock:
		return "code block"
	case ast.KindFencedCodeBlock:
		return "fenced code block"
	case ast.KindBlockquote:
		return "block quote"
	case ast.KindThematicBreak:
		return "thematic break"
	case ast.KindHTMLBlock:
		return "HTML block"
	case ast.KindRawHTML:
		return "raw HTML"
	case extast.KindStrikethrough:
		return "strikethrough"
	case extast.KindTable:
		return "table"
	case extast.KindTableHeader:
		return "table header"
	case extast.KindTableRow:
		return "table row"
	case extast.KindTableCell:
		return "table cell"
	case extast.KindTaskCheckBox:
		return "task checkbox"
	case extast.KindFootnote:
		return "footnote"
	case extast.KindFootnoteLink:
		return "footnote link"
	case extast.KindFootnoteBacklink:
		return "footnote backlink"
	case extast.KindFootnoteList:
		return "footnote list"
	case extast.KindDefinitionList:
		return "definition list"
	case extast.KindDefinitionTerm:
		return "definition term"
	case extast.KindDefinitionDescription:
		return "definition description"
	}
	return n.Kind().String()
}
