package mdtext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"
)

// markdown is the parser used by ConvertString. Strikethrough is the only
// extension whose nodes the converter accepts; richer GFM constructs such as
// tables are rejected during conversion anyway, so they are not parsed.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// Convert walks a parsed markdown tree and produces the styled document.
// The source bytes must be the ones the tree was parsed from; goldmark nodes
// reference segments of them. The tree is only borrowed: it is not mutated
// and not retained beyond error reporting.
func Convert(root ast.Node, source []byte, opts Options) (Document, error) {
	e := newEmitter(source, opts)
	if err := e.emit(root, textStyle{}); err != nil {
		return Document{}, err
	}
	return e.finish(), nil
}

// ConvertString parses markdown and converts it in one step. Line endings
// are normalized first so segmentation and code blocks only ever see "\n".
func ConvertString(source string, opts Options) (Document, error) {
	src := []byte(normalizeLineEndings(source))
	root := markdown.Parser().Parse(gtext.NewReader(src), parser.WithContext(parser.NewContext()))
	return Convert(root, src, opts)
}
