package mdtext

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"
)

// listIndent is prepended to block lines nested under a list item to keep
// them visually inside the item.
const listIndent = "  "

// maxListIndent caps the indent carried by a list item line. Indents run
// 0..254, so 255 nested list levels convert and the 256th fails.
const maxListIndent = 254

// textStyle is the inline style context inherited by text during emission.
// It is passed down the recursion by value, so leaving an emphasis subtree
// restores the previous flags without bookkeeping.
type textStyle struct {
	bold      bool
	italic    bool
	code      bool
	strikeout bool
}

// modelKind discriminates the content model states.
type modelKind uint8

const (
	// modelFlow sits between block-level elements; spacing records whether
	// the next block transition is preceded by a blank separator line.
	modelFlow modelKind = iota
	// modelPhrasing accumulates compounds for one in-progress line.
	modelPhrasing
)

// contentModel is the engine's transient state: exactly one of Flow or
// Phrasing is active at any point during the walk.
type contentModel struct {
	kind      modelKind
	spacing   bool      // modelFlow
	style     Style     // modelPhrasing
	compounds []Compound
}

// emitter owns the output line buffer, the content model, and the options
// for one conversion. It is created empty, walks the tree once, and is
// consumed by finish.
type emitter struct {
	source []byte
	opts   Options
	lines  []Line
	model  *contentModel
}

func newEmitter(source []byte, opts Options) *emitter {
	return &emitter{source: source, opts: opts}
}

// finish consumes the emitter into the converted document, flushing any
// compounds still buffered in a phrasing model.
func (e *emitter) finish() Document {
	if m := e.model; m != nil && m.kind == modelPhrasing && len(m.compounds) > 0 {
		e.lines = append(e.lines, normalLine(m.style, m.compounds))
	}
	e.model = nil
	return Document{Lines: e.lines}
}

// takeModel removes and returns the current content model, defaulting to a
// flow model without pending spacing when none is installed yet.
func (e *emitter) takeModel() contentModel {
	if e.model == nil {
		return contentModel{kind: modelFlow}
	}
	m := *e.model
	e.model = nil
	return m
}

// wrapEmit tags err with the kind of n, keeping nil nil so child-visiting
// results can be wrapped unconditionally.
func wrapEmit(n ast.Node, err error) error {
	if err == nil {
		return nil
	}
	return &EmitError{Kind: classify(n), Err: err}
}

// emit dispatches one node. Failures inside a node's children come back
// wrapped with that node's kind, building the root-to-failure chain.
func (e *emitter) emit(node ast.Node, sty textStyle) error {
	switch n := node.(type) {
	case *ast.Document:
		return wrapEmit(n, e.emitChildren(n, sty))

	case *ast.Heading:
		spacing := false
		if n.Level >= 1 && n.Level <= len(e.opts.HeaderSpacing) {
			spacing = e.opts.HeaderSpacing[n.Level-1]
		}
		return wrapEmit(n, e.phrasing(HeaderStyle(n.Level), spacing, func() error {
			return e.emitChildren(n, sty)
		}))

	case *ast.Paragraph:
		return wrapEmit(n, e.phrasing(ParagraphStyle, true, func() error {
			return e.emitChildren(n, sty)
		}))

	case *ast.TextBlock:
		// Tight list items carry a TextBlock where a loose tree would carry
		// a Paragraph; the converted shape is the same.
		return wrapEmit(n, e.phrasing(ParagraphStyle, true, func() error {
			return e.emitChildren(n, sty)
		}))

	case *ast.Text:
		e.segment(string(n.Segment.Value(e.source)), sty)
		if n.SoftLineBreak() || n.HardLineBreak() {
			e.lineBreak()
		}
		return nil

	case *ast.String:
		e.segment(string(n.Value), sty)
		return nil

	case *ast.CodeSpan:
		code := sty
		code.code = true
		return wrapEmit(n, e.emitCodeSpan(n, code))

	case *ast.Emphasis:
		next := sty
		if n.Level >= 2 {
			next.bold = true
		} else {
			next.italic = true
		}
		return wrapEmit(n, e.emitChildren(n, next))

	case *extast.Strikethrough:
		next := sty
		next.strikeout = true
		return wrapEmit(n, e.emitChildren(n, next))

	case *ast.Link:
		return wrapEmit(n, e.emitChildren(n, e.opts.LinkStyle.apply(sty)))

	case *ast.AutoLink:
		e.segment(string(n.Label(e.source)), e.opts.LinkStyle.apply(sty))
		return nil

	case *ast.List:
		if n.IsOrdered() {
			return ErrNumberedList
		}
		return wrapEmit(n, e.list(n, sty))

	case *ast.ListItem:
		// Valid only directly under a list, where e.list consumes it.
		return &UnsupportedChildNodeError{Kind: classify(n)}

	case *ast.FencedCodeBlock:
		e.codeBlock(n.Lines())
		return nil

	case *ast.CodeBlock:
		e.codeBlock(n.Lines())
		return nil

	case *ast.ThematicBreak:
		e.rule()
		return nil

	default:
		return &UnsupportedNodeError{Kind: classify(n)}
	}
}

// emitChildren emits every child of n in order under the given style.
func (e *emitter) emitChildren(n ast.Node, sty textStyle) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := e.emit(c, sty); err != nil {
			return err
		}
	}
	return nil
}

// emitCodeSpan segments the raw text of an inline code node. Code spans
// only ever hold text and string children.
func (e *emitter) emitCodeSpan(n *ast.CodeSpan, sty textStyle) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			e.segment(string(t.Segment.Value(e.source)), sty)
		case *ast.String:
			e.segment(string(t.Value), sty)
		default:
			return &UnsupportedChildNodeError{Kind: classify(c)}
		}
	}
	return nil
}

// phrasing runs body inside a phrasing model with the given style, then
// restores a flow model whose spacing flag tells the next sibling block
// whether to emit a blank separator. Flush-and-restore happens on every exit
// path, including errors, so a failing child never leaves buffered compounds
// behind.
func (e *emitter) phrasing(style Style, spacing bool, body func() error) error {
	old := e.takeModel()
	if old.kind == modelPhrasing {
		// Phrasing blocks only nest in malformed trees; misrender the
		// accumulated compounds rather than drop them.
		if len(old.compounds) > 0 {
			e.lines = append(e.lines, normalLine(old.style, old.compounds))
		}
		old = contentModel{kind: modelFlow}
	}
	if old.spacing {
		e.lines = append(e.lines, blankSeparator())
	}

	e.model = &contentModel{kind: modelPhrasing, style: style}
	err := body()

	closed := e.takeModel()
	e.model = &contentModel{kind: modelFlow, spacing: spacing}
	if closed.kind == modelPhrasing && len(closed.compounds) > 0 {
		e.lines = append(e.lines, normalLine(closed.style, closed.compounds))
	}
	return err
}

// codeBlock emits the raw text of a code block verbatim as Code lines. The
// ambient style never applies to code blocks. The fence grammar keeps a
// terminal newline on the last segment that is not part of the code, so one
// trailing break is trimmed.
func (e *emitter) codeBlock(lines *gtext.Segments) {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(e.source))
	}
	raw := strings.TrimSuffix(b.String(), "\n")

	// The phrasing body cannot fail; the scope exists for the flush and
	// spacing discipline shared with the other block handlers.
	_ = e.phrasing(CodeStyle, true, func() error {
		if raw != "" {
			e.segment(raw, textStyle{})
		}
		return nil
	})
}

// rule emits a horizontal rule with the same flush and spacing discipline
// as a phrasing block.
func (e *emitter) rule() {
	old := e.takeModel()
	if old.kind == modelPhrasing {
		if len(old.compounds) > 0 {
			e.lines = append(e.lines, normalLine(old.style, old.compounds))
		}
		old = contentModel{kind: modelFlow}
	}
	if old.spacing {
		e.lines = append(e.lines, blankSeparator())
	}
	e.lines = append(e.lines, Line{Kind: LineHorizontalRule})
	e.model = &contentModel{kind: modelFlow, spacing: true}
}

// list converts an unordered list by converting each item independently and
// splicing the rewritten results into the output. The list as a whole
// behaves like a paragraph for spacing purposes.
func (e *emitter) list(n *ast.List, sty textStyle) error {
	return e.phrasing(ParagraphStyle, true, func() error {
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			if item.Kind() != ast.KindListItem {
				return &UnsupportedChildNodeError{Kind: classify(item)}
			}
			if err := e.listItem(item, sty); err != nil {
				return wrapEmit(item, err)
			}
		}
		return nil
	})
}

// listItem runs a fresh sub-conversion over the item's children, rewrites
// the isolated result into bullet-plus-continuation shape, and appends it.
// Indentation must apply to the item's entire rendered output, which is only
// known after the item is fully converted, hence the separate emitter.
func (e *emitter) listItem(item ast.Node, sty textStyle) error {
	sub := newEmitter(e.source, e.opts)
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if err := sub.emit(c, sty); err != nil {
			return err
		}
	}

	lines, err := rewriteItemLines(sub.finish().Lines)
	if err != nil {
		return err
	}
	e.lines = append(e.lines, lines...)
	return nil
}

// rewriteItemLines turns an item's converted sub-document into list output:
// the first paragraph becomes the bullet line, and every following line is
// pushed one level to the right. Nested bullet lines gain an indent level;
// other block lines get a literal indent prefix.
func rewriteItemLines(lines []Line) ([]Line, error) {
	if len(lines) > 0 && lines[0].Kind == LineNormal && lines[0].Composite.Style.Kind == StyleParagraph {
		lines[0].Composite.Style = ListItemStyle(0)
	} else {
		// The item did not start with plain text (empty item, or a nested
		// list or code block came first); give it an empty bullet line.
		lines = append([]Line{normalLine(ListItemStyle(0), nil)}, lines...)
	}

	for i := 1; i < len(lines); i++ {
		ln := &lines[i]
		switch ln.Kind {
		case LineNormal:
			if ln.Composite.Style.Kind == StyleListItem {
				if ln.Composite.Style.Indent >= maxListIndent {
					return nil, ErrListTooDeep
				}
				ln.Composite.Style.Indent++
				continue
			}
			ln.Composite.Compounds = append([]Compound{{Text: listIndent}}, ln.Composite.Compounds...)
		case LineHorizontalRule:
			// Passes through unchanged.
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedLine, ln.Kind)
		}
	}
	return lines, nil
}
