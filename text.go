package mdtext

// Document is the converted form of a markdown tree: an ordered sequence of
// styled lines consumed by a renderer. It carries no layout information;
// wrapping and widths are the renderer's concern.
type Document struct {
	Lines []Line
}

// LineKind discriminates the variants of a Line.
type LineKind uint8

const (
	// LineNormal is a styled block line holding compounds.
	LineNormal LineKind = iota
	// LineCodeFence delimits fenced code in renderers that draw fences.
	// The converter never produces it; it exists as an extension point.
	LineCodeFence
	// LineHorizontalRule is a thematic break.
	LineHorizontalRule
	// LineTableRow and LineTableRule are reserved for a table extension and
	// are never produced by the converter.
	LineTableRow
	LineTableRule
)

// String returns a short name for the line kind, used in diagnostics.
func (k LineKind) String() string {
	switch k {
	case LineNormal:
		return "normal"
	case LineCodeFence:
		return "code fence"
	case LineHorizontalRule:
		return "horizontal rule"
	case LineTableRow:
		return "table row"
	case LineTableRule:
		return "table rule"
	}
	return "unknown"
}

// Line is one output line: a styled block or a structural marker.
// Composite is meaningful only for LineNormal and LineCodeFence.
type Line struct {
	Kind      LineKind
	Composite Composite
}

// Composite pairs a block style with the compounds rendered on that line.
type Composite struct {
	Style     Style
	Compounds []Compound
}

// Compound is a fragment of text with independent style flags. Compounds
// never contain line breaks.
type Compound struct {
	Text      string
	Bold      bool
	Italic    bool
	Code      bool
	Strikeout bool
}

// StyleKind discriminates block styles.
type StyleKind uint8

const (
	StyleParagraph StyleKind = iota
	StyleHeader
	StyleCode
	StyleQuote
	StyleListItem
)

// Style describes how a normal line is rendered. Depth is the heading level
// (1..6) for StyleHeader; Indent is the nesting level for StyleListItem.
type Style struct {
	Kind   StyleKind
	Depth  int
	Indent uint8
}

// Common styles.
var (
	ParagraphStyle = Style{Kind: StyleParagraph}
	CodeStyle      = Style{Kind: StyleCode}
	QuoteStyle     = Style{Kind: StyleQuote}
)

// HeaderStyle returns the style of a heading line at the given depth.
func HeaderStyle(depth int) Style {
	return Style{Kind: StyleHeader, Depth: depth}
}

// ListItemStyle returns the style of a bullet line at the given indent.
func ListItemStyle(indent uint8) Style {
	return Style{Kind: StyleListItem, Indent: indent}
}

// normalLine builds a styled block line.
func normalLine(style Style, compounds []Compound) Line {
	return Line{Kind: LineNormal, Composite: Composite{Style: style, Compounds: compounds}}
}

// blankSeparator is the empty paragraph line emitted between spaced blocks.
func blankSeparator() Line {
	return normalLine(ParagraphStyle, nil)
}
