package mdtext

// Options configures a conversion. The zero value disables header spacing
// everywhere and inherits all link styling; use DefaultOptions for the
// standard behavior. Options are read-only during a conversion and may be
// shared between concurrent calls.
type Options struct {
	// HeaderSpacing controls, per heading depth (index 0 = H1), whether the
	// block following the heading is preceded by a blank separator line.
	HeaderSpacing [6]bool

	// LinkStyle overrides the emphasis flags applied to link contents.
	LinkStyle LinkStyle
}

// LinkStyle holds per-flag overrides for the text inside links. A nil field
// inherits the surrounding emphasis; a non-nil field forces the flag.
type LinkStyle struct {
	Bold      *bool
	Italic    *bool
	Strikeout *bool
}

// apply resolves the effective style for link contents.
func (l LinkStyle) apply(sty textStyle) textStyle {
	if l.Bold != nil {
		sty.bold = *l.Bold
	}
	if l.Italic != nil {
		sty.italic = *l.Italic
	}
	if l.Strikeout != nil {
		sty.strikeout = *l.Strikeout
	}
	return sty
}

// DefaultOptions returns the standard conversion options: only level-1
// headings get trailing spacing, and links inherit the surrounding style.
func DefaultOptions() Options {
	return Options{
		HeaderSpacing: [6]bool{true, false, false, false, false, false},
	}
}
