// Package render turns a converted mdtext document into ANSI text for a
// terminal. Wrapping, indentation, and styling all happen here; the
// conversion core stays layout-free.
package render

import "strings"

// ANSI attribute prefixes.
const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiFaint     = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
	ansiStrikeout = "\x1b[9m"
	ansiYellow    = "\x1b[33m"
	ansiBlue      = "\x1b[34m"
	ansiMagenta   = "\x1b[35m"
	ansiCyan      = "\x1b[36m"
)

// Style is a terminal style expressed as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Theme groups the semantic styles used by the renderer.
type Theme struct {
	Heading    [6]Style
	Bold       Style
	Italic     Style
	Strikeout  Style
	CodeInline Style
	Quote      Style
	Bullet     Style
	Rule       Style
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Heading: [6]Style{
			style(ansiBold, ansiMagenta),
			style(ansiBold, ansiBlue),
			style(ansiBold),
			style(ansiBold, ansiFaint),
			style(ansiFaint),
			style(ansiFaint),
		},
		Bold:       style(ansiBold),
		Italic:     style(ansiItalic),
		Strikeout:  style(ansiStrikeout),
		CodeInline: style(ansiCyan),
		Quote:      style(ansiFaint),
		Bullet:     style(ansiYellow),
		Rule:       style(ansiFaint),
	}
}
