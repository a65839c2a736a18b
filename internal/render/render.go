package render

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mdtext/mdtext"
)

const (
	defaultWidth = 80
	bulletMarker = "•"
	quoteMarker  = "│ "
	indentStep   = 2
)

// Config controls rendering.
type Config struct {
	// Width is the target line width. Values <= 0 use the default of 80.
	Width int
	// Color enables ANSI styling; when false the output is plain text.
	Color bool
	// CodeStyle names the chroma style used for code blocks. Empty picks
	// the chroma fallback style.
	CodeStyle string
	// Theme overrides the ANSI theme; nil uses DefaultTheme.
	Theme *Theme
}

// Renderer writes a converted document as terminal text. A Renderer is
// immutable after New and safe for concurrent use.
type Renderer struct {
	cfg   Config
	theme Theme
	width int
}

// New creates a Renderer for the given configuration.
func New(cfg Config) *Renderer {
	r := &Renderer{cfg: cfg, theme: DefaultTheme(), width: cfg.Width}
	if cfg.Theme != nil {
		r.theme = *cfg.Theme
	}
	if r.width <= 0 {
		r.width = defaultWidth
	}
	return r
}

// Render returns the document as a single string, one terminal line per
// wrapped output line.
func (r *Renderer) Render(doc mdtext.Document) string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = r.RenderTo(&b, doc)
	return b.String()
}

// RenderTo streams the rendered document to w.
func (r *Renderer) RenderTo(w io.Writer, doc mdtext.Document) error {
	for i := 0; i < len(doc.Lines); i++ {
		line := doc.Lines[i]
		switch line.Kind {
		case mdtext.LineNormal:
			if line.Composite.Style.Kind == mdtext.StyleCode {
				// Highlighting needs the whole block, so consume the run of
				// code lines at once.
				j := i
				var code []string
				for ; j < len(doc.Lines) && isCodeLine(doc.Lines[j]); j++ {
					code = append(code, plainText(doc.Lines[j].Composite.Compounds))
				}
				if err := r.writeCodeBlock(w, strings.Join(code, "\n")); err != nil {
					return err
				}
				i = j - 1
				continue
			}
			if err := r.writeNormal(w, line.Composite); err != nil {
				return err
			}
		case mdtext.LineHorizontalRule, mdtext.LineTableRule:
			if err := r.writeRule(w); err != nil {
				return err
			}
		case mdtext.LineCodeFence, mdtext.LineTableRow:
			// Not produced by the converter; render whatever they carry.
			if err := r.writeWrapped(w, r.inline(line.Composite.Compounds), "", ""); err != nil {
				return err
			}
		}
	}
	return nil
}

func isCodeLine(line mdtext.Line) bool {
	return line.Kind == mdtext.LineNormal && line.Composite.Style.Kind == mdtext.StyleCode
}

// plainText joins compound texts without styling.
func plainText(compounds []mdtext.Compound) string {
	var b strings.Builder
	for _, c := range compounds {
		b.WriteString(c.Text)
	}
	return b.String()
}

func (r *Renderer) writeNormal(w io.Writer, comp mdtext.Composite) error {
	switch comp.Style.Kind {
	case mdtext.StyleHeader:
		return r.writeHeading(w, comp)
	case mdtext.StyleListItem:
		return r.writeListItem(w, comp)
	case mdtext.StyleQuote:
		marker := r.styled(r.theme.Quote, quoteMarker)
		return r.writeWrapped(w, r.inline(comp.Compounds), marker, marker)
	default:
		return r.writeWrapped(w, r.inline(comp.Compounds), "", "")
	}
}

// writeHeading renders the heading text in the depth's style and underlines
// the first two levels.
func (r *Renderer) writeHeading(w io.Writer, comp mdtext.Composite) error {
	depth := comp.Style.Depth
	if depth < 1 {
		depth = 1
	} else if depth > 6 {
		depth = 6
	}

	plain := plainText(comp.Compounds)
	if err := r.writeWrapped(w, r.styled(r.theme.Heading[depth-1], plain), "", ""); err != nil {
		return err
	}
	if depth > 2 || plain == "" {
		return nil
	}

	marker := "─"
	if depth == 1 {
		marker = "═"
	}
	width := runewidth.StringWidth(plain)
	if width > r.width {
		width = r.width
	}
	return r.writeLine(w, r.styled(r.theme.Rule, strings.Repeat(marker, width)))
}

func (r *Renderer) writeListItem(w io.Writer, comp mdtext.Composite) error {
	pad := strings.Repeat(" ", indentStep*int(comp.Style.Indent))
	first := pad + r.styled(r.theme.Bullet, bulletMarker) + " "
	cont := pad + strings.Repeat(" ", runewidth.StringWidth(bulletMarker)+1)
	return r.writeWrapped(w, r.inline(comp.Compounds), first, cont)
}

func (r *Renderer) writeRule(w io.Writer) error {
	return r.writeLine(w, r.styled(r.theme.Rule, strings.Repeat("─", r.width)))
}

// writeWrapped wraps text to the width left of the continuation prefix and
// writes each resulting line, the first behind first, the rest behind cont.
// Both prefixes must occupy the same printable width.
func (r *Renderer) writeWrapped(w io.Writer, text, first, cont string) error {
	limit := r.width - ansi.PrintableRuneWidth(cont)
	if limit < 1 {
		limit = 1
	}
	wrapped := wordwrap.String(text, limit)
	for i, ln := range strings.Split(wrapped, "\n") {
		prefix := cont
		if i == 0 {
			prefix = first
		}
		if err := r.writeLine(w, prefix+ln); err != nil {
			return err
		}
	}
	return nil
}

// inline renders compounds back-to-back, styling each from its flags.
func (r *Renderer) inline(compounds []mdtext.Compound) string {
	var b strings.Builder
	for _, c := range compounds {
		prefix := ""
		if r.cfg.Color {
			prefix = r.compoundPrefix(c)
		}
		if prefix == "" || c.Text == "" {
			b.WriteString(c.Text)
			continue
		}
		b.WriteString(prefix)
		b.WriteString(c.Text)
		b.WriteString(ansiReset)
	}
	return b.String()
}

func (r *Renderer) compoundPrefix(c mdtext.Compound) string {
	var b strings.Builder
	if c.Code {
		b.WriteString(r.theme.CodeInline.Prefix)
	}
	if c.Bold {
		b.WriteString(r.theme.Bold.Prefix)
	}
	if c.Italic {
		b.WriteString(r.theme.Italic.Prefix)
	}
	if c.Strikeout {
		b.WriteString(r.theme.Strikeout.Prefix)
	}
	return b.String()
}

func (r *Renderer) styled(s Style, text string) string {
	if !r.cfg.Color || s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

func (r *Renderer) writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
