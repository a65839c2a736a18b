package render

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/indent"
)

// codeIndent shifts code blocks right of the surrounding prose.
const codeIndent = 2

// writeCodeBlock renders one contiguous block of code lines, syntax
// highlighted when color is on. The converter drops the fence info string,
// so the language is guessed from the content.
func (r *Renderer) writeCodeBlock(w io.Writer, code string) error {
	text := code
	if r.cfg.Color {
		if highlighted, err := r.highlight(code); err == nil {
			text = highlighted
		}
	}
	text = strings.TrimSuffix(text, "\n")
	return r.writeLine(w, indent.String(text, codeIndent))
}

func (r *Renderer) highlight(code string) (string, error) {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	// styles.Get falls back to a plain style for unknown names.
	if err := formatters.TTY256.Format(&b, styles.Get(r.cfg.CodeStyle), iterator); err != nil {
		return "", err
	}
	return b.String(), nil
}
