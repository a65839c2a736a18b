package mdtext

import "strings"

// ensurePhrasing returns the active phrasing model, opening a paragraph one
// first when the walk is not inside a phrasing block. That only happens on
// malformed trees where inline content appears at block level.
func (e *emitter) ensurePhrasing() *contentModel {
	if e.model == nil || e.model.kind != modelPhrasing {
		e.model = &contentModel{kind: modelPhrasing, style: ParagraphStyle}
	}
	return e.model
}

// lineBreak flushes the in-progress line to the output and starts a fresh
// one with the same style. A line with no compounds still flushes, so blank
// lines inside multi-line text are preserved.
func (e *emitter) lineBreak() {
	m := e.ensurePhrasing()
	e.lines = append(e.lines, normalLine(m.style, m.compounds))
	m.compounds = nil
}

// segment splits raw on line breaks and appends one compound per non-empty
// fragment to the current line, flushing the line whenever a break is
// crossed. Compounds never span a line break.
func (e *emitter) segment(raw string, sty textStyle) {
	m := e.ensurePhrasing()
	for {
		frag, rest, broke := cutLine(raw)
		if frag != "" {
			m.compounds = append(m.compounds, Compound{
				Text:      frag,
				Bold:      sty.bold,
				Italic:    sty.italic,
				Code:      sty.code,
				Strikeout: sty.strikeout,
			})
		}
		if !broke {
			return
		}
		e.lineBreak()
		m = e.ensurePhrasing()
		raw = rest
	}
}

// cutLine splits s at the first line break ("\n" or "\r\n"), returning the
// text before it and the remainder after it.
func cutLine(s string) (before, after string, found bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, "", false
	}
	before = strings.TrimSuffix(s[:i], "\r")
	return before, s[i+1:], true
}
