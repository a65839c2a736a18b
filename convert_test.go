package mdtext

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

func TestConvertString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected Document
	}{
		{
			name:   "heading spacing before next block",
			source: "# Hi\n\nbody",
			expected: Document{Lines: []Line{
				normalLine(HeaderStyle(1), []Compound{{Text: "Hi"}}),
				blankSeparator(),
				normalLine(ParagraphStyle, []Compound{{Text: "body"}}),
			}},
		},
		{
			name:   "inline styles",
			source: "**a** *b* ~~c~~ `d`",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{
					{Text: "a", Bold: true},
					{Text: " "},
					{Text: "b", Italic: true},
					{Text: " "},
					{Text: "c", Strikeout: true},
					{Text: " "},
					{Text: "d", Code: true},
				}),
			}},
		},
		{
			name:   "nested emphasis restores outer style",
			source: "*a **b** c*",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{
					{Text: "a ", Italic: true},
					{Text: "b", Bold: true, Italic: true},
					{Text: " c", Italic: true},
				}),
			}},
		},
		{
			name:   "soft break splits the line",
			source: "a\nb",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "a"}}),
				normalLine(ParagraphStyle, []Compound{{Text: "b"}}),
			}},
		},
		{
			name:   "hard break splits the line",
			source: "a  \nb",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "a"}}),
				normalLine(ParagraphStyle, []Compound{{Text: "b"}}),
			}},
		},
		{
			name:   "CRLF input is normalized",
			source: "a\r\n\r\nb",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "a"}}),
				blankSeparator(),
				normalLine(ParagraphStyle, []Compound{{Text: "b"}}),
			}},
		},
		{
			name:   "link inherits ambient emphasis",
			source: "*[x](https://example.com)*",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "x", Italic: true}}),
			}},
		},
		{
			name:   "autolink label",
			source: "<https://example.com>",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "https://example.com"}}),
			}},
		},
		{
			name:   "fenced code block",
			source: "para\n\n```\nfirst\nsecond\n```",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "para"}}),
				blankSeparator(),
				normalLine(CodeStyle, []Compound{{Text: "first"}}),
				normalLine(CodeStyle, []Compound{{Text: "second"}}),
			}},
		},
		{
			name:   "code block ignores ambient style marks",
			source: "```\n*not emphasis*\n```",
			expected: Document{Lines: []Line{
				normalLine(CodeStyle, []Compound{{Text: "*not emphasis*"}}),
			}},
		},
		{
			name:   "tight list",
			source: "- x\n- y",
			expected: Document{Lines: []Line{
				normalLine(ListItemStyle(0), []Compound{{Text: "x"}}),
				normalLine(ListItemStyle(0), []Compound{{Text: "y"}}),
			}},
		},
		{
			name:   "thematic break",
			source: "a\n\n---",
			expected: Document{Lines: []Line{
				normalLine(ParagraphStyle, []Compound{{Text: "a"}}),
				blankSeparator(),
				{Kind: LineHorizontalRule},
			}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ConvertString(tt.source, DefaultOptions())
			if err != nil {
				t.Fatalf("ConvertString(%q) error = %v", tt.source, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ConvertString(%q) = %+v, want %+v", tt.source, got, tt.expected)
			}
		})
	}
}

func TestConvertStringRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		leafKind string
	}{
		{name: "block quote", source: "> quoted", leafKind: "block quote"},
		{name: "image", source: "![alt](pic.png)", leafKind: "image"},
		{name: "html block", source: "<div>\nx\n</div>", leafKind: "HTML block"},
		{name: "ordered list", source: "1. x", leafKind: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ConvertString(tt.source, DefaultOptions())
			if err == nil {
				t.Fatalf("ConvertString(%q) error = nil, want rejection", tt.source)
			}

			if tt.leafKind == "" {
				if !errors.Is(err, ErrNumberedList) {
					t.Errorf("error = %v, want ErrNumberedList", err)
				}
				return
			}
			var unsupported *UnsupportedNodeError
			if !errors.As(err, &unsupported) {
				t.Fatalf("errors.As(*UnsupportedNodeError) = false, err = %v", err)
			}
			if unsupported.Kind != tt.leafKind {
				t.Errorf("leaf kind = %q, want %q", unsupported.Kind, tt.leafKind)
			}
		})
	}
}

func TestConvertRejectsTableNode(t *testing.T) {
	t.Parallel()

	d := ast.NewDocument()
	d.AppendChild(d, extast.NewTable())

	_, err := Convert(d, nil, DefaultOptions())
	var unsupported *UnsupportedNodeError
	if !errors.As(err, &unsupported) || unsupported.Kind != "table" {
		t.Errorf("Convert() error = %v, want unsupported table node", err)
	}
}

func TestConvertStringLinkOverride(t *testing.T) {
	t.Parallel()

	on := true
	opts := DefaultOptions()
	opts.LinkStyle.Bold = &on

	got, err := ConvertString("see [docs](https://example.com)", opts)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	expected := Document{Lines: []Line{
		normalLine(ParagraphStyle, []Compound{
			{Text: "see "},
			{Text: "docs", Bold: true},
		}),
	}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ConvertString() = %+v, want %+v", got, expected)
	}
}
