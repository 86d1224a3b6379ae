// Package markdown flattens lightweight markup to plain text. The
// generative-language model answers in markdown; stored descriptions must be
// plain text, so its output is parsed into a node tree and only the text
// content is kept.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Flatten parses source as markdown and concatenates the text content of all
// nodes in document order, discarding markup syntax and attributes. Blocks
// are separated by single newlines. The function is pure: no I/O, no shared
// state.
func Flatten(source string) string {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Separate block-level nodes with a newline so paragraphs,
			// headings, and list items do not run together.
			if n.Type() == ast.TypeBlock && n.NextSibling() != nil {
				b.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.URL(src))
		case *ast.FencedCodeBlock:
			writeLines(&b, src, t)
		case *ast.CodeBlock:
			writeLines(&b, src, t)
		case *ast.HTMLBlock:
			// Raw HTML is markup, not text. Skip it entirely.
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// writeLines appends the raw source lines of a code block node.
func writeLines(b *strings.Builder, src []byte, n ast.Node) {
	lines := n.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}
