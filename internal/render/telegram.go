package render

import (
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TelegramHTML converts a markdown answer into the HTML subset accepted by the
// Telegram Bot API (parse_mode=HTML). Headings and strong text become <b>, list
// items become bullets, and all text is escaped. Raw HTML in the answer is
// shown as text.
func TelegramHTML(markdown string) string {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				b.WriteString("<b>")
			} else {
				b.WriteString("</b>\n\n")
			}
		case *ast.Emphasis:
			tag := "i"
			if node.Level >= 2 {
				tag = "b"
			}
			if entering {
				b.WriteString("<" + tag + ">")
			} else {
				b.WriteString("</" + tag + ">")
			}
		case *ast.CodeSpan:
			if entering {
				b.WriteString("<code>")
			} else {
				b.WriteString("</code>")
			}
		case *ast.Link:
			if entering {
				b.WriteString(`<a href="` + html.EscapeString(string(node.Destination)) + `">`)
			} else {
				b.WriteString("</a>")
			}
		case *ast.AutoLink:
			if entering {
				b.WriteString(html.EscapeString(string(node.URL(source))))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				b.WriteString(html.EscapeString(string(node.Segment.Value(source))))
				if node.HardLineBreak() || node.SoftLineBreak() {
					b.WriteString("\n")
				}
			}
		case *ast.RawHTML:
			if entering {
				for i := 0; i < node.Segments.Len(); i++ {
					seg := node.Segments.At(i)
					b.WriteString(html.EscapeString(string(seg.Value(source))))
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			if entering {
				writeLines(&b, node.Lines(), source)
				if node.HasClosure() {
					b.WriteString(html.EscapeString(string(node.ClosureLine.Value(source))))
				}
				b.WriteString("\n")
			}
			return ast.WalkSkipChildren, nil
		case *ast.String:
			if entering {
				b.WriteString(html.EscapeString(string(node.Value)))
			}
		case *ast.ListItem:
			if entering {
				b.WriteString("• ")
			} else {
				b.WriteString("\n")
			}
		case *ast.List:
			if !entering {
				b.WriteString("\n")
			}
		case *ast.Paragraph:
			if !entering {
				b.WriteString("\n\n")
			}
		case *ast.ThematicBreak:
			if entering {
				b.WriteString("──────────\n\n")
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				b.WriteString("<pre>")
				writeLines(&b, n.Lines(), source)
				b.WriteString("</pre>\n\n")
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func writeLines(b *strings.Builder, lines *text.Segments, source []byte) {
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.WriteString(html.EscapeString(string(line.Value(source))))
	}
}
