package editor

import (
	"fmt"
	"html"
	"strings"
)

// renderChildren serializes the children of a container node. Placeholder
// nodes render to nothing, so an in-flight or failed upload never leaks into
// the stored HTML.
func renderChildren(n *Node) string {
	var b strings.Builder

	for _, child := range n.Children {
		renderNode(&b, child)
	}

	return b.String()
}

func renderNode(b *strings.Builder, n *Node) {
	switch n.Type {
	case TypeParagraph:
		b.WriteString("<p>")
		renderInline(b, n.Children)
		b.WriteString("</p>")
	case TypeHeading:
		tag := fmt.Sprintf("h%d", n.Level)
		b.WriteString("<" + tag + ">")
		renderInline(b, n.Children)
		b.WriteString("</" + tag + ">")
	case TypeQuote:
		b.WriteString("<blockquote>")
		renderInline(b, n.Children)
		b.WriteString("</blockquote>")
	case TypeList:
		tag := "ul"
		if n.Ordered {
			tag = "ol"
		}

		b.WriteString("<" + tag + ">")
		for _, item := range n.Children {
			b.WriteString("<li>")
			renderInline(b, item.Children)
			b.WriteString("</li>")
		}
		b.WriteString("</" + tag + ">")
	case TypeCode:
		b.WriteString("<pre><code>")
		b.WriteString(html.EscapeString(plainText(n)))
		b.WriteString("</code></pre>")
	case TypeImage:
		b.WriteString(`<img src="` + html.EscapeString(n.Src) + `" alt="` + html.EscapeString(n.Alt) + `">`)
	case TypePlaceholder:
		// pending upload, nothing to serialize
	default:
		renderInline(b, []*Node{n})
	}
}

func renderInline(b *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		switch n.Type {
		case TypeText:
			renderText(b, n)
		case TypeLink:
			b.WriteString(`<a href="` + html.EscapeString(n.URL) + `">`)
			renderInline(b, n.Children)
			b.WriteString("</a>")
		case TypeLineBreak:
			b.WriteString("<br>")
		case TypeImage:
			b.WriteString(`<img src="` + html.EscapeString(n.Src) + `" alt="` + html.EscapeString(n.Alt) + `">`)
		case TypePlaceholder:
			// skipped
		default:
			renderInline(b, n.Children)
		}
	}
}

func renderText(b *strings.Builder, n *Node) {
	open, close := markTags(n.Marks)

	b.WriteString(open)
	b.WriteString(html.EscapeString(n.Text))
	b.WriteString(close)
}

// markTags nests mark wrappers deterministically: strong > em > u > code.
func markTags(m Mark) (string, string) {
	var open, close strings.Builder

	if m.Has(MarkBold) {
		open.WriteString("<strong>")
	}
	if m.Has(MarkItalic) {
		open.WriteString("<em>")
	}
	if m.Has(MarkUnderline) {
		open.WriteString("<u>")
	}
	if m.Has(MarkCode) {
		open.WriteString("<code>")
	}

	if m.Has(MarkCode) {
		close.WriteString("</code>")
	}
	if m.Has(MarkUnderline) {
		close.WriteString("</u>")
	}
	if m.Has(MarkItalic) {
		close.WriteString("</em>")
	}
	if m.Has(MarkBold) {
		close.WriteString("</strong>")
	}

	return open.String(), close.String()
}

func plainText(n *Node) string {
	if n.Type == TypeText {
		return n.Text
	}

	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(plainText(child))
	}

	return b.String()
}

// StripTags reduces serialized editor HTML to its bare text, used to decide
// whether a post body is effectively empty.
func StripTags(htmlStr string) string {
	blocks, err := ParseBlocks(htmlStr)
	if err != nil {
		return strings.TrimSpace(htmlStr)
	}

	var b strings.Builder
	for _, block := range blocks {
		b.WriteString(plainText(block))
	}

	return strings.TrimSpace(b.String())
}
