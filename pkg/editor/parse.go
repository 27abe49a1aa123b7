package editor

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// ParseBlocks converts an HTML string into document block nodes. It is the
// seed bridge for the edit flow: stored post bodies round-trip through here
// back into the native node structure. Unknown wrappers are descended into;
// stray inline content at the top level is folded into a paragraph.
func ParseBlocks(htmlStr string) ([]*Node, error) {
	doc, err := xhtml.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	body := findBody(doc)
	if body == nil {
		return nil, nil
	}

	return parseBlockChildren(body), nil
}

func findBody(n *xhtml.Node) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == "body" {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}

	return nil
}

func parseBlockChildren(n *xhtml.Node) []*Node {
	var blocks []*Node
	var pending []*Node // loose inline nodes awaiting a paragraph wrapper

	flush := func() {
		if len(pending) > 0 {
			blocks = append(blocks, &Node{Type: TypeParagraph, Children: pending})
			pending = nil
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if block := parseBlock(c); block != nil {
			flush()
			blocks = append(blocks, block...)
			continue
		}

		pending = append(pending, parseInline(c, 0)...)
	}

	flush()

	return blocks
}

// parseBlock returns nil when the node is inline content.
func parseBlock(n *xhtml.Node) []*Node {
	if n.Type != xhtml.ElementNode {
		return nil
	}

	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		if level > 3 {
			level = 3
		}

		return []*Node{{Type: TypeHeading, Level: level, Children: parseInlineChildren(n, 0)}}
	case "p":
		return []*Node{{Type: TypeParagraph, Children: parseInlineChildren(n, 0)}}
	case "blockquote":
		return []*Node{{Type: TypeQuote, Children: parseInlineChildren(n, 0)}}
	case "ul", "ol":
		list := &Node{Type: TypeList, Ordered: n.Data == "ol"}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode && c.Data == "li" {
				list.Children = append(list.Children, &Node{
					Type:     TypeListItem,
					Children: parseInlineChildren(c, 0),
				})
			}
		}

		return []*Node{list}
	case "pre":
		return []*Node{{
			Type:     TypeCode,
			Children: []*Node{{Type: TypeText, Text: textContent(n)}},
		}}
	case "img":
		return []*Node{{Type: TypeImage, Src: attr(n, "src"), Alt: attr(n, "alt")}}
	case "div", "section", "article", "main", "figure":
		return parseBlockChildren(n)
	}

	return nil
}

func parseInlineChildren(n *xhtml.Node, marks Mark) []*Node {
	var out []*Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, parseInline(c, marks)...)
	}

	return out
}

func parseInline(n *xhtml.Node, marks Mark) []*Node {
	switch n.Type {
	case xhtml.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}

		return []*Node{{Type: TypeText, Text: n.Data, Marks: marks}}
	case xhtml.ElementNode:
		switch n.Data {
		case "strong", "b":
			return parseInlineChildren(n, marks|MarkBold)
		case "em", "i":
			return parseInlineChildren(n, marks|MarkItalic)
		case "u":
			return parseInlineChildren(n, marks|MarkUnderline)
		case "code":
			return parseInlineChildren(n, marks|MarkCode)
		case "br":
			return []*Node{{Type: TypeLineBreak}}
		case "a":
			return []*Node{{
				Type:     TypeLink,
				URL:      attr(n, "href"),
				Children: parseInlineChildren(n, marks),
			}}
		case "img":
			return []*Node{{Type: TypeImage, Src: attr(n, "src"), Alt: attr(n, "alt")}}
		default:
			return parseInlineChildren(n, marks)
		}
	}

	return nil
}

func attr(n *xhtml.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}

	return ""
}

func textContent(n *xhtml.Node) string {
	if n.Type == xhtml.TextNode {
		return n.Data
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}

	return b.String()
}
