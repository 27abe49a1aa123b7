package editor

// Type identifies the shape of a document node.
type Type string

const (
	TypeRoot        Type = "root"
	TypeParagraph   Type = "paragraph"
	TypeHeading     Type = "heading"
	TypeQuote       Type = "quote"
	TypeList        Type = "list"
	TypeListItem    Type = "listitem"
	TypeCode        Type = "code"
	TypeLink        Type = "link"
	TypeLineBreak   Type = "linebreak"
	TypeText        Type = "text"
	TypeImage       Type = "image"
	TypePlaceholder Type = "placeholder"
)

// Mark is a bitmask of inline text formats.
type Mark uint8

const (
	MarkBold Mark = 1 << iota
	MarkItalic
	MarkUnderline
	MarkCode
)

func (m Mark) Has(flag Mark) bool {
	return m&flag != 0
}

// Node is a single element of the document tree. Field usage depends on
// Type: Level for headings (1..3), Ordered for lists, URL for links,
// Src/Alt for images, Text and Marks for text nodes.
type Node struct {
	Type     Type
	Level    int
	Ordered  bool
	URL      string
	Src      string
	Alt      string
	Marks    Mark
	Text     string
	Children []*Node

	key string
}

// Key returns the document-assigned identity of the node. It is empty until
// the node is attached to a document.
func (n *Node) Key() string {
	return n.key
}

func (n *Node) isBlock() bool {
	switch n.Type {
	case TypeParagraph, TypeHeading, TypeQuote, TypeList, TypeCode, TypeImage, TypePlaceholder:
		return true
	}

	return false
}

// Clone produces a deep copy without document keys.
func (n *Node) Clone() *Node {
	out := &Node{
		Type:    n.Type,
		Level:   n.Level,
		Ordered: n.Ordered,
		URL:     n.URL,
		Src:     n.Src,
		Alt:     n.Alt,
		Marks:   n.Marks,
		Text:    n.Text,
	}

	for _, child := range n.Children {
		out.Children = append(out.Children, child.Clone())
	}

	return out
}

func NewParagraph(children ...*Node) *Node {
	return &Node{Type: TypeParagraph, Children: children}
}

func NewHeading(level int, children ...*Node) *Node {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}

	return &Node{Type: TypeHeading, Level: level, Children: children}
}

func NewText(text string) *Node {
	return &Node{Type: TypeText, Text: text}
}

func NewMarkedText(text string, marks Mark) *Node {
	return &Node{Type: TypeText, Text: text, Marks: marks}
}

func NewImage(src, alt string) *Node {
	return &Node{Type: TypeImage, Src: src, Alt: alt}
}
