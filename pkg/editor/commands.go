package editor

import (
	"errors"
	"fmt"
)

// The formatting commands mirror the authoring toolbar: block-level toggles
// flip a block between its target type and a plain paragraph, list and mark
// toggles flip state in place.

// ToggleHeading turns the block into a heading of the given level, or back
// into a paragraph when it already is one of that level.
func (d *Document) ToggleHeading(blockKey string, level int) error {
	if level < 1 || level > 3 {
		return fmt.Errorf("unsupported heading level %d", level)
	}

	return d.mutate(func() error {
		block, err := d.topLevelBlock(blockKey)
		if err != nil {
			return err
		}

		if block.Type == TypeHeading && block.Level == level {
			block.Type = TypeParagraph
			block.Level = 0

			return nil
		}

		block.Type = TypeHeading
		block.Level = level

		return nil
	})
}

// ToggleQuote flips the block between block quote and paragraph.
func (d *Document) ToggleQuote(blockKey string) error {
	return d.toggleBlockType(blockKey, TypeQuote)
}

// ToggleCodeBlock flips the block between code block and paragraph.
func (d *Document) ToggleCodeBlock(blockKey string) error {
	return d.toggleBlockType(blockKey, TypeCode)
}

func (d *Document) toggleBlockType(blockKey string, target Type) error {
	return d.mutate(func() error {
		block, err := d.topLevelBlock(blockKey)
		if err != nil {
			return err
		}

		if block.Type == target {
			block.Type = TypeParagraph
			return nil
		}

		block.Type = target
		block.Level = 0

		return nil
	})
}

// ToggleList wraps the block's inline content into a one-item list, switches
// list ordering in place, or unwraps a list of the same ordering back into
// paragraphs.
func (d *Document) ToggleList(blockKey string, ordered bool) error {
	return d.mutate(func() error {
		block, err := d.topLevelBlock(blockKey)
		if err != nil {
			return err
		}

		if block.Type == TypeList {
			if block.Ordered != ordered {
				block.Ordered = ordered
				return nil
			}

			// unwrap every item into its own paragraph
			var paragraphs []*Node
			for _, item := range block.Children {
				paragraphs = append(paragraphs, &Node{Type: TypeParagraph, Children: item.Children})
			}

			d.spliceTopLevel(block, paragraphs)

			return nil
		}

		item := &Node{Type: TypeListItem, Children: block.Children}
		list := &Node{Type: TypeList, Ordered: ordered, Children: []*Node{item}}
		d.adopt(list)

		d.spliceTopLevel(block, []*Node{list})

		return nil
	})
}

// ToggleMark flips an inline mark over the [start, end) rune range of a text
// node, splitting the node at the range boundaries.
func (d *Document) ToggleMark(textKey string, start, end int, mark Mark) error {
	return d.mutate(func() error {
		node, parent := find(d.root, textKey)
		if node == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, textKey)
		}

		if node.Type != TypeText {
			return errors.New("marks apply to text nodes only")
		}

		pre, mid, post, err := splitText(node, start, end)
		if err != nil {
			return err
		}

		mid.Marks ^= mark

		d.spliceInline(parent, node, compactText(pre, mid, post))

		return nil
	})
}

// ToggleLink wraps the [start, end) rune range of a text node in a link, or
// removes the link when the text already sits inside one.
func (d *Document) ToggleLink(textKey string, start, end int, url string) error {
	return d.mutate(func() error {
		node, parent := find(d.root, textKey)
		if node == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, textKey)
		}

		if node.Type != TypeText {
			return errors.New("links apply to text nodes only")
		}

		if parent.Type == TypeLink {
			return d.unwrapLink(parent)
		}

		if url == "" {
			return errors.New("link url cannot be empty")
		}

		pre, mid, post, err := splitText(node, start, end)
		if err != nil {
			return err
		}

		link := &Node{Type: TypeLink, URL: url, Children: []*Node{mid}}

		var replacement []*Node
		if pre != nil {
			replacement = append(replacement, pre)
		}
		replacement = append(replacement, link)
		if post != nil {
			replacement = append(replacement, post)
		}

		d.spliceInline(parent, node, replacement)

		return nil
	})
}

// RemoveLink replaces the link node with its children.
func (d *Document) RemoveLink(linkKey string) error {
	return d.mutate(func() error {
		node, _ := find(d.root, linkKey)
		if node == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, linkKey)
		}

		if node.Type != TypeLink {
			return errors.New("node is not a link")
		}

		return d.unwrapLink(node)
	})
}

func (d *Document) unwrapLink(link *Node) error {
	_, parent := find(d.root, link.key)
	if parent == nil {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, link.key)
	}

	d.spliceInline(parent, link, link.Children)

	return nil
}

// InsertPlaceholder drops a pending-upload marker after the given block (or
// at the end of the document) and returns its key.
func (d *Document) InsertPlaceholder(afterKey string) (string, error) {
	placeholder := &Node{Type: TypePlaceholder}

	return d.InsertBlockAfter(afterKey, placeholder)
}

// ReplacePlaceholder swaps a pending-upload marker for the real image node.
func (d *Document) ReplacePlaceholder(key, src, alt string) error {
	return d.mutate(func() error {
		node, parent := find(d.root, key)
		if node == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, key)
		}

		if node.Type != TypePlaceholder {
			return errors.New("node is not a placeholder")
		}

		image := NewImage(src, alt)
		d.adopt(image)

		for i, child := range parent.Children {
			if child == node {
				parent.Children[i] = image
				return nil
			}
		}

		return fmt.Errorf("%w: %s", ErrNodeNotFound, key)
	})
}

func (d *Document) topLevelBlock(blockKey string) (*Node, error) {
	for _, child := range d.root.Children {
		if child.key == blockKey {
			return child, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, blockKey)
}

func (d *Document) spliceTopLevel(old *Node, replacement []*Node) {
	for _, n := range replacement {
		d.adopt(n)
	}

	var children []*Node
	for _, child := range d.root.Children {
		if child == old {
			children = append(children, replacement...)
			continue
		}

		children = append(children, child)
	}

	d.root.Children = children
}

func (d *Document) spliceInline(parent, old *Node, replacement []*Node) {
	for _, n := range replacement {
		d.adopt(n)
	}

	var children []*Node
	for _, child := range parent.Children {
		if child == old {
			children = append(children, replacement...)
			continue
		}

		children = append(children, child)
	}

	parent.Children = children
}

// splitText cuts a text node at the [start, end) rune range. The returned
// pre/post nodes are nil when the range touches the respective edge.
func splitText(node *Node, start, end int) (pre, mid, post *Node, err error) {
	runes := []rune(node.Text)

	if start < 0 || end > len(runes) || start >= end {
		return nil, nil, nil, fmt.Errorf("invalid text range [%d, %d) for %d runes", start, end, len(runes))
	}

	if start > 0 {
		pre = NewMarkedText(string(runes[:start]), node.Marks)
	}

	mid = NewMarkedText(string(runes[start:end]), node.Marks)

	if end < len(runes) {
		post = NewMarkedText(string(runes[end:]), node.Marks)
	}

	return pre, mid, post, nil
}

func compactText(nodes ...*Node) []*Node {
	var out []*Node

	for _, n := range nodes {
		if n == nil {
			continue
		}

		if last := len(out) - 1; last >= 0 && out[last].Type == TypeText && n.Type == TypeText && out[last].Marks == n.Marks {
			out[last].Text += n.Text
			continue
		}

		out = append(out, n)
	}

	return out
}
