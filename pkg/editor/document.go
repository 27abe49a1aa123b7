package editor

import (
	"errors"
	"fmt"
	"sync"
)

var ErrAlreadySeeded = errors.New("document has already been seeded")
var ErrNodeNotFound = errors.New("node not found")

// Document owns a rich-text node tree. Every mutation serializes the tree to
// HTML and forwards the string to OnChange; that callback is the only channel
// by which editor content reaches the rest of the application.
type Document struct {
	mu     sync.Mutex
	root   *Node
	seq    int
	seeded bool

	// OnChange receives the serialized HTML after every mutation.
	OnChange func(html string)
}

func NewDocument() *Document {
	d := &Document{
		root: &Node{Type: TypeRoot},
	}

	d.adopt(d.root)

	return d
}

func (d *Document) nextKey() string {
	d.seq++

	return fmt.Sprintf("n%d", d.seq)
}

// adopt assigns keys to the node and its descendants.
func (d *Document) adopt(n *Node) {
	if n.key == "" {
		n.key = d.nextKey()
	}

	for _, child := range n.Children {
		d.adopt(child)
	}
}

// notify must be called with the lock held; it captures the rendered HTML and
// invokes OnChange after the lock is released by the caller-provided closure.
func (d *Document) mutate(fn func() error) error {
	d.mu.Lock()

	if err := fn(); err != nil {
		d.mu.Unlock()
		return err
	}

	var html string
	callback := d.OnChange
	if callback != nil {
		html = renderChildren(d.root)
	}

	d.mu.Unlock()

	if callback != nil {
		callback(html)
	}

	return nil
}

// HTML serializes the current tree.
func (d *Document) HTML() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return renderChildren(d.root)
}

// Seed parses the given HTML and replaces the document root with the result.
// It may run at most once per document; a second call reports
// ErrAlreadySeeded so stale fetched content can never clobber later edits.
func (d *Document) Seed(html string) error {
	return d.mutate(func() error {
		if d.seeded {
			return ErrAlreadySeeded
		}

		blocks, err := ParseBlocks(html)
		if err != nil {
			return fmt.Errorf("seed parse failed: %w", err)
		}

		d.root.Children = blocks
		d.adopt(d.root)
		d.seeded = true

		return nil
	})
}

// Seeded reports whether seed content has been applied.
func (d *Document) Seeded() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.seeded
}

// find walks the tree for a key, returning the node and its parent.
func find(parent *Node, key string) (*Node, *Node) {
	for _, child := range parent.Children {
		if child.key == key {
			return child, parent
		}

		if got, gotParent := find(child, key); got != nil {
			return got, gotParent
		}
	}

	return nil, nil
}

// Find returns the node with the given key, or nil.
func (d *Document) Find(key string) *Node {
	d.mu.Lock()
	defer d.mu.Unlock()

	if key == "" {
		return nil
	}

	node, _ := find(d.root, key)

	return node
}

// AppendBlock attaches a block node at the end of the document and returns
// its key.
func (d *Document) AppendBlock(n *Node) (string, error) {
	if n == nil || !n.isBlock() {
		return "", errors.New("node is not a block")
	}

	err := d.mutate(func() error {
		d.adopt(n)
		d.root.Children = append(d.root.Children, n)

		return nil
	})
	if err != nil {
		return "", err
	}

	return n.key, nil
}

// InsertBlockAfter places a block node right after the block identified by
// afterKey; an empty afterKey appends at the end.
func (d *Document) InsertBlockAfter(afterKey string, n *Node) (string, error) {
	if n == nil || !n.isBlock() {
		return "", errors.New("node is not a block")
	}

	err := d.mutate(func() error {
		d.adopt(n)

		if afterKey == "" {
			d.root.Children = append(d.root.Children, n)
			return nil
		}

		for i, child := range d.root.Children {
			if child.key == afterKey {
				children := append([]*Node{}, d.root.Children[:i+1]...)
				children = append(children, n)
				children = append(children, d.root.Children[i+1:]...)
				d.root.Children = children

				return nil
			}
		}

		return fmt.Errorf("%w: %s", ErrNodeNotFound, afterKey)
	})
	if err != nil {
		return "", err
	}

	return n.key, nil
}

// RemoveNode detaches the node with the given key, wherever it sits.
func (d *Document) RemoveNode(key string) error {
	return d.mutate(func() error {
		node, parent := find(d.root, key)
		if node == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, key)
		}

		parent.Children = detach(parent.Children, node)

		return nil
	})
}

// ReplaceNode swaps the node with the given key for the replacement node.
func (d *Document) ReplaceNode(key string, replacement *Node) error {
	if replacement == nil {
		return errors.New("replacement is nil")
	}

	return d.mutate(func() error {
		node, parent := find(d.root, key)
		if node == nil {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, key)
		}

		d.adopt(replacement)

		for i, child := range parent.Children {
			if child == node {
				parent.Children[i] = replacement
				return nil
			}
		}

		return fmt.Errorf("%w: %s", ErrNodeNotFound, key)
	})
}

// Blocks returns the top-level block nodes.
func (d *Document) Blocks() []*Node {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]*Node{}, d.root.Children...)
}

func detach(children []*Node, node *Node) []*Node {
	out := children[:0]
	for _, child := range children {
		if child != node {
			out = append(out, child)
		}
	}

	return out
}
