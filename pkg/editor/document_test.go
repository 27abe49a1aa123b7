package editor

import (
	"errors"
	"testing"
)

func TestDocumentAppendBlockRendersOnChange(t *testing.T) {
	doc := NewDocument()

	var rendered []string
	doc.OnChange = func(html string) {
		rendered = append(rendered, html)
	}

	key, err := doc.AppendBlock(NewParagraph(NewText("Hello")))
	if err != nil {
		t.Fatalf("append block: %v", err)
	}

	if key == "" {
		t.Fatalf("expected the block to receive a key")
	}

	if doc.HTML() != "<p>Hello</p>" {
		t.Fatalf("unexpected html: %s", doc.HTML())
	}

	if len(rendered) != 1 || rendered[0] != "<p>Hello</p>" {
		t.Fatalf("expected OnChange to receive the serialized html, got %v", rendered)
	}
}

func TestDocumentRejectsInlineTopLevelNodes(t *testing.T) {
	doc := NewDocument()

	if _, err := doc.AppendBlock(NewText("loose text")); err == nil {
		t.Fatalf("expected inline nodes to be rejected at the top level")
	}
}

func TestDocumentSeedRunsOnce(t *testing.T) {
	doc := NewDocument()

	if doc.Seeded() {
		t.Fatalf("expected a fresh document to be unseeded")
	}

	if err := doc.Seed("<p>Original</p>"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if !doc.Seeded() {
		t.Fatalf("expected the document to report seeded")
	}

	err := doc.Seed("<p>Stale fetch</p>")
	if !errors.Is(err, ErrAlreadySeeded) {
		t.Fatalf("expected ErrAlreadySeeded, got %v", err)
	}

	if doc.HTML() != "<p>Original</p>" {
		t.Fatalf("expected the second seed to leave the content alone, got %s", doc.HTML())
	}
}

func TestDocumentInsertBlockAfter(t *testing.T) {
	doc := NewDocument()

	first, err := doc.AppendBlock(NewParagraph(NewText("one")))
	if err != nil {
		t.Fatalf("append block: %v", err)
	}

	if _, err := doc.AppendBlock(NewParagraph(NewText("three"))); err != nil {
		t.Fatalf("append block: %v", err)
	}

	if _, err := doc.InsertBlockAfter(first, NewParagraph(NewText("two"))); err != nil {
		t.Fatalf("insert block: %v", err)
	}

	if doc.HTML() != "<p>one</p><p>two</p><p>three</p>" {
		t.Fatalf("unexpected order: %s", doc.HTML())
	}

	if _, err := doc.InsertBlockAfter("", NewParagraph(NewText("four"))); err != nil {
		t.Fatalf("append via empty key: %v", err)
	}

	if doc.HTML() != "<p>one</p><p>two</p><p>three</p><p>four</p>" {
		t.Fatalf("expected an empty key to append, got %s", doc.HTML())
	}

	_, err = doc.InsertBlockAfter("missing", NewParagraph())
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestDocumentRemoveAndReplaceNode(t *testing.T) {
	doc := NewDocument()

	key, err := doc.AppendBlock(NewParagraph(NewText("doomed")))
	if err != nil {
		t.Fatalf("append block: %v", err)
	}

	keeper, err := doc.AppendBlock(NewParagraph(NewText("keeper")))
	if err != nil {
		t.Fatalf("append block: %v", err)
	}

	if err := doc.RemoveNode(key); err != nil {
		t.Fatalf("remove node: %v", err)
	}

	if doc.Find(key) != nil {
		t.Fatalf("expected the removed node to be gone")
	}

	if err := doc.ReplaceNode(keeper, NewHeading(2, NewText("kept"))); err != nil {
		t.Fatalf("replace node: %v", err)
	}

	if doc.HTML() != "<h2>kept</h2>" {
		t.Fatalf("unexpected html after replace: %s", doc.HTML())
	}

	if !errors.Is(doc.RemoveNode("missing"), ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound for unknown keys")
	}
}

func TestDocumentBlocksCopiesTopLevel(t *testing.T) {
	doc := NewDocument()

	if _, err := doc.AppendBlock(NewParagraph(NewText("one"))); err != nil {
		t.Fatalf("append block: %v", err)
	}

	blocks := doc.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	blocks = append(blocks, NewParagraph())

	if len(doc.Blocks()) != 1 {
		t.Fatalf("expected the returned slice to be a copy")
	}
}
