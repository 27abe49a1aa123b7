package editor

import (
	"testing"
)

func TestSeedRoundTripsStoredHTML(t *testing.T) {
	source := `<h2>Title</h2><p>Hello <strong>bold</strong> and <a href="https://example.test">a link</a></p><ul><li>one</li><li>two</li></ul><blockquote>wise words</blockquote><pre><code>x &lt; y</code></pre><img src="https://cdn.test/pic.png" alt="pic">`

	doc := NewDocument()
	if err := doc.Seed(source); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if doc.HTML() != source {
		t.Fatalf("round trip drifted:\n want %s\n got  %s", source, doc.HTML())
	}
}

func TestRenderEscapesText(t *testing.T) {
	doc := NewDocument()

	if _, err := doc.AppendBlock(NewParagraph(NewText(`tags like <script> & "quotes"`))); err != nil {
		t.Fatalf("append block: %v", err)
	}

	want := `<p>tags like &lt;script&gt; &amp; &#34;quotes&#34;</p>`
	if doc.HTML() != want {
		t.Fatalf("expected escaped output, got %s", doc.HTML())
	}
}

func TestRenderNestsMarks(t *testing.T) {
	doc := NewDocument()

	text := NewMarkedText("dense", MarkBold|MarkItalic|MarkUnderline|MarkCode)
	if _, err := doc.AppendBlock(NewParagraph(text)); err != nil {
		t.Fatalf("append block: %v", err)
	}

	want := "<p><strong><em><u><code>dense</code></u></em></strong></p>"
	if doc.HTML() != want {
		t.Fatalf("expected deterministic mark nesting, got %s", doc.HTML())
	}
}

func TestParseBlocksFoldsLooseInlineContent(t *testing.T) {
	blocks, err := ParseBlocks(`stray <strong>text</strong><p>real paragraph</p>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	if blocks[0].Type != TypeParagraph || len(blocks[0].Children) != 2 {
		t.Fatalf("expected the stray inline run to fold into a paragraph")
	}

	if !blocks[0].Children[1].Marks.Has(MarkBold) {
		t.Fatalf("expected the bold mark to survive parsing")
	}
}

func TestParseBlocksClampsDeepHeadings(t *testing.T) {
	blocks, err := ParseBlocks("<h5>deep</h5>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(blocks) != 1 || blocks[0].Type != TypeHeading || blocks[0].Level != 3 {
		t.Fatalf("expected h5 to clamp to level 3")
	}
}

func TestStripTags(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"rich body", "<p>Hello <strong>World</strong></p>", "Hello World"},
		{"empty paragraphs", "<p> </p><p></p>", ""},
		{"plain text", "already plain", "already plain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripTags(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
