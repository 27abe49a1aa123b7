package portal

import "testing"

func TestStringableToSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple title", input: "Hello World", want: "hello-world"},
		{name: "punctuation collapses", input: "Go, Concurrency & You!", want: "go-concurrency-you"},
		{name: "surrounding noise trims", input: "  --Edge Cases--  ", want: "edge-cases"},
		{name: "digits survive", input: "Top 10 Tips", want: "top-10-tips"},
		{name: "uppercase folds", input: "SHOUTING TITLE", want: "shouting-title"},
		{name: "empty stays empty", input: "   ", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewStringable(tc.input).ToSlug(); got != tc.want {
				t.Fatalf("ToSlug(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStringableToLower(t *testing.T) {
	if got := NewStringable("  MiXeD Case  ").ToLower(); got != "mixed case" {
		t.Fatalf("ToLower = %q", got)
	}
}

func TestStringableIsEmpty(t *testing.T) {
	if !NewStringable("   ").IsEmpty() {
		t.Fatal("expected whitespace-only input to be empty")
	}

	if NewStringable("value").IsEmpty() {
		t.Fatal("expected a value to not be empty")
	}
}
