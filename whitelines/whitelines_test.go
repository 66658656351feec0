package whitelines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lyz-code/yamlfix/config"
)

func TestLocateSections(t *testing.T) {
	src := "---\nfirst:\n  a: 1\n\nsecond:\n  b: 2\n"
	spans := LocateSections(src)
	if len(spans) != 2 {
		t.Fatalf("expected 2 sections, got %d: %v", len(spans), spans)
	}
	if spans[0].Start != 0 {
		t.Errorf("first section should start at 0, got %d", spans[0].Start)
	}
	// the first section's trailing blank run is part of its span
	if got := src[spans[1].Start:spans[1].End]; got != "second:\n  b: 2\n" {
		t.Errorf("second section span = %q", got)
	}
}

func TestLocateSectionsWithCommentBlock(t *testing.T) {
	src := "key: value\n\n# Comment 1\n# Comment 2\nsection:\n  a: 1\n"
	spans := LocateSections(src)
	if len(spans) != 1 {
		t.Fatalf("expected 1 section, got %d: %v", len(spans), spans)
	}
	got := src[spans[0].Start:spans[0].End]
	want := "\n\n# Comment 1\n# Comment 2\nsection:\n  a: 1\n"
	if got != want {
		t.Errorf("section span = %q, want %q", got, want)
	}
}

func TestLocateSectionsInlineValueIsNoSection(t *testing.T) {
	// a root key with an inline value has no indented block to delimit
	src := "key: value\nother: value\n"
	if spans := LocateSections(src); len(spans) != 0 {
		t.Fatalf("expected no sections, got %v", spans)
	}
}

func TestFixCollapsesGenericRuns(t *testing.T) {
	cfg := config.Default()
	in := "---\nkey: value\n\n\nother: thing\n"
	want := "---\nkey: value\nother: thing\n"
	if got := Fix(in, cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFixGenericBudget(t *testing.T) {
	cfg := config.Default()
	cfg.Whitelines = 1
	in := "---\nkey: value\n\n\n\nother: thing\n"
	want := "---\nkey: value\n\nother: thing\n"
	if got := Fix(in, cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFixCommentBudget(t *testing.T) {
	cfg := config.Default()
	cfg.CommentsWhitelines = 1
	in := "a: 1\n\n\n\n# comment\nb: 2\n"
	want := "a: 1\n\n# comment\nb: 2\n"
	if got := Fix(in, cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFixCommentBudgetZero(t *testing.T) {
	cfg := config.Default()
	cfg.CommentsWhitelines = 0
	in := "a: 1\n\n\n# comment\nb: 2\n"
	want := "a: 1\n# comment\nb: 2\n"
	if got := Fix(in, cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFixSectionBudget(t *testing.T) {
	cfg := config.Default()
	cfg.SectionWhitelines = 2
	in := "---\nfirst:\n  a: 1\nsecond:\n  b: 2\n"
	want := "---\nfirst:\n  a: 1\n\n\nsecond:\n  b: 2\n"
	got := Fix(in, cfg)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("section spacing mismatch (-want +got):\n%s", diff)
	}
}

func TestFixSectionBudgetKeepsLargerGenericSpacing(t *testing.T) {
	// the section budget never reduces spacing at or above the generic budget
	cfg := config.Default()
	cfg.Whitelines = 2
	cfg.SectionWhitelines = 0
	in := "---\nfirst:\n  a: 1\n\n\nsecond:\n  b: 2\n"
	got := Fix(in, cfg)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("expected spacing preserved (-want +got):\n%s", diff)
	}
}

func TestFixCommentBudgetWinsAtSectionEdge(t *testing.T) {
	cfg := config.Default()
	cfg.SectionWhitelines = 1
	cfg.CommentsWhitelines = 2
	in := "---\nfirst:\n  a: 1\n\n\n\n# note\nsecond:\n  b: 2\n"
	want := "---\nfirst:\n  a: 1\n\n\n# note\nsecond:\n  b: 2\n"
	got := Fix(in, cfg)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

func TestFixNoTrailingBlankExplosion(t *testing.T) {
	cfg := config.Default()
	cfg.SectionWhitelines = 1
	in := "---\nonly:\n  a: 1\n\n\n\n"
	got := Fix(in, cfg)
	want := "---\nonly:\n  a: 1\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("trailing run mismatch (-want +got):\n%s", diff)
	}
}

func TestFixIdempotent(t *testing.T) {
	cfgs := []*config.Config{config.Default()}
	c2 := config.Default()
	c2.Whitelines = 1
	c2.SectionWhitelines = 2
	c2.CommentsWhitelines = 2
	cfgs = append(cfgs, c2)

	docs := []string{
		"---\nfirst:\n  a: 1\nsecond:\n  b: 2\n",
		"---\nkey: value\n\n\nother: thing\n\n# comment\nx: y\n",
		"a: 1\n\n\n\n# comment\nb: 2\n",
	}
	for _, cfg := range cfgs {
		for _, d := range docs {
			once := Fix(d, cfg)
			twice := Fix(once, cfg)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("not idempotent on %q (-once +twice):\n%s", d, diff)
			}
		}
	}
}
