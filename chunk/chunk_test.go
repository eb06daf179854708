package chunk

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/notekit/note"
)

func TestSplit_SmallNoteFitsOneChunk(t *testing.T) {
	n := note.NewNote("Small").
		Add(note.NewSection("Section").
			Add(note.NewText(strings.Repeat("word ", 200))))

	cfg := Config{Size: 1500, Overlap: 200, Min: 50}
	chunks := Split(n, cfg)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Index != 0 {
		t.Errorf("expected index 0, got %d", chunks[0].Index)
	}
	want := []string{"Small", "Section"}
	if !reflect.DeepEqual(chunks[0].Breadcrumb, want) {
		t.Errorf("expected breadcrumb %v, got %v", want, chunks[0].Breadcrumb)
	}
}

func TestSplit_HeadingLeavesScopeBreadcrumbs(t *testing.T) {
	intro := strings.Repeat("intro text here. ", 30)
	usage := strings.Repeat("usage text here. ", 30)

	n := note.NewNote("Guide").
		Add(note.NewSubheading("Intro", 2)).
		Add(note.NewText(intro)).
		Add(note.NewSubheading("Usage", 2)).
		Add(note.NewText(usage))

	chunks := Split(n, Config{Size: 1500, Overlap: 50, Min: 10})
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if !reflect.DeepEqual(chunks[0].Breadcrumb, []string{"Guide", "Intro"}) {
		t.Errorf("chunk 0: wrong breadcrumb %v", chunks[0].Breadcrumb)
	}
	if !reflect.DeepEqual(chunks[1].Breadcrumb, []string{"Guide", "Usage"}) {
		t.Errorf("chunk 1: wrong breadcrumb %v", chunks[1].Breadcrumb)
	}
	if !strings.Contains(chunks[0].Text, "intro") || !strings.Contains(chunks[1].Text, "usage") {
		t.Errorf("chunk texts landed under the wrong headings")
	}
}

func TestSplit_NestedSectionsBuildBreadcrumbPath(t *testing.T) {
	n := note.NewNote("Root").
		Add(note.NewSection("Outer").
			Add(note.NewSection("Inner").
				Add(note.NewText(strings.Repeat("deep content. ", 20)))))

	chunks := Split(n, Config{Size: 1500, Overlap: 50, Min: 5})
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	want := []string{"Root", "Outer", "Inner"}
	if !reflect.DeepEqual(chunks[0].Breadcrumb, want) {
		t.Errorf("expected breadcrumb %v, got %v", want, chunks[0].Breadcrumb)
	}
}

func TestSplit_LargeTextRequiresSplitting(t *testing.T) {
	// ~3000 words, far above a 500-token target.
	large := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 300)
	n := note.NewNote("Large").
		Add(note.NewSection("Big").
			Add(note.NewText(large)))

	cfg := Config{Size: 500, Overlap: 50, Min: 10}
	chunks := Split(n, cfg)

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d: expected index %d, got %d", i, i, c.Index)
		}
		// Boundary snapping can overflow the target a little, never
		// by a large margin.
		if tokens := EstimateTokens(c.Text); tokens > cfg.Size*2 {
			t.Errorf("chunk %d: %d tokens exceeds 2x target %d", i, tokens, cfg.Size)
		}
	}
}

func TestSplit_DropsFragmentsBelowMin(t *testing.T) {
	n := note.NewNote("T").
		Add(note.NewSection("Tiny").
			Add(note.NewText("too short")))

	chunks := Split(n, Config{Size: 1500, Overlap: 50, Min: 100})
	if len(chunks) != 0 {
		t.Errorf("expected fragment below Min to be dropped, got %d chunks", len(chunks))
	}
}

func TestSplit_CodeAndDiagramsContributePayloadOnly(t *testing.T) {
	n := note.NewNote("T").
		Add(note.NewSection("S").
			Add(note.NewCodeBlock(strings.Repeat("x := 1\n", 40), "go")).
			Add(note.NewDiagram(strings.Repeat("a -> b\n", 40), "ascii")))

	chunks := Split(n, Config{Size: 1500, Overlap: 50, Min: 5})
	if len(chunks) != 1 {
		t.Fatalf("expected merged payload chunk, got %d", len(chunks))
	}
	if strings.Contains(chunks[0].Text, "```") || strings.Contains(chunks[0].Text, "[Diagram") {
		t.Errorf("markup leaked into chunk text %q", chunks[0].Text)
	}
}

func TestSplit_ZeroConfigUsesDefaults(t *testing.T) {
	n := note.NewNote("T").
		Add(note.NewText(strings.Repeat("filler words here. ", 60)))

	chunks := Split(n, Config{})
	if len(chunks) != 1 {
		t.Fatalf("expected defaults to emit 1 chunk, got %d", len(chunks))
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("empty text: expected 0, got %d", got)
	}
	if got := EstimateTokens("word"); got < 1 {
		t.Errorf("single word: expected at least 1, got %d", got)
	}
	hundred := strings.Repeat("word ", 100)
	if got := EstimateTokens(hundred); got != 133 {
		t.Errorf("100 words: expected 133, got %d", got)
	}
}
