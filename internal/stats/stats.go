// Package stats computes content statistics for a note tree.
package stats

import (
	"strings"

	"github.com/dgallion1/notekit/chunk"
	"github.com/dgallion1/notekit/note"
)

// Snapshot is a point-in-time aggregate over one note tree.
type Snapshot struct {
	Components int `json:"components"` // all nodes below the root
	Sections   int `json:"sections"`
	Headings   int `json:"headings"` // Heading and Subheading leaves
	TextBlocks int `json:"text_blocks"`
	CodeBlocks int `json:"code_blocks"`
	Diagrams   int `json:"diagrams"`
	Words      int `json:"words"`      // whitespace-separated words of extracted text
	EstTokens  int `json:"est_tokens"` // token estimate of extracted text
	MaxDepth   int `json:"max_depth"`  // deepest nesting level, root children at 1
}

// Collect walks the tree once and aggregates counts. The root note
// itself is not counted as a component.
func Collect(root *note.Note) Snapshot {
	var s Snapshot
	for _, child := range root.Children() {
		s.walk(child, 1)
	}

	text := root.TextContent()
	s.Words = len(strings.Fields(text))
	s.EstTokens = chunk.EstimateTokens(text)
	return s
}

func (s *Snapshot) walk(c note.Component, depth int) {
	s.Components++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}

	switch v := c.(type) {
	case *note.Section:
		s.Sections++
		for _, child := range v.Children() {
			s.walk(child, depth+1)
		}
	case *note.Note:
		// A nested note behaves like a titled section here.
		s.Sections++
		for _, child := range v.Children() {
			s.walk(child, depth+1)
		}
	case *note.Heading, *note.Subheading:
		s.Headings++
	case *note.Text:
		s.TextBlocks++
	case *note.CodeBlock:
		s.CodeBlocks++
	case *note.Diagram:
		s.Diagrams++
	}
}
