package note

import "strings"

// Section is a composite block: a titled, ordered group of child
// components. Children may be leaves or further composites.
//
// A section exclusively owns its children. Adding a component to two
// parents, or adding an ancestor as its own descendant, is not
// detected; the latter recurses without bound.
type Section struct {
	title    string
	children []Component
}

// NewSection creates a section. An empty title suppresses the
// section's own heading line when rendering.
func NewSection(title string) *Section {
	return &Section{title: title}
}

// Title reports the section title.
func (s *Section) Title() string {
	return s.title
}

// Add appends a child component and returns the section for chaining.
// Insertion order is render order; duplicates are allowed.
func (s *Section) Add(c Component) *Section {
	s.children = append(s.children, c)
	return s
}

// Remove drops the first child identical to c, if present.
func (s *Section) Remove(c Component) *Section {
	for i, child := range s.children {
		if child == c {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}
	return s
}

// Children returns a copy of the ordered child sequence.
func (s *Section) Children() []Component {
	out := make([]Component, len(s.children))
	copy(out, s.children)
	return out
}

// Render emits the section's subheading line at the given depth, then
// every child at one level deeper.
func (s *Section) Render(indent int) string {
	var b strings.Builder
	if s.title != "" {
		b.WriteString(indentPrefix(indent) + "## " + s.title + "\n\n")
	}
	for _, child := range s.children {
		b.WriteString(child.Render(indent + 1))
	}
	return b.String()
}

func (s *Section) TextContent() string {
	fragments := make([]string, 0, len(s.children)+1)
	fragments = append(fragments, s.title)
	for _, child := range s.children {
		fragments = append(fragments, child.TextContent())
	}
	return joinText(fragments)
}
