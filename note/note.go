package note

import (
	"os"
	"strings"
)

// MetaEntry is one key/value pair of a note's metadata block.
type MetaEntry struct {
	Key   string
	Value string
}

// Note is the document root: a titled composite with an ordered
// metadata mapping, rendered as a title line, an optional metadata
// block, and the concatenated children.
type Note struct {
	title    string
	children []Component
	metadata []MetaEntry
}

// NewNote creates an empty note document.
func NewNote(title string) *Note {
	return &Note{title: title}
}

// Title reports the document title.
func (n *Note) Title() string {
	return n.title
}

// Add appends a child component and returns the note for chaining.
func (n *Note) Add(c Component) *Note {
	n.children = append(n.children, c)
	return n
}

// Remove drops the first child identical to c, if present.
func (n *Note) Remove(c Component) *Note {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	return n
}

// SetMetadata inserts or overwrites a metadata key and returns the
// note for chaining. Keys are unique; overwriting keeps the key at its
// original position in iteration order.
func (n *Note) SetMetadata(key, value string) *Note {
	for i := range n.metadata {
		if n.metadata[i].Key == key {
			n.metadata[i].Value = value
			return n
		}
	}
	n.metadata = append(n.metadata, MetaEntry{Key: key, Value: value})
	return n
}

// Metadata returns a copy of the metadata entries in insertion order.
func (n *Note) Metadata() []MetaEntry {
	out := make([]MetaEntry, len(n.metadata))
	copy(out, n.metadata)
	return out
}

// Children returns a copy of the ordered child sequence.
func (n *Note) Children() []Component {
	out := make([]Component, len(n.children))
	copy(out, n.children)
	return out
}

// Render emits the title line, the metadata block when any entries
// exist, and every child at one level deeper. Documents are rendered
// with indent 0.
func (n *Note) Render(indent int) string {
	prefix := indentPrefix(indent)
	var b strings.Builder

	b.WriteString(prefix + "# " + n.title + "\n\n")

	if len(n.metadata) > 0 {
		b.WriteString(prefix + "---\n")
		for _, e := range n.metadata {
			b.WriteString(prefix + e.Key + ": " + e.Value + "\n")
		}
		b.WriteString(prefix + "---\n\n")
	}

	for _, child := range n.children {
		b.WriteString(child.Render(indent + 1))
	}
	return b.String()
}

// TextContent returns the title and children's text contents,
// space-joined. Metadata is excluded.
func (n *Note) TextContent() string {
	fragments := make([]string, 0, len(n.children)+1)
	fragments = append(fragments, n.title)
	for _, child := range n.children {
		fragments = append(fragments, child.TextContent())
	}
	return joinText(fragments)
}

// Save writes exactly Render(0) to path as UTF-8 text, overwriting any
// existing file. The underlying I/O error is returned unchanged; the
// file handle is released on every path.
func (n *Note) Save(path string) error {
	return os.WriteFile(path, []byte(n.Render(0)), 0o644)
}
