// Package chunk splits a note tree into sized plain-text segments that
// keep their structural context, for downstream search and summary use.
package chunk

import (
	"strings"

	"github.com/dgallion1/notekit/note"
)

// Chunk is a sized plain-text segment of a note together with the
// heading path that leads to it.
type Chunk struct {
	Text       string
	Index      int      // sequence number within the note
	Breadcrumb []string // container titles and nearest heading, outermost first
}

// Config controls chunking behavior. Sizes are in estimated tokens.
type Config struct {
	Size    int // target chunk size
	Overlap int // overlap carried between consecutive chunks
	Min     int // smallest chunk worth emitting
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Size:    1500,
		Overlap: 200,
		Min:     100,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Size <= 0 {
		c.Size = d.Size
	}
	if c.Overlap <= 0 {
		c.Overlap = d.Overlap
	}
	if c.Min <= 0 {
		c.Min = d.Min
	}
	return c
}

// Split walks a note depth-first and produces structure-aware chunks.
// Section and note titles accumulate into breadcrumbs; heading leaves
// open a new breadcrumb scope for the text that follows them; text,
// code, and diagram leaves contribute their plain-text payloads.
func Split(root *note.Note, cfg Config) []Chunk {
	w := &walker{cfg: cfg.withDefaults()}
	w.container(root.Title(), root.Children(), nil)
	return w.chunks
}

type walker struct {
	cfg    Config
	chunks []Chunk
}

// container visits the children of a composite. Text accumulated under
// one heading scope is merged before sizing, so short adjacent blocks
// chunk together.
func (w *walker) container(title string, children []note.Component, crumb []string) {
	base := crumb
	if title != "" {
		base = appendCrumb(crumb, title)
	}

	scope := base
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		w.emit(strings.Join(pending, "\n\n"), scope)
		pending = nil
	}

	for _, child := range children {
		switch c := child.(type) {
		case *note.Section:
			flush()
			scope = base
			w.container(c.Title(), c.Children(), base)
		case *note.Note:
			flush()
			scope = base
			w.container(c.Title(), c.Children(), base)
		case *note.Heading, *note.Subheading:
			flush()
			scope = appendCrumb(base, child.TextContent())
		default:
			if t := child.TextContent(); t != "" {
				pending = append(pending, t)
			}
		}
	}
	flush()
}

// emit appends one or more chunks for a block of text, splitting when
// it exceeds the target size and dropping fragments below Min.
func (w *walker) emit(text string, crumb []string) {
	if EstimateTokens(text) <= w.cfg.Size {
		w.append(text, crumb)
		return
	}
	for _, part := range splitText(text, w.cfg.Size, w.cfg.Overlap) {
		w.append(part, crumb)
	}
}

func (w *walker) append(text string, crumb []string) {
	if EstimateTokens(text) < w.cfg.Min {
		return
	}
	w.chunks = append(w.chunks, Chunk{
		Text:       text,
		Index:      len(w.chunks),
		Breadcrumb: appendCrumb(crumb),
	})
}

// appendCrumb copies on append so sibling scopes never share backing
// arrays.
func appendCrumb(crumb []string, parts ...string) []string {
	out := make([]string, 0, len(crumb)+len(parts))
	out = append(out, crumb...)
	out = append(out, parts...)
	if len(out) == 0 {
		return nil
	}
	return out
}
