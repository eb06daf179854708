package note

import "strings"

// Default labels applied when a CodeBlock language or Diagram type is
// left empty at construction.
const (
	DefaultLanguage    = "text"
	DefaultDiagramType = "diagram"
)

// Heading is a leaf block rendered as a level-1 title line. It carries
// the same weight as a Note's own title line; callers control context.
type Heading struct {
	text string
}

// NewHeading creates a top-level heading block.
func NewHeading(text string) *Heading {
	return &Heading{text: text}
}

func (h *Heading) Render(indent int) string {
	return indentPrefix(indent) + "# " + h.text + "\n\n"
}

func (h *Heading) TextContent() string {
	return h.text
}

// Subheading is a leaf block rendered as a heading of depth 2 through 6.
type Subheading struct {
	text  string
	level int
}

// NewSubheading creates a subheading. Levels outside [2,6] are clamped,
// not rejected.
func NewSubheading(text string, level int) *Subheading {
	if level < 2 {
		level = 2
	}
	if level > 6 {
		level = 6
	}
	return &Subheading{text: text, level: level}
}

// Level reports the normalized heading depth.
func (s *Subheading) Level() int {
	return s.level
}

func (s *Subheading) Render(indent int) string {
	return indentPrefix(indent) + strings.Repeat("#", s.level) + " " + s.text + "\n\n"
}

func (s *Subheading) TextContent() string {
	return s.text
}

// Text is a leaf block of plain body text. Embedded line breaks are
// preserved verbatim; each line receives the indent prefix.
type Text struct {
	body string
}

// NewText creates a plain text block.
func NewText(body string) *Text {
	return &Text{body: body}
}

func (t *Text) Render(indent int) string {
	return prefixLines(t.body, indentPrefix(indent)) + "\n\n"
}

func (t *Text) TextContent() string {
	return t.body
}

// CodeBlock is a leaf block rendered as a fenced code block.
type CodeBlock struct {
	code     string
	language string
}

// NewCodeBlock creates a fenced code block. An empty language falls
// back to DefaultLanguage.
func NewCodeBlock(code, language string) *CodeBlock {
	if language == "" {
		language = DefaultLanguage
	}
	return &CodeBlock{code: code, language: language}
}

// Language reports the fence annotation.
func (c *CodeBlock) Language() string {
	return c.language
}

func (c *CodeBlock) Render(indent int) string {
	prefix := indentPrefix(indent)
	var b strings.Builder
	b.WriteString(prefix + "```" + c.language + "\n")
	b.WriteString(prefixLines(c.code, prefix) + "\n")
	b.WriteString(prefix + "```\n\n")
	return b.String()
}

// TextContent returns the code only; the language tag is markup.
func (c *CodeBlock) TextContent() string {
	return c.code
}

// Diagram is a leaf block holding diagram source (ASCII art, mermaid,
// and so on), rendered between bracketed marker lines.
type Diagram struct {
	body        string
	diagramType string
}

// NewDiagram creates a diagram block. An empty type falls back to
// DefaultDiagramType.
func NewDiagram(body, diagramType string) *Diagram {
	if diagramType == "" {
		diagramType = DefaultDiagramType
	}
	return &Diagram{body: body, diagramType: diagramType}
}

// Type reports the diagram type label.
func (d *Diagram) Type() string {
	return d.diagramType
}

func (d *Diagram) Render(indent int) string {
	prefix := indentPrefix(indent)
	var b strings.Builder
	b.WriteString(prefix + "[Diagram: " + d.diagramType + "]\n")
	b.WriteString(prefixLines(d.body, prefix) + "\n")
	b.WriteString(prefix + "[End Diagram]\n\n")
	return b.String()
}

// TextContent returns the diagram body only; the type tag is markup.
func (d *Diagram) TextContent() string {
	return d.body
}
