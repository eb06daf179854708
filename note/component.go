// Package note implements a composite document model for hierarchical
// notes. Leaf blocks (headings, text, code, diagrams) and container
// nodes (sections, the note root) satisfy one rendering contract, so a
// whole tree and a single block are handled uniformly.
package note

import "strings"

// IndentUnit is the per-level line prefix used when rendering.
const IndentUnit = "  "

// Component is a node in a note tree.
//
// Render produces the markdown-like text form of the node and its
// descendants. The indent argument is the nesting depth; composites
// render every direct child at indent+1. Indentation is cosmetic only
// and never affects TextContent.
//
// TextContent returns the plain-text payload of the node and its
// descendants in render order, with structural markup (fences,
// delimiters, brackets) stripped.
//
// Both operations are pure: no I/O, no mutation, deterministic for a
// given tree state.
type Component interface {
	Render(indent int) string
	TextContent() string
}

// indentPrefix returns the line prefix for a nesting depth.
func indentPrefix(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat(IndentUnit, indent)
}

// prefixLines prepends prefix to every line of s.
func prefixLines(s, prefix string) string {
	if prefix == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// joinText joins fragments with a single space, skipping empty ones so
// a child with no text never produces doubled separators.
func joinText(fragments []string) string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
