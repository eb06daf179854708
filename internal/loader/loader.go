// Package loader builds note trees from YAML note definitions. A
// definition describes the tree to construct; it is a build input, not
// a parser for rendered notes.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dgallion1/notekit/note"
)

// Load reads a YAML note definition from path and builds the tree.
func Load(path string) (*note.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Parse builds a note tree from YAML definition bytes. Decoding goes
// through yaml.Node so metadata and content keep their written order.
func Parse(data []byte) (*note.Note, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty definition")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("definition must be a mapping, got %s at line %d", kindName(root.Kind), root.Line)
	}

	var title string
	var metaNode, contentNode *yaml.Node

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "title":
			title = val.Value
		case "metadata":
			metaNode = val
		case "content":
			contentNode = val
		default:
			return nil, fmt.Errorf("unknown key %q at line %d", key.Value, key.Line)
		}
	}
	if title == "" {
		return nil, fmt.Errorf("definition missing title")
	}

	n := note.NewNote(title)

	if metaNode != nil {
		if metaNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("metadata must be a mapping, got %s at line %d", kindName(metaNode.Kind), metaNode.Line)
		}
		for i := 0; i+1 < len(metaNode.Content); i += 2 {
			n.SetMetadata(metaNode.Content[i].Value, metaNode.Content[i+1].Value)
		}
	}

	if contentNode != nil {
		children, err := parseItems(contentNode)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			n.Add(c)
		}
	}
	return n, nil
}

func parseItems(seq *yaml.Node) ([]note.Component, error) {
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("content must be a sequence, got %s at line %d", kindName(seq.Kind), seq.Line)
	}
	out := make([]note.Component, 0, len(seq.Content))
	for _, item := range seq.Content {
		c, err := parseItem(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseItem(item *yaml.Node) (note.Component, error) {
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return nil, fmt.Errorf("content item at line %d must be a single-key mapping", item.Line)
	}
	key, val := item.Content[0], item.Content[1]

	switch key.Value {
	case "heading":
		return note.NewHeading(val.Value), nil

	case "subheading":
		if val.Kind == yaml.ScalarNode {
			return note.NewSubheading(val.Value, 2), nil
		}
		var sub struct {
			Text  string `yaml:"text"`
			Level int    `yaml:"level"`
		}
		if err := val.Decode(&sub); err != nil {
			return nil, fmt.Errorf("subheading at line %d: %w", val.Line, err)
		}
		if sub.Level == 0 {
			sub.Level = 2
		}
		return note.NewSubheading(sub.Text, sub.Level), nil

	case "text":
		return note.NewText(val.Value), nil

	case "code":
		if val.Kind == yaml.ScalarNode {
			return note.NewCodeBlock(val.Value, ""), nil
		}
		var code struct {
			Source   string `yaml:"source"`
			Language string `yaml:"language"`
		}
		if err := val.Decode(&code); err != nil {
			return nil, fmt.Errorf("code at line %d: %w", val.Line, err)
		}
		return note.NewCodeBlock(code.Source, code.Language), nil

	case "diagram":
		if val.Kind == yaml.ScalarNode {
			return note.NewDiagram(val.Value, ""), nil
		}
		var diag struct {
			Body string `yaml:"body"`
			Type string `yaml:"type"`
		}
		if err := val.Decode(&diag); err != nil {
			return nil, fmt.Errorf("diagram at line %d: %w", val.Line, err)
		}
		return note.NewDiagram(diag.Body, diag.Type), nil

	case "section":
		return parseSection(val)

	default:
		return nil, fmt.Errorf("unknown content item %q at line %d", key.Value, key.Line)
	}
}

func parseSection(val *yaml.Node) (*note.Section, error) {
	if val.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("section at line %d must be a mapping", val.Line)
	}

	var title string
	var contentNode *yaml.Node
	for i := 0; i+1 < len(val.Content); i += 2 {
		key, v := val.Content[i], val.Content[i+1]
		switch key.Value {
		case "title":
			title = v.Value
		case "content":
			contentNode = v
		default:
			return nil, fmt.Errorf("unknown section key %q at line %d", key.Value, key.Line)
		}
	}

	s := note.NewSection(title)
	if contentNode != nil {
		children, err := parseItems(contentNode)
		if err != nil {
			return nil, err
		}
		for _, c := range children {
			s.Add(c)
		}
	}
	return s, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
