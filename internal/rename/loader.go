package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"schema-migrator/internal/document"
)

// DefaultTablePath is where the migrator leaves the rename table.
const DefaultTablePath = "mapping.json"

const filePerm = 0o644

// LoadFile loads a rename table. Files ending in .json are read as JSON,
// anything else as YAML.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rename table %s: %w", path, err)
	}

	if isJSON(path) {
		return parseJSON(data)
	}

	return Parse(data)
}

// Parse parses a YAML (or JSON, which YAML accepts) rename table.
func Parse(data []byte) (*Table, error) {
	t := NewTable()

	err := yaml.Unmarshal(data, t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rename table: %w", err)
	}

	return t, nil
}

func parseJSON(data []byte) (*Table, error) {
	obj, err := document.DecodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rename table: %w", err)
	}

	t := NewTable()

	for _, from := range obj.Keys() {
		to, ok := obj.String(from)
		if !ok {
			return nil, fmt.Errorf("failed to parse rename table: value for %q is not a string", from)
		}

		t.Add(from, to)
	}

	return t, nil
}

// Marshal serializes a table as JSON or YAML, keeping row order.
func Marshal(t *Table, asJSON bool) ([]byte, error) {
	if asJSON {
		return document.MarshalIndent(t.Object())
	}

	return yaml.Marshal(t)
}

// WriteFile writes a table to path, choosing the format from the extension.
func WriteFile(t *Table, path string) error {
	data, err := Marshal(t, isJSON(path))
	if err != nil {
		return fmt.Errorf("failed to marshal rename table: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write rename table %s: %w", path, err)
	}

	return nil
}

// MarshalYAML encodes the table as a mapping in row order.
func (t *Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range t.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.From},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.To},
		)
	}

	return node, nil
}

// UnmarshalYAML decodes a mapping of old id to new id, keeping row order.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rename table must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: rename table entries must be scalars", key.Line)
		}

		t.Add(key.Value, value.Value)
	}

	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
