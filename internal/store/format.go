package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"qedit/internal/bank"
)

// format encodes and decodes a bank in one on-disk representation.
type format interface {
	decode(data []byte) (bank.Bank, error)
	encode(b bank.Bank) ([]byte, error)
}

// formatForPath picks YAML for .yml/.yaml files and JSON for everything else.
func formatForPath(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yamlFormat{}
	default:
		return jsonFormat{}
	}
}

type jsonFormat struct{}

func (jsonFormat) decode(data []byte) (bank.Bank, error) {
	return bank.Decode(bytes.NewReader(data))
}

// encode writes two-space indented JSON with a trailing newline.
func (jsonFormat) encode(b bank.Bank) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(b); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

type yamlFormat struct{}

func (yamlFormat) decode(data []byte) (bank.Bank, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := decoder.Decode(&root); err != nil {
		if err == io.EOF {
			return bank.Bank{Categories: []bank.Category{}}, nil
		}
		return bank.Bank{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return bank.Bank{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return bank.Bank{}, fmt.Errorf("parse yaml: %w", err)
	}

	mapping := &root
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		mapping = root.Content[0]
	}
	if mapping.Kind != yaml.MappingNode {
		return bank.Bank{}, fmt.Errorf("parse yaml: question bank must be a mapping")
	}

	decoded := bank.Bank{Categories: []bank.Category{}}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		var questions []bank.Question
		if err := mapping.Content[i+1].Decode(&questions); err != nil {
			return bank.Bank{}, fmt.Errorf("parse yaml: category %q: %w", name, err)
		}
		for j := range questions {
			if questions[j].Choices == nil {
				questions[j].Choices = []bank.Choice{}
			}
		}
		if questions == nil {
			questions = []bank.Question{}
		}
		decoded.Set(name, questions)
	}
	return decoded, nil
}

// encode builds the mapping node by hand so category order is kept.
func (yamlFormat) encode(b bank.Bank) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, category := range b.Categories {
		questions := category.Questions
		if questions == nil {
			questions = []bank.Question{}
		}
		value := &yaml.Node{}
		if err := value.Encode(questions); err != nil {
			return nil, fmt.Errorf("encode yaml: category %q: %w", category.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: category.Name}
		mapping.Content = append(mapping.Content, key, value)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(mapping); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}
