package main

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// yamlKeySeparator joins nested YAML keys into one flat translation key.
// Elm identifiers cannot contain dots, so an underscore is used.
const yamlKeySeparator = "_"

// isYAMLFile reports whether path should be parsed as YAML instead of JSON.
func isYAMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML document as JSON so that it can go through
// the same schema validation and decoding as pytrans.json.
func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// loadYAMLTranslations parses a YAML translation file, keeping document
// order. Nested mappings are flattened into keys joined by
// yamlKeySeparator.
func loadYAMLTranslations(data []byte) (*Translations, error) {
	result := NewTranslations()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return result, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, xerrors.Errorf("line %d: expected a mapping of translation keys", root.Line)
	}
	if err := flattenYAMLNode("", root, result); err != nil {
		return nil, err
	}
	return result, nil
}

// flattenYAMLNode recursively flattens a mapping node into result.
func flattenYAMLNode(prefix string, node *yaml.Node, result *Translations) error {
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		key := keyNode.Value
		if prefix != "" {
			key = prefix + yamlKeySeparator + key
		}

		if valNode.Kind == yaml.AliasNode && valNode.Alias != nil {
			valNode = valNode.Alias
		}

		switch valNode.Kind {
		case yaml.MappingNode:
			if err := flattenYAMLNode(key, valNode, result); err != nil {
				return err
			}
		case yaml.ScalarNode:
			// Only !!str scalars are translations. Quote 5, true or ~ to
			// use them as text.
			if tag := valNode.ShortTag(); tag != "!!str" {
				return xerrors.Errorf("line %d: key %q: expected a string value, got %s", valNode.Line, key, strings.TrimPrefix(tag, "!!"))
			}
			result.Set(key, valNode.Value)
		default:
			return xerrors.Errorf("line %d: key %q: expected a string value", valNode.Line, key)
		}
	}
	return nil
}
