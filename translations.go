package main

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/spkg/bom"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/xerrors"
)

// Translations maps translation keys to values. Iteration follows insertion
// order, which for loaded files is the order of the keys in the file.
type Translations = orderedmap.OrderedMap[string, string]

// NewTranslations returns an empty translation map.
func NewTranslations() *Translations {
	return orderedmap.New[string, string]()
}

// LoadTranslations reads a translation file: a JSON object of string values,
// or a YAML mapping when the file is named *.yaml or *.yml.
func LoadTranslations(path string) (*Translations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(err)
	}
	data = bom.Clean(data)

	if isYAMLFile(path) {
		translations, err := loadYAMLTranslations(data)
		if err != nil {
			return nil, xerrors.Errorf("parsing %s: %w", path, err)
		}
		return translations, nil
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, xerrors.Errorf("parsing %s: expected a JSON object of translation keys", path)
	}
	raw := orderedmap.New[string, any]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, xerrors.Errorf("parsing %s: %w", path, err)
	}

	translations := NewTranslations()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		value, ok := pair.Value.(string)
		if !ok {
			return nil, xerrors.Errorf("parsing %s: key %q: expected a string value, got %s", path, pair.Key, jsonType(pair.Value))
		}
		translations.Set(pair.Key, value)
	}
	return translations, nil
}

// Merge returns the keys of defaults, in their order, each with the value
// from translated when present and the default value otherwise. Keys only
// present in translated are dropped.
func Merge(defaults, translated *Translations) *Translations {
	merged := NewTranslations()
	for pair := defaults.Oldest(); pair != nil; pair = pair.Next() {
		value := pair.Value
		if v, ok := translated.Get(pair.Key); ok {
			value = v
		}
		merged.Set(pair.Key, value)
	}
	return merged
}

// translationKeys returns the keys of t in order.
func translationKeys(t *Translations) []string {
	keys := make([]string, 0, t.Len())
	for pair := t.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "string"
}
