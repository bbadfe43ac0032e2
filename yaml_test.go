package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsYAMLFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pytrans.yaml", true},
		{"dir/en.yml", true},
		{"EN.YAML", true},
		{"pytrans.json", false},
		{"english", false},
		{"yaml", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, isYAMLFile(tc.path))
		})
	}
}

func TestYAMLToJSON(t *testing.T) {
	got, err := yamlToJSON([]byte("mainLanguage: en\ntranslatedTo:\n  - fr\n  - name: de\n    locale: de-CH\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mainLanguage": "en", "translatedTo": ["fr", {"name": "de", "locale": "de-CH"}]}`, string(got))

	_, err = yamlToJSON([]byte("key: [unclosed"))
	assert.Error(t, err)
}

func TestLoadYAMLTranslations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "flat keys keep order",
			input: "b: two\na: one\n",
			want:  []string{"b", "two", "a", "one"},
		},
		{
			name: "nested keys",
			input: `menu:
  file:
    open: Open
  quit: Quit
`,
			want: []string{"menu_file_open", "Open", "menu_quit", "Quit"},
		},
		{
			name: "comments and quoting",
			input: `# greeting shown on the home page
hello: "Hi: there" # inline
multi: |
  line one
  line two
`,
			want: []string{"hello", "Hi: there", "multi", "line one\nline two\n"},
		},
		{
			name: "aliases",
			input: `base: &greeting Hello
again: *greeting
`,
			want: []string{"base", "Hello", "again", "Hello"},
		},
		{
			name:  "quoted scalars are strings",
			input: "count: \"3\"\nenabled: 'true'\nnothing: \"\"\n",
			want:  []string{"count", "3", "enabled", "true", "nothing", ""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := loadYAMLTranslations([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, pairs(got))
		})
	}
}

func TestLoadYAMLTranslationsErrors(t *testing.T) {
	_, err := loadYAMLTranslations([]byte("title: Hi\nitems:\n  - a\n"))
	require.Error(t, err)
	assert.Equal(t, `line 3: key "items": expected a string value`, err.Error())

	for input, want := range map[string]string{
		"count: 3\n":      `key "count": expected a string value, got int`,
		"enabled: true\n": `key "enabled": expected a string value, got bool`,
		"ratio: 0.5\n":    `key "ratio": expected a string value, got float`,
		"missing: ~\n":    `key "missing": expected a string value, got null`,
		"empty:\n":        `key "empty": expected a string value, got null`,
	} {
		_, err = loadYAMLTranslations([]byte(input))
		assert.ErrorContains(t, err, want, input)
	}

	_, err = loadYAMLTranslations([]byte("just a string\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1: expected a mapping")
}
