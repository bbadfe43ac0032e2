package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeElmString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain", "plain"},
		{`back\slash`, `back\\slash`},
		{`say "hi"`, `say \"hi\"`},
		{"two\nlines", `two\nlines`},
		{"a\\b\"c\nd", `a\\b\"c\nd`},
		{`\"`, `\\\"`},
		{"\\n", `\\n`},
		{"{name}", "{name}"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, EscapeElmString(tc.input))
		})
	}
}

func TestEscapeElmStringRoundTrip(t *testing.T) {
	inputs := []string{
		"a\\b\"c\nd",
		`\"`,
		"\\n",
		"\n\"\\",
		"\"\"\n\n\\\\",
		`C:\path\"quoted"\`,
		"line one\nline \"two\"\n",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			// Elm string literals share these three escapes with Go.
			decoded, err := strconv.Unquote(`"` + EscapeElmString(input) + `"`)
			require.NoError(t, err)
			assert.Equal(t, input, decoded)
		})
	}
}

func TestRenderModule(t *testing.T) {
	cfg := testConfig()
	cfg.Output = "Translations.elm"
	lang, _ := cfg.Language("fr")

	got, err := RenderModule(cfg, lang, translationsOf(
		"hello", "Bonjour",
		"quote", "Il a dit \"oui\"\net puis",
	))
	require.NoError(t, err)

	want := `module Translations exposing (..)

{-| Generated translation file for fr
-}


{-| List of all supported languages. Default language is en.
-}
type Language
    = en
    | fr


{-| The language that is currently active.
-}
compiledLanguage : Language
compiledLanguage =
    fr


hello : String
hello =
    "Bonjour"


quote : String
quote =
    "Il a dit \"oui\"\net puis"
`
	assert.Equal(t, want, string(got))
}

func TestRenderModuleSingleLanguage(t *testing.T) {
	cfg := testConfig()
	cfg.TranslatedTo = nil
	cfg.OutputFolder = "out"

	got, err := RenderModule(cfg, cfg.MainLanguage, NewTranslations())
	require.NoError(t, err)

	want := `module Translations.en exposing (..)

{-| Generated translation file for en
-}


{-| List of all supported languages. Default language is en.
-}
type Language
    = en


{-| The language that is currently active.
-}
compiledLanguage : Language
compiledLanguage =
    en
`
	assert.Equal(t, want, string(got))
}

func discardLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestGenerateModulesPerLanguage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "translations/en.json", `{"hello": "Hi", "bye": "Bye"}`)
	writeFile(t, dir, "translations/fr.json", `{"bye": "Salut", "extra": "ignored"}`)

	cfg := testConfig()
	cfg.InputFolder = "translations"
	cfg.OutputFolder = "src/Translations"
	cfg.baseDir = dir

	// The dev language does not narrow per-language output.
	dev := cfg.TranslatedTo[0]

	var stderr bytes.Buffer
	require.NoError(t, generateModules(cfg, dev, discardLogger(), &stderr))

	en, err := os.ReadFile(filepath.Join(dir, "src/Translations/en.elm"))
	require.NoError(t, err)
	assert.Contains(t, string(en), "module Translations.en exposing (..)")
	assert.Contains(t, string(en), "hello : String\nhello =\n    \"Hi\"")
	assert.Contains(t, string(en), "bye : String\nbye =\n    \"Bye\"")

	fr, err := os.ReadFile(filepath.Join(dir, "src/Translations/fr.elm"))
	require.NoError(t, err)
	assert.Contains(t, string(fr), "compiledLanguage =\n    fr")
	assert.Contains(t, string(fr), "hello : String\nhello =\n    \"Hi\"")
	assert.Contains(t, string(fr), "bye : String\nbye =\n    \"Salut\"")
	assert.NotContains(t, string(fr), "extra")

	assert.Contains(t, stderr.String(), "for fr (2 keys)")
}

func TestGenerateModulesSingleOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "translations/en.json", `{"hello": "Hi"}`)
	writeFile(t, dir, "translations/fr.json", `{}`)

	cfg := testConfig()
	cfg.InputFolder = "translations"
	cfg.Output = "src/Translations.elm"
	cfg.baseDir = dir

	require.NoError(t, generateModules(cfg, cfg.TranslatedTo[0], discardLogger(), io.Discard))

	got, err := os.ReadFile(filepath.Join(dir, "src/Translations.elm"))
	require.NoError(t, err)
	assert.Contains(t, string(got), "module Translations exposing (..)")
	assert.Contains(t, string(got), "compiledLanguage =\n    fr")
	assert.Contains(t, string(got), "hello : String\nhello =\n    \"Hi\"")

	_, err = os.Stat(filepath.Join(dir, "src/en.elm"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateModulesMissingInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "translations/en.json", `{"hello": "Hi"}`)

	cfg := testConfig()
	cfg.InputFolder = "translations"
	cfg.OutputFolder = "out"
	cfg.baseDir = dir

	err := generateModules(cfg, cfg.MainLanguage, discardLogger(), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fr.json")

	// Modules written before the failure stay in place.
	_, err = os.Stat(filepath.Join(dir, "out", "en.elm"))
	assert.NoError(t, err)
}
