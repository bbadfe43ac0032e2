package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const moduleSource = `module {{ .ModuleName }} exposing (..)

{-| Generated translation file for {{ .Language.Name }}
-}


{-| List of all supported languages. Default language is {{ first .Languages }}.
-}
type Language
    = {{ first .Languages }}
{{- range rest .Languages }}
    | {{ . }}
{{- end }}


{-| The language that is currently active.
-}
compiledLanguage : Language
compiledLanguage =
    {{ .Language.Name }}
{{- range .Entries }}


{{ .Key }} : String
{{ .Key }} =
    "{{ elmString .Value }}"
{{- end }}
`

var moduleTemplate = template.Must(template.New("module").
	Funcs(sprig.TxtFuncMap()).
	Funcs(template.FuncMap{"elmString": EscapeElmString}).
	Parse(moduleSource))

type moduleEntry struct {
	Key   string
	Value string
}

type moduleData struct {
	ModuleName string
	Language   Language
	Languages  []string
	Entries    []moduleEntry
}

// EscapeElmString escapes s for use inside a double-quoted Elm string
// literal. Backslashes must be escaped first so that the escapes added for
// quotes and newlines are not escaped again.
func EscapeElmString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// RenderModule returns the Elm module for lang: the Language type listing
// every configured language, the compiledLanguage constant and one String
// constant per translation, in map order.
func RenderModule(cfg *Config, lang Language, translations *Translations) ([]byte, error) {
	data := moduleData{
		ModuleName: cfg.ModuleNameFor(lang),
		Language:   lang,
		Languages:  cfg.LanguageNames(),
		Entries:    make([]moduleEntry, 0, translations.Len()),
	}
	for pair := translations.Oldest(); pair != nil; pair = pair.Next() {
		data.Entries = append(data.Entries, moduleEntry{Key: pair.Key, Value: pair.Value})
	}

	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, data); err != nil {
		return nil, xerrors.Errorf("rendering module for %s: %w", lang.Name, err)
	}
	return buf.Bytes(), nil
}

// WriteModule writes content to path, creating parent directories.
func WriteModule(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapError(err)
	}
	return wrapError(os.WriteFile(path, content, 0o644))
}

// generateModules regenerates the output: every language when the config
// names an output folder, otherwise the dev language only. Modules written
// before a failure are left in place.
func generateModules(cfg *Config, dev Language, log *logrus.Entry, stderr io.Writer) error {
	targets := cfg.Languages()
	if !cfg.PerLanguageOutput() {
		targets = []Language{dev}
	}

	defaults, err := LoadTranslations(cfg.InputPath(cfg.MainLanguage))
	if err != nil {
		return err
	}

	for _, lang := range targets {
		translated := defaults
		if lang.Name != cfg.MainLanguage.Name {
			if translated, err = LoadTranslations(cfg.InputPath(lang)); err != nil {
				return err
			}
		}

		merged := Merge(defaults, translated)
		content, err := RenderModule(cfg, lang, merged)
		if err != nil {
			return err
		}

		path := cfg.OutputPath(lang)
		if err := WriteModule(path, content); err != nil {
			return xerrors.Errorf("writing %s: %w", path, err)
		}
		log.WithField("language", lang.Name).Debugf("wrote %d keys to %s", merged.Len(), path)
		fmt.Fprintf(stderr, "Generated %s for %s (%d keys)\n", path, lang.Name, merged.Len())
	}
	return nil
}
