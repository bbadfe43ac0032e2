package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"github.com/spkg/bom"
	"golang.org/x/text/language"
	"golang.org/x/xerrors"
)

const (
	defaultModuleName = "Translations"
	defaultExtension  = ".elm"
)

// Language identifies one language by name, its input file and locale tag.
type Language struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Locale   string `json:"locale"`
}

// UnmarshalJSON accepts either a plain language name or a descriptor object.
// A missing filename defaults to "<name>.json" and a missing locale to the
// name.
func (l *Language) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*l = Language{Name: name}
	} else {
		type plain Language
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*l = Language(p)
	}

	return mergo.Merge(l, Language{
		Filename: l.Name + ".json",
		Locale:   l.Name,
	})
}

// Config is the project descriptor read from pytrans.json. Paths are
// relative to the directory holding that file.
type Config struct {
	MainLanguage Language            `json:"mainLanguage"`
	TranslatedTo []Language          `json:"translatedTo"`
	InputFolder  string              `json:"inputFolder"`
	Output       string              `json:"output"`
	OutputFolder string              `json:"outputFolder"`
	ModuleName   string              `json:"moduleName"`
	Extension    string              `json:"extension"`
	Scripts      map[string][]string `json:"scripts"`

	baseDir string
}

// LoadConfig reads and validates the descriptor at path. YAML is accepted
// for files named *.yaml or *.yml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapError(err)
	}
	data = bom.Clean(data)

	if isYAMLFile(path) {
		if data, err = yamlToJSON(data); err != nil {
			return nil, xerrors.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := validateConfigSchema(data); err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, xerrors.Errorf("parsing %s: %w", path, err)
	}
	if err := mergo.Merge(&cfg, Config{
		ModuleName: defaultModuleName,
		Extension:  defaultExtension,
	}); err != nil {
		return nil, err
	}
	cfg.baseDir = filepath.Dir(path)

	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// validate reports every semantic problem the schema cannot express.
func (c *Config) validate() error {
	var merr *multierror.Error

	if (c.Output == "") == (c.OutputFolder == "") {
		merr = multierror.Append(merr, xerrors.New("exactly one of output or outputFolder must be set"))
	}

	seen := make(map[string]bool)
	for _, lang := range c.Languages() {
		if seen[lang.Name] {
			merr = multierror.Append(merr, xerrors.Errorf("language %s is configured more than once", lang.Name))
		}
		seen[lang.Name] = true

		// A locale defaulted from the name (e.g. "English") is not a tag.
		if lang.Locale == lang.Name {
			continue
		}
		if _, err := language.Parse(lang.Locale); err != nil {
			merr = multierror.Append(merr, xerrors.Errorf("language %s: invalid locale %q: %w", lang.Name, lang.Locale, err))
		}
	}

	return merr.ErrorOrNil()
}

// Languages returns the main language followed by the translated languages.
func (c *Config) Languages() []Language {
	return append([]Language{c.MainLanguage}, c.TranslatedTo...)
}

// LanguageNames returns the configured names, main language first.
func (c *Config) LanguageNames() []string {
	return lo.Map(c.Languages(), func(lang Language, _ int) string {
		return lang.Name
	})
}

// Language looks up a configured language by name.
func (c *Config) Language(name string) (Language, bool) {
	return lo.Find(c.Languages(), func(lang Language) bool {
		return lang.Name == name
	})
}

// Script returns the command templates of the named script.
func (c *Config) Script(name string) ([]string, error) {
	script, ok := c.Scripts[name]
	if !ok {
		return nil, xerrors.Errorf("script %q: %w", name, ErrUnknownScript)
	}
	return script, nil
}

// PerLanguageOutput reports whether a module is written for every language
// (outputFolder) rather than for the dev language only (output).
func (c *Config) PerLanguageOutput() bool {
	return c.OutputFolder != ""
}

// InputPath returns the translation file of lang.
func (c *Config) InputPath(lang Language) string {
	return c.resolve(filepath.Join(c.InputFolder, lang.Filename))
}

// OutputPath returns where the generated module for lang is written.
func (c *Config) OutputPath(lang Language) string {
	if c.PerLanguageOutput() {
		return c.resolve(filepath.Join(c.OutputFolder, lang.Name+c.Extension))
	}
	return c.resolve(c.Output)
}

// ModuleNameFor returns the Elm module name of the module generated for lang.
func (c *Config) ModuleNameFor(lang Language) string {
	if c.PerLanguageOutput() {
		return c.ModuleName + "." + lang.Name
	}
	return c.ModuleName
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.baseDir == "" {
		return path
	}
	return filepath.Join(c.baseDir, path)
}
