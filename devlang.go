package main

import (
	"os"
	"strings"

	"golang.org/x/xerrors"
)

// ReadMarker returns the language name stored in the marker file. found is
// false when the file does not exist.
func ReadMarker(path string) (name string, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, wrapError(err)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// WriteMarker stores name as the dev language.
func WriteMarker(path, name string) error {
	return wrapError(os.WriteFile(path, []byte(name), 0o644))
}

// ResolveDevLanguage returns the language to build. An explicit language is
// persisted to the marker file and used. Without one, the marker decides,
// and without a marker the main language is used.
func ResolveDevLanguage(cfg *Config, marker, explicit string) (Language, error) {
	if explicit != "" {
		lang, ok := cfg.Language(explicit)
		if !ok {
			return Language{}, &InvalidChoiceError{Value: explicit, Choices: cfg.LanguageNames()}
		}
		if err := WriteMarker(marker, lang.Name); err != nil {
			return Language{}, xerrors.Errorf("writing %s: %w", marker, err)
		}
		return lang, nil
	}

	name, found, err := ReadMarker(marker)
	if err != nil {
		return Language{}, xerrors.Errorf("reading %s: %w", marker, err)
	}
	if !found {
		return cfg.MainLanguage, nil
	}

	lang, ok := cfg.Language(name)
	if !ok {
		return Language{}, &UnknownLanguageError{Name: name, Marker: marker}
	}
	return lang, nil
}
