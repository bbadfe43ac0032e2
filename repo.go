package main

import (
	"os"
	"path/filepath"

	"golang.org/x/xerrors"
)

const markerFilename = ".pytrans"

// configFilenames are tried in order in every directory that is searched.
var configFilenames = []string{"pytrans.json", "pytrans.yaml", "pytrans.yml"}

// findConfig returns the path of the project configuration by walking up
// from dir until a directory containing one of configFilenames is found.
func findConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range configFilenames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", xerrors.Errorf("could not find %s in the working directory or any parent", configFilenames[0])
		}
		dir = parent
	}
}

// markerPath returns the dev-language marker location: next to the
// configuration file unless overridden.
func markerPath(configPath, override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(filepath.Dir(configPath), markerFilename)
}
