package main

import (
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"
)

// settings are the process-level knobs that live outside pytrans.json.
// Each field is read from PYTRANS_<NAME> only.
type settings struct {
	Config   string
	Marker   string
	Debug    bool
	LogLevel string `split_words:"true"`
}

// loadSettings reads settings from the environment, after seeding it from a
// .env file in the working directory when one exists.
func loadSettings() (*settings, error) {
	if err := godotenv.Load(); err != nil && !xerrors.Is(err, fs.ErrNotExist) {
		return nil, xerrors.Errorf("loading .env: %w", err)
	}

	var s settings
	if err := envconfig.Process("pytrans", &s); err != nil {
		return nil, xerrors.Errorf("reading environment: %w", err)
	}
	return &s, nil
}
