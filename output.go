package main

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/xerrors"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) error {
	if format != formatText && format != formatJSON {
		return xerrors.Errorf("unknown format %q: expected %s or %s", format, formatText, formatJSON)
	}
	return nil
}

// outputStrings prints a list of strings in text or JSON format.
func outputStrings(w io.Writer, items []string, format string) error {
	if format == formatJSON {
		return outputJSON(w, items)
	}

	for _, item := range items {
		fmt.Fprintln(w, item)
	}
	return nil
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
