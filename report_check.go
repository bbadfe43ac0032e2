package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

// languageReport lists the keys of one translated language that differ
// from the main language.
type languageReport struct {
	Language string   `json:"language"`
	Missing  []string `json:"missing"`
	Stale    []string `json:"stale"`
}

// checkTranslations compares every translated language with the main
// language. Missing keys are backfilled at generation time and stale keys
// are dropped, so neither is an error there; this is the report for them.
func checkTranslations(cfg *Config) ([]languageReport, error) {
	defaults, err := LoadTranslations(cfg.InputPath(cfg.MainLanguage))
	if err != nil {
		return nil, err
	}

	reports := make([]languageReport, 0, len(cfg.TranslatedTo))
	for _, lang := range cfg.TranslatedTo {
		translated, err := LoadTranslations(cfg.InputPath(lang))
		if err != nil {
			return nil, err
		}
		reports = append(reports, languageReport{
			Language: lang.Name,
			Missing:  missingKeys(defaults, translated),
			Stale:    missingKeys(translated, defaults),
		})
	}
	return reports, nil
}

// missingKeys returns the keys of want that have no entry in have, in the
// order of want.
func missingKeys(want, have *Translations) []string {
	return lo.Filter(translationKeys(want), func(key string, _ int) bool {
		_, found := have.Get(key)
		return !found
	})
}

// reportCheck prints the reports and returns ErrChecksFailed when any
// language has missing or stale keys.
func reportCheck(w io.Writer, reports []languageReport, format string) error {
	passed := lo.EveryBy(reports, func(r languageReport) bool {
		return len(r.Missing) == 0 && len(r.Stale) == 0
	})

	if format == formatJSON {
		if err := outputJSON(w, reports); err != nil {
			return err
		}
	} else {
		printResult := func(label string, keys []string) {
			status := color.GreenString("OK")
			if len(keys) > 0 {
				status = color.RedString("FAIL")
			}
			fmt.Fprintf(w, "  %-30s %3d  %s\n", label+":", len(keys), status)
			for _, key := range keys {
				fmt.Fprintf(w, "    %s\n", key)
			}
		}

		for _, r := range reports {
			printResult("keys missing from "+r.Language, r.Missing)
			printResult("stale keys in "+r.Language, r.Stale)
		}
		if passed {
			fmt.Fprintln(w, "All checks passed.")
		}
	}

	if !passed {
		return ErrChecksFailed
	}
	return nil
}
