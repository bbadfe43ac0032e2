// pytrans turns JSON translation files into generated Elm modules.
//
// Usage:
//
//	pytrans [--list | --status | --run <script> | --check] [language]
//
// Without a mode flag it regenerates the output for the dev language. Passing
// a language makes it the dev language; the choice is kept in .pytrans next
// to pytrans.json.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func main() {
	if err := runCLI(os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(stdout, stderr io.Writer, args []string) error {
	app := newApp(stdout, stderr)
	return app.Run(flagsFirst(app, args))
}

// flagsFirst moves positional arguments behind the flags so that
// "pytrans fr --status" parses like "pytrans --status fr". urfave/cli stops
// reading flags at the first positional argument.
func flagsFirst(app *cli.App, args []string) []string {
	if len(args) == 0 {
		return args
	}

	takesValue := make(map[string]bool)
	for _, f := range app.Flags {
		if _, ok := f.(*cli.StringFlag); ok {
			for _, name := range f.Names() {
				takesValue[name] = true
			}
		}
	}

	flags := []string{args[0]}
	var positional []string
	terminated := false
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			terminated = true
			i = len(args)
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			flags = append(flags, arg)
			name := strings.TrimLeft(arg, "-")
			if !strings.Contains(name, "=") && takesValue[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	if terminated {
		flags = append(flags, "--")
	}
	return append(flags, positional...)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "pytrans",
		Usage: "Processes json translation files into elm files",
		Description: `If you run this without arguments, it rebuilds using the dev language.
The dev language is stored in a file called .pytrans and configuration
happens in the pytrans.json file.`,
		ArgsUsage:       "[language]",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "list",
				Usage: "Shows a list of available languages.",
			},
			&cli.BoolFlag{
				Name:  "status",
				Usage: "Shows active dev language.",
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "Runs `SCRIPT` from the config for all languages.",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Reports keys missing from or stale in the translated languages.",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: formatText,
				Usage: "Output format for --list and --check: text, json",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to pytrans.json (searched from the working directory upwards by default)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log debug output to stderr",
			},
		},
		Action: func(cctx *cli.Context) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			if cctx.IsSet("config") {
				s.Config = cctx.String("config")
			}
			if cctx.Bool("debug") {
				s.Debug = true
			}

			log := newLogger(s, stderr)
			if err := dispatch(cctx, s, log, stdout, stderr); err != nil {
				logErrorStack(log, err)
				return err
			}
			return nil
		},
	}
}

// dispatch runs the selected mode. Modes are checked in priority order:
// --list, --status, --run, --check, then regeneration.
func dispatch(cctx *cli.Context, s *settings, log *logrus.Entry, stdout, stderr io.Writer) error {
	if cctx.NArg() > 1 {
		return xerrors.Errorf("unexpected arguments %s: only one language can be given", strings.Join(cctx.Args().Tail(), " "))
	}
	format := cctx.String("format")
	if err := validateFormat(format); err != nil {
		return err
	}

	configPath := s.Config
	if configPath == "" {
		var err error
		if configPath, err = findConfig("."); err != nil {
			return err
		}
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	marker := markerPath(configPath, s.Marker)
	log.WithFields(logrus.Fields{
		"config": configPath,
		"marker": marker,
	}).Debug("loaded configuration")

	// The marker is checked in every mode, and a language argument becomes
	// the dev language whatever the mode.
	dev, err := ResolveDevLanguage(cfg, marker, cctx.Args().First())
	if err != nil {
		return err
	}

	switch {
	case cctx.Bool("list"):
		return outputStrings(stdout, cfg.LanguageNames(), format)

	case cctx.Bool("status"):
		fmt.Fprintf(stdout, "Currently selected: %s\n", dev.Name)
		return nil

	case cctx.IsSet("run"):
		return newScriptRunner(log, stdout, stderr).RunScript(cfg, cctx.String("run"))

	case cctx.Bool("check"):
		reports, err := checkTranslations(cfg)
		if err != nil {
			return err
		}
		return reportCheck(stdout, reports, format)

	default:
		return generateModules(cfg, dev, log, stderr)
	}
}
