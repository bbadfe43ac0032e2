package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// platform stores the host shell used to run script commands.
type platform struct {
	os       string
	shell    string
	shellArg string
}

func getPlatform() *platform {
	if runtime.GOOS == "windows" {
		return &platform{os: "windows", shell: "cmd", shellArg: "/c"}
	}
	return &platform{os: runtime.GOOS, shell: "sh", shellArg: "-c"}
}

// scriptRunner runs the named scripts of the configuration once per
// language.
type scriptRunner struct {
	log      *logrus.Entry
	platform *platform
	stdout   io.Writer
	stderr   io.Writer
	command  func(string, ...string) *exec.Cmd
}

func newScriptRunner(log *logrus.Entry, stdout, stderr io.Writer) *scriptRunner {
	return &scriptRunner{
		log:      log,
		platform: getPlatform(),
		stdout:   stdout,
		stderr:   stderr,
		command:  exec.Command,
	}
}

// setCommand replaces the command constructor. Used by tests.
func (r *scriptRunner) setCommand(cmd func(string, ...string) *exec.Cmd) {
	r.command = cmd
}

// ExpandCommand substitutes {name}, {filename} and {locale} in a command
// template. Substituted values are inserted literally and never expanded
// again.
func ExpandCommand(template string, lang Language) string {
	return strings.NewReplacer(
		"{name}", lang.Name,
		"{filename}", lang.Filename,
		"{locale}", lang.Locale,
	).Replace(template)
}

// RunScript runs every command of the named script for every configured
// language, main language first. A command that fails is reported and the
// run goes on.
func (r *scriptRunner) RunScript(cfg *Config, name string) error {
	script, err := cfg.Script(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.stdout, "Running script %q from configuration for all languages.\n", name)
	for _, lang := range cfg.Languages() {
		fmt.Fprintf(r.stdout, "Running %q for %s.\n", name, lang.Name)
		for _, tmpl := range script {
			command := ExpandCommand(tmpl, lang)
			fmt.Fprintf(r.stdout, "> %s\n", color.CyanString(command))
			if err := r.runShell(command); err != nil {
				r.log.WithFields(logrus.Fields{
					"language": lang.Name,
					"command":  command,
				}).Warnf("command failed: %v", err)
			}
		}
	}
	return nil
}

func (r *scriptRunner) runShell(command string) error {
	cmd := r.command(r.platform.shell, r.platform.shellArg, command)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.log.Debugf("%s %s %s", r.platform.shell, r.platform.shellArg, command)
	return wrapError(cmd.Run())
}
