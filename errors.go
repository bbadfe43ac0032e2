package main

import (
	"fmt"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	// ErrUnknownScript is returned by --run for a script name the
	// configuration does not define.
	ErrUnknownScript = xerrors.New("unknown script")

	// ErrChecksFailed is returned by --check when any language has missing
	// or stale keys.
	ErrChecksFailed = xerrors.New("checks failed")
)

// UnknownLanguageError reports a marker file naming a language that is not
// in the configuration.
type UnknownLanguageError struct {
	Name   string
	Marker string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("language %q from %s not supported. Use --list to get all languages", e.Name, e.Marker)
}

// InvalidChoiceError reports a language argument outside the configured set.
type InvalidChoiceError struct {
	Value   string
	Choices []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid choice: %q (choose from %s)", e.Value, strings.Join(e.Choices, ", "))
}

// wrapError attaches a stack trace to err. go-errors returns a non-nil
// wrapper for a nil error, so nil is passed through here.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, 1)
}

// logErrorStack logs the stack trace recorded by wrapError, if any, at debug
// level.
func logErrorStack(log *logrus.Entry, err error) {
	var stackErr *goerrors.Error
	if xerrors.As(err, &stackErr) {
		log.Debug(stackErr.ErrorStack())
	}
}
