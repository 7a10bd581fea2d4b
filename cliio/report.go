package cliio

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/argot-cli/argot/argot"
)

// osExit is a seam for tests.
var osExit = os.Exit

// Exit codes: authoring mistakes are programmer errors and exit 2, bad
// input is a user error and exits 1.
const (
	ExitUsage  = 1
	ExitSchema = 2
)

// Reporter renders parser errors to the error stream and maps them to
// exit codes. The exit function is injectable so tests can intercept it.
type Reporter struct {
	streams *Streams
	exit    func(int)
}

// NewReporter creates a reporter writing to the given streams.
func NewReporter(s *Streams) *Reporter {
	return &Reporter{streams: s, exit: nil}
}

// WithExit sets the function called by Fatal and returns the reporter
// for chaining. The default is os.Exit via the process.
func (r *Reporter) WithExit(exit func(int)) *Reporter {
	r.exit = exit
	return r
}

// Report writes a styled error line, plus a suggestion line when the
// error carries one, and returns the matching exit code.
func (r *Reporter) Report(err error) int {
	label := r.streams.sprintFunc(color.FgRed, color.Bold)
	hint := r.streams.sprintFunc(color.Faint)

	var perr *argot.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(r.streams.Err(), "%s %s\n", label("Error:"), perr.Message)
		if perr.Suggestion != "" {
			fmt.Fprintf(r.streams.Err(), "%s\n", hint("Did you mean '"+perr.Suggestion+"'?"))
		}
		return ExitUsage
	}

	var serr *argot.SchemaError
	if errors.As(err, &serr) {
		fmt.Fprintf(r.streams.Err(), "%s %s\n", label("Error:"), serr.Error())
		return ExitSchema
	}

	fmt.Fprintf(r.streams.Err(), "%s %v\n", label("Error:"), err)
	return ExitUsage
}

// Fatal reports the error and terminates through the configured exit
// function.
func (r *Reporter) Fatal(err error) {
	code := r.Report(err)
	if r.exit != nil {
		r.exit(code)
		return
	}
	osExit(code)
}
