// Package cliio centralizes terminal IO for programs built on argot:
// stream wiring, TTY detection, and styled error reporting with the
// exit-code conventions the parser's two error tiers imply.
package cliio

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Streams bundles the three process streams plus color policy, so help
// and error output can be redirected in tests.
type Streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	forceColor bool
	noColor    bool
}

// New returns streams bound to process stdio.
func New() *Streams {
	return &Streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the streams for chaining.
func (s *Streams) WithIn(r io.Reader) *Streams { s.in = r; return s }

// WithOut sets the standard output writer and returns the streams for chaining.
func (s *Streams) WithOut(w io.Writer) *Streams { s.out = w; return s }

// WithErr sets the standard error writer and returns the streams for chaining.
func (s *Streams) WithErr(w io.Writer) *Streams { s.err = w; return s }

// ForceColor turns color output on regardless of environment.
func (s *Streams) ForceColor() *Streams { s.forceColor = true; s.noColor = false; return s }

// NoColor turns color output off regardless of environment.
func (s *Streams) NoColor() *Streams { s.noColor = true; s.forceColor = false; return s }

// In returns the configured input reader.
func (s *Streams) In() io.Reader { return s.in }

// Out returns the configured standard output writer.
func (s *Streams) Out() io.Writer { return s.out }

// Err returns the configured standard error writer.
func (s *Streams) Err() io.Writer { return s.err }

// IsTTY reports whether the output stream is a terminal. Only streams
// still bound to an os.File can be terminals.
func (s *Streams) IsTTY() bool {
	f, ok := s.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsPiped reports whether input arrives from a pipe or redirect.
func (s *Streams) IsPiped() bool {
	f, ok := s.in.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width in columns, or 80 when the output is
// not a terminal or the size cannot be read.
func (s *Streams) Width() int {
	if f, ok := s.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// SupportsColor applies the usual precedence: explicit overrides first,
// then NO_COLOR and FORCE_COLOR, then TTY detection.
func (s *Streams) SupportsColor() bool {
	if s.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if s.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return s.IsTTY()
}

// sprintFunc returns a sprint function for the attributes, honoring the
// stream's color policy.
func (s *Streams) sprintFunc(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if s.SupportsColor() {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
