package cliio

import (
	"bytes"
	"strings"
	"testing"
)

func TestStreamsWiring(t *testing.T) {
	in := strings.NewReader("input")
	var out, errw bytes.Buffer
	s := New().WithIn(in).WithOut(&out).WithErr(&errw)

	if s.In() != in || s.Out() != &out || s.Err() != &errw {
		t.Error("stream wiring lost")
	}
}

func TestBufferIsNotTTY(t *testing.T) {
	s := New().WithOut(&bytes.Buffer{})
	if s.IsTTY() {
		t.Error("buffer reported as terminal")
	}
	if w := s.Width(); w != 80 {
		t.Errorf("non-terminal width = %d, want 80 fallback", w)
	}
}

func TestColorOverrides(t *testing.T) {
	s := New().WithOut(&bytes.Buffer{})

	if s.NoColor().SupportsColor() {
		t.Error("NoColor did not disable color")
	}
	if !s.ForceColor().SupportsColor() {
		t.Error("ForceColor did not enable color")
	}
}
