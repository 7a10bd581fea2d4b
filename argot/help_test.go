package argot

import (
	"strings"
	"testing"
)

func renderHelp(t *testing.T, s *Schema, opts HelpOptions) string {
	t.Helper()
	var b strings.Builder
	if err := s.WriteHelp(&b, opts); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestHelpUsageLine(t *testing.T) {
	out := renderHelp(t, mixedSchema(t), HelpOptions{Name: "demo"})
	if !strings.Contains(out, "Usage: demo [options] <item> [other]") {
		t.Errorf("usage line missing or wrong:\n%s", out)
	}
}

func TestHelpListsArgumentsInDeclarationOrder(t *testing.T) {
	out := renderHelp(t, mixedSchema(t), HelpOptions{Name: "demo"})

	cells := []string{"<item>", "-n/--limit value", "-f/--flag", "[other]"}
	last := -1
	for _, cell := range cells {
		idx := strings.Index(out, cell)
		if idx < 0 {
			t.Errorf("help does not contain %q:\n%s", cell, out)
			continue
		}
		if idx < last {
			t.Errorf("%q appears out of declaration order", cell)
		}
		last = idx
	}
}

func TestHelpDefaultSuffix(t *testing.T) {
	out := renderHelp(t, mixedSchema(t), HelpOptions{Name: "demo"})
	if !strings.Contains(out, "max results. (default: 10).") {
		t.Errorf("default suffix missing:\n%s", out)
	}
}

func TestHelpHiddenExcluded(t *testing.T) {
	s := MustCompile([]Descriptor{
		{Arg: "--visible", Help: "shown"},
		{Arg: "--secret", Help: "not shown", Hidden: true},
	})
	out := renderHelp(t, s, HelpOptions{Name: "demo"})
	if strings.Contains(out, "secret") {
		t.Errorf("hidden argument rendered:\n%s", out)
	}
	if !strings.Contains(out, "--visible") {
		t.Errorf("visible argument missing:\n%s", out)
	}
}

func TestHelpDisplayNameOverride(t *testing.T) {
	s := MustCompile([]Descriptor{
		{Arg: "--level value", DisplayName: "--level debug|info|warn", Help: "log level"},
	})
	out := renderHelp(t, s, HelpOptions{Name: "demo"})
	if !strings.Contains(out, "--level debug|info|warn") {
		t.Errorf("display name override not used:\n%s", out)
	}
}

func TestHelpVariadicBrackets(t *testing.T) {
	s := MustCompile([]Descriptor{
		{Arg: "paths...", Help: "inputs", Required: true},
	})
	out := renderHelp(t, s, HelpOptions{Name: "demo"})
	if !strings.Contains(out, "<paths...>") {
		t.Errorf("required variadic not bracketed:\n%s", out)
	}
}

func TestHelpWrapsLongText(t *testing.T) {
	s := MustCompile([]Descriptor{
		{Arg: "-o/--output value", Help: strings.Repeat("word ", 30)},
	})
	out := renderHelp(t, s, HelpOptions{Name: "demo", Width: 60})
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 60 {
			t.Errorf("line exceeds width: %q", line)
		}
	}
}

func TestCommandSetHelp(t *testing.T) {
	cs := commandSet(t)
	var b strings.Builder
	if err := cs.WriteHelp(&b, HelpOptions{}); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, "Usage: tool [options] <command> [arguments]") {
		t.Errorf("usage line:\n%s", out)
	}
	for _, want := range []string{"Commands:", "build", "clean", "<file>", "Shared arguments:", "-i/--interactive"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestCommandHelpIncludesShared(t *testing.T) {
	cs := commandSet(t)
	var b strings.Builder
	if err := cs.WriteCommandHelp(&b, cs.Commands()[0], HelpOptions{}); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, "Usage: tool build [options] <target>") {
		t.Errorf("usage line:\n%s", out)
	}
	if !strings.Contains(out, "-r/--release") {
		t.Errorf("command flag missing:\n%s", out)
	}
	if !strings.Contains(out, "Shared arguments:") {
		t.Errorf("shared section missing:\n%s", out)
	}
}
