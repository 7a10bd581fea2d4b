package argot

import "strings"

// Descriptor is the author-facing declarative spec for one argument. Arg
// carries the descriptor mini-language:
//
//	"file"                a positional named file
//	"paths..."            a variadic positional
//	"-v"                  a boolean short flag
//	"--verbose"           a boolean long flag
//	"-n/--limit value"    a value-accepting flag with short and long forms
//
// The trailing placeholder word ("value" above) marks the flag as
// value-accepting; the word itself is cosmetic and only shown in help.
// Required and Default are mutually exclusive. Descriptors are immutable
// once handed to Compile.
type Descriptor struct {
	Arg         string
	Help        string
	DisplayName string // overrides the rendered name in help output
	Type        Type   // zero value parses as string
	Default     string // string-encoded default, materialized at compile time
	Required    bool
	Hidden      bool   // excluded from help and completion output
	Completion  string // shell completion action hint
}

type flagForm uint8

const (
	formShort flagForm = iota
	formLong
	formShortAndLong
)

// Argument is the interpreted form of a descriptor: a canonical name plus
// either a flag variant (short/long/both, boolean or value-accepting) or a
// positional variant (optionally variadic).
type Argument struct {
	Descriptor Descriptor

	name       string
	isFlag     bool
	form       flagForm
	short      byte   // 0 when the flag has no short form
	long       string // "" when the flag has no long form
	takesValue bool
	valueName  string // placeholder word, for help rendering
	variadic   bool
}

// Name returns the canonical argument name: the long name when present,
// otherwise the short name or the positional name.
func (a *Argument) Name() string { return a.name }

// IsFlag reports whether the argument is a dash-prefixed flag.
func (a *Argument) IsFlag() bool { return a.isFlag }

// TakesValue reports whether the flag consumes a following value token.
func (a *Argument) TakesValue() bool { return a.isFlag && a.takesValue }

// Variadic reports whether the positional collects all remaining values.
func (a *Argument) Variadic() bool { return a.variadic }

// Interpret parses a descriptor's raw spec into an Argument. Structural
// problems (empty spec, wrong dash count, stray placeholder) yield
// MalformedDescriptor; character-set violations yield InvalidArgName.
func Interpret(d Descriptor) (*Argument, error) {
	spec := strings.TrimSpace(d.Arg)
	if spec == "" {
		return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg, "empty descriptor")
	}

	head, rest, hasRest := strings.Cut(spec, " ")
	placeholder := strings.TrimSpace(rest)

	if strings.HasPrefix(head, "-") {
		return interpretFlag(d, head, placeholder, hasRest)
	}
	return interpretPositional(d, head, placeholder)
}

func interpretFlag(d Descriptor, head, placeholder string, hasPlaceholder bool) (*Argument, error) {
	a := &Argument{
		Descriptor: d,
		isFlag:     true,
		takesValue: hasPlaceholder && placeholder != "",
		valueName:  placeholder,
	}
	if a.takesValue && a.valueName == "" {
		a.valueName = "value"
	}

	if strings.Contains(head, "/") {
		if strings.Count(head, "/") != 1 {
			return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg,
				"at most one '/' may separate short and long forms")
		}
		shortPart, longPart, _ := strings.Cut(head, "/")
		if len(shortPart) != 2 || shortPart[0] != '-' || shortPart[1] == '-' {
			return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg,
				"short form must be a dash followed by a single character")
		}
		if !strings.HasPrefix(longPart, "--") || strings.HasPrefix(longPart, "---") || len(longPart) == 2 {
			return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg,
				"long form must have exactly two dashes")
		}
		if !isFlagName(longPart[2:]) || !isFlagName(shortPart[1:]) {
			return nil, newSchemaError(SchemaErrorInvalidArgName, d.Arg,
				"flag names may contain only letters, digits, '-' and '_'")
		}
		a.form = formShortAndLong
		a.short = shortPart[1]
		a.long = longPart[2:]
		a.name = a.long
		return a, nil
	}

	if strings.HasPrefix(head, "--") {
		name := head[2:]
		if name == "" || strings.HasPrefix(name, "-") {
			return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg,
				"long form must have exactly two dashes")
		}
		if !isFlagName(name) {
			return nil, newSchemaError(SchemaErrorInvalidArgName, d.Arg,
				"flag names may contain only letters, digits, '-' and '_'")
		}
		a.form = formLong
		a.long = name
		a.name = name
		return a, nil
	}

	if len(head) != 2 {
		return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg,
			"short form must be a dash followed by a single character")
	}
	if !isFlagName(head[1:]) {
		return nil, newSchemaError(SchemaErrorInvalidArgName, d.Arg,
			"flag names may contain only letters, digits, '-' and '_'")
	}
	a.form = formShort
	a.short = head[1]
	a.name = head[1:]
	return a, nil
}

func interpretPositional(d Descriptor, head, placeholder string) (*Argument, error) {
	if placeholder != "" {
		return nil, newSchemaError(SchemaErrorMalformedDescriptor, d.Arg,
			"positional descriptors take no placeholder word")
	}
	a := &Argument{Descriptor: d}
	name := head
	if strings.HasSuffix(name, "...") {
		a.variadic = true
		name = strings.TrimSuffix(name, "...")
	}
	if name == "" || !isPositionalName(name) {
		return nil, newSchemaError(SchemaErrorInvalidArgName, d.Arg,
			"positional names may contain only letters, digits and '_'")
	}
	a.name = name
	return a, nil
}

// isFlagName validates the flag-name character set (alnum, '-', '_').
func isFlagName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameChar(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

// isPositionalName validates the positional character set (alnum, '_').
func isPositionalName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return false
		}
	}
	return true
}

func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		return true
	}
	return false
}
