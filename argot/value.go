package argot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the closed set of built-in value kinds.
type Kind string

const (
	KindString   Kind = "string"
	KindInt      Kind = "int"
	KindUint     Kind = "uint"
	KindFloat    Kind = "float64"
	KindBool     Kind = "bool"
	KindDuration Kind = "duration"
	KindEnum     Kind = "enum"
	KindCustom   Kind = "custom"
)

// Type is the semantic type a token string is parsed into. The zero value
// is String. Beyond the built-in kinds, Custom wraps any type that can be
// initialized from a single string.
type Type struct {
	kind   Kind
	name   string   // display name for custom types
	values []string // valid value set for enums
	parse  func(string) (any, error)
}

// Built-in value types.
var (
	String   = Type{kind: KindString}
	Int      = Type{kind: KindInt}
	Uint     = Type{kind: KindUint}
	Float    = Type{kind: KindFloat}
	Bool     = Type{kind: KindBool}
	Duration = Type{kind: KindDuration}
)

// Enum declares a string type restricted to the given value set.
func Enum(values ...string) Type {
	return Type{kind: KindEnum, values: values}
}

// Custom declares a user type initialized from a string. The parse function
// is the single extension point; compilation fails with IncompatibleTypes
// when it is nil.
func Custom(name string, parse func(string) (any, error)) Type {
	return Type{kind: KindCustom, name: name, parse: parse}
}

// Kind returns the type's kind. The zero Type reports KindString.
func (t Type) Kind() Kind {
	if t.kind == "" {
		return KindString
	}
	return t.kind
}

// Name returns a human-readable type name for diagnostics.
func (t Type) Name() string {
	switch t.Kind() {
	case KindEnum:
		return "enum(" + strings.Join(t.values, "|") + ")"
	case KindCustom:
		if t.name != "" {
			return t.name
		}
		return string(KindCustom)
	default:
		return string(t.Kind())
	}
}

// normalized resolves the zero value to String so the rest of the compiler
// can switch on kind without a special case.
func (t Type) normalized() Type {
	if t.kind == "" {
		t.kind = KindString
	}
	return t
}

// value is the typed storage slot for one bound argument. Only the field
// matching the declaring type's kind is meaningful; items carries the
// collected values of a variadic positional in arrival order.
type value struct {
	str   string
	i     int64
	u     uint64
	f     float64
	b     bool
	d     time.Duration
	any   any
	items []value
}

// convert parses s into a typed value. Errors are plain; callers wrap them
// into a ParseError (runtime) or SchemaError (compile time) as appropriate.
func (t Type) convert(s string) (value, error) {
	switch t.Kind() {
	case KindString:
		return value{str: s}, nil
	case KindInt:
		// Base 0 accepts decimal, hex (0x), octal (0o) and binary (0b).
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return value{}, fmt.Errorf("%q is not a valid integer", s)
		}
		return value{i: n}, nil
	case KindUint:
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return value{}, fmt.Errorf("%q is not a valid unsigned integer", s)
		}
		return value{u: n}, nil
	case KindFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value{}, fmt.Errorf("%q is not a valid float", s)
		}
		return value{f: f}, nil
	case KindBool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return value{}, fmt.Errorf("%q is not a valid boolean", s)
		}
		return value{b: b}, nil
	case KindDuration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return value{}, fmt.Errorf("%q is not a valid duration", s)
		}
		return value{d: d}, nil
	case KindEnum:
		for _, v := range t.values {
			if v == s {
				return value{str: s}, nil
			}
		}
		return value{}, fmt.Errorf("%q is not one of: %s", s, strings.Join(t.values, ", "))
	case KindCustom:
		if t.parse == nil {
			return value{}, fmt.Errorf("type %s has no from-string initializer", t.Name())
		}
		v, err := t.parse(s)
		if err != nil {
			return value{}, err
		}
		return value{any: v}, nil
	default:
		return value{}, fmt.Errorf("unsupported value kind %q", t.kind)
	}
}
