package argot

// Field is the compiled shape of one result-record slot: the interpreted
// argument, its resolved type, and the eagerly materialized default.
type Field struct {
	Arg      *Argument
	Type     Type
	Required bool

	hasDefault bool
	def        value
}

// HasDefault reports whether the field carries a materialized default.
func (f *Field) HasDefault() bool { return f.hasDefault }

// Schema is a compiled, immutable argument set. It is the single source the
// parser, the help renderer, and the completion generator all read from.
type Schema struct {
	args   []*Argument
	fields []*Field
}

// Compile interprets an ordered descriptor list and derives the typed
// result-record field set. All authoring mistakes surface here as
// SchemaErrors, before any input is read: malformed descriptors, invalid
// names, name collisions, type/default conflicts, and variadic placement.
func Compile(descs []Descriptor) (*Schema, error) {
	s := &Schema{
		args:   make([]*Argument, 0, len(descs)),
		fields: make([]*Field, 0, len(descs)),
	}

	names := make(map[string]bool, len(descs))
	shorts := make(map[byte]bool)
	variadicSeen := false

	for _, d := range descs {
		a, err := Interpret(d)
		if err != nil {
			return nil, err
		}

		if variadicSeen {
			return nil, newSchemaError(SchemaErrorInvalidVariadic, d.Arg,
				"a variadic positional must be the last argument in the schema")
		}
		if a.variadic {
			variadicSeen = true
		}

		f, err := compileField(a)
		if err != nil {
			return nil, err
		}

		if names[a.name] {
			return nil, newSchemaError(SchemaErrorDuplicateName, d.Arg,
				"argument name %q is already declared", a.name)
		}
		names[a.name] = true
		if a.short != 0 {
			if shorts[a.short] {
				return nil, newSchemaError(SchemaErrorDuplicateName, d.Arg,
					"short flag -%c is already declared", a.short)
			}
			shorts[a.short] = true
		}

		s.args = append(s.args, a)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustCompile is Compile for schemas known-good at program start; it panics
// on authoring mistakes the way regexp.MustCompile does.
func MustCompile(descs []Descriptor) *Schema {
	s, err := Compile(descs)
	if err != nil {
		panic("argot: " + err.Error())
	}
	return s
}

func compileField(a *Argument) (*Field, error) {
	d := a.Descriptor

	if d.Required && d.Default != "" {
		return nil, newSchemaError(SchemaErrorInvalidDefault, d.Arg,
			"required and default are mutually exclusive")
	}

	// Boolean flags are typed bool with an implicit false default; declaring
	// a value type or a textual default for one is an authoring mistake.
	if a.isFlag && !a.takesValue {
		if k := d.Type.Kind(); k != KindString && k != KindBool {
			return nil, newSchemaError(SchemaErrorIncompatibleTypes, d.Arg,
				"boolean flag cannot declare value type %s", d.Type.Name())
		}
		if d.Default != "" {
			return nil, newSchemaError(SchemaErrorInvalidDefault, d.Arg,
				"boolean flags take no default; absence means false")
		}
		f := &Field{Arg: a, Type: Bool, Required: d.Required}
		if !d.Required {
			f.hasDefault = true
			f.def = value{b: false}
		}
		return f, nil
	}

	typ := d.Type.normalized()
	if typ.Kind() == KindCustom && typ.parse == nil {
		return nil, newSchemaError(SchemaErrorIncompatibleTypes, d.Arg,
			"type %s has no from-string initializer", typ.Name())
	}

	f := &Field{Arg: a, Type: typ, Required: d.Required}
	if d.Default != "" {
		// Defaults are parsed eagerly: a default the declared type cannot
		// represent is the author's mistake, not a runtime condition.
		v, err := typ.convert(d.Default)
		if err != nil {
			return nil, newSchemaError(SchemaErrorInvalidDefault, d.Arg,
				"default %q: %v", d.Default, err)
		}
		if a.variadic {
			v = value{items: []value{v}, str: d.Default}
		}
		f.hasDefault = true
		f.def = v
	}
	return f, nil
}

// Args returns the compiled arguments in declaration order.
func (s *Schema) Args() []*Argument { return s.args }

// Fields returns the compiled field specs in declaration order.
func (s *Schema) Fields() []*Field { return s.fields }

// Field returns the field spec for a canonical argument name.
func (s *Schema) Field(name string) *Field {
	for _, f := range s.fields {
		if f.Arg.name == name {
			return f
		}
	}
	return nil
}
