package argot

// Command is one named branch of a command set, with its own argument
// schema. A Fallback command is the wildcard branch selected when no other
// command name matches; the token that failed to match is fed to a
// synthesized positional named after the command. A completion hint is only
// legal on the fallback, since named commands complete as literal names.
type Command struct {
	Name       string
	Help       string
	Args       []Descriptor
	Fallback   bool
	Completion string

	schema *Schema
}

// Schema returns the command's compiled argument schema.
func (c *Command) Schema() *Schema { return c.schema }

// CommandSet is a compiled command hierarchy: an ordered set of commands
// plus an optional mutual schema shared by all of them. Mutual arguments
// parse independently of which command is active; a token is always offered
// to the active command's schema first and falls through to the mutual
// schema only when the command did not recognize it.
type CommandSet struct {
	name     string
	mutual   *Schema
	commands []*Command
	fallback *Command
}

// CompileCommands compiles a command set. name is the root program name,
// used by help and completion output. mutual may be nil. At most one
// command may be the fallback, and only the fallback may carry a
// completion hint; violations are SchemaErrors.
func CompileCommands(name string, mutual []Descriptor, commands []*Command) (*CommandSet, error) {
	cs := &CommandSet{name: name, commands: commands}

	var err error
	cs.mutual, err = Compile(mutual)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(commands))
	for _, c := range commands {
		if seen[c.Name] {
			return nil, newSchemaError(SchemaErrorDuplicateName, c.Name,
				"command %q is already declared", c.Name)
		}
		seen[c.Name] = true

		if c.Fallback {
			if cs.fallback != nil {
				return nil, newSchemaError(SchemaErrorInvalidFallback, c.Name,
					"at most one fallback command is allowed")
			}
			cs.fallback = c
			// The fallback owns a synthesized leading positional that
			// receives the command-name token that matched nothing else.
			descs := make([]Descriptor, 0, len(c.Args)+1)
			descs = append(descs, Descriptor{
				Arg:        c.Name,
				Required:   true,
				Hidden:     true,
				Completion: c.Completion,
			})
			descs = append(descs, c.Args...)
			c.schema, err = Compile(descs)
		} else {
			if c.Completion != "" {
				return nil, newSchemaError(SchemaErrorInvalidFallback, c.Name,
					"completion hints are only legal on the fallback command")
			}
			c.schema, err = Compile(c.Args)
		}
		if err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// MustCompileCommands is CompileCommands for sets known-good at program
// start; it panics on authoring mistakes.
func MustCompileCommands(name string, mutual []Descriptor, commands []*Command) *CommandSet {
	cs, err := CompileCommands(name, mutual, commands)
	if err != nil {
		panic("argot: " + err.Error())
	}
	return cs
}

// Name returns the root program name.
func (cs *CommandSet) Name() string { return cs.name }

// Mutual returns the compiled shared schema.
func (cs *CommandSet) Mutual() *Schema { return cs.mutual }

// Commands returns the commands in declaration order.
func (cs *CommandSet) Commands() []*Command { return cs.commands }

// find locates a named (non-fallback) command in declaration order.
func (cs *CommandSet) find(name string) *Command {
	for _, c := range cs.commands {
		if !c.Fallback && c.Name == name {
			return c
		}
	}
	return nil
}

// CommandResult is the typed output of a command-set parse: the shared
// mutual record, plus the selected command and its own record. Command and
// Sub are nil only in forgiving mode when the stream never named one.
type CommandResult struct {
	Mutual  *Result
	Command *Command
	Sub     *Result
}

// ParseAll consumes the stream, selecting a command from the first
// unclaimed non-flag token and dispatching everything after it. Selection
// is terminal: once a command is active it stays active for the rest of
// the stream. Flags seen before selection are matched against the mutual
// schema only.
func (cs *CommandSet) ParseAll(st *Stream) (*CommandResult, error) {
	return cs.parseAll(st, false, nil)
}

// ParseAllForgiving parses like ParseAll but never fails; tokens that
// matched nothing are routed to onUnhandled (which may be nil).
func (cs *CommandSet) ParseAllForgiving(st *Stream, onUnhandled UnhandledFunc) *CommandResult {
	res, _ := cs.parseAll(st, true, onUnhandled)
	return res
}

func (cs *CommandSet) parseAll(st *Stream, forgiving bool, onUnhandled UnhandledFunc) (*CommandResult, error) {
	mres := newResult(cs.mutual)
	msc := scratchPool.Get()
	defer scratchPool.Put(msc)
	msc.grow(len(cs.mutual.args))

	var active *Command
	var ares *Result
	var asc *scratch
	defer func() {
		if asc != nil {
			scratchPool.Put(asc)
		}
	}()

	out := &CommandResult{Mutual: mres}

	skip := func(tok *Token, perr *ParseError) {
		if perr.Unmatched() && onUnhandled != nil {
			onUnhandled(*tok)
		}
	}

	for {
		tok, err := st.Next()
		if err != nil {
			if forgiving {
				continue
			}
			return nil, err
		}
		if tok == nil {
			break
		}

		if active == nil {
			if tok.IsFlag() {
				if perr := cs.mutual.match(st, tok, mres, msc); perr != nil {
					if forgiving {
						skip(tok, perr)
						continue
					}
					return nil, perr
				}
				continue
			}

			if cmd := cs.find(tok.Text); cmd != nil {
				active = cmd
				out.Command = cmd
				ares = newResult(cmd.schema)
				out.Sub = ares
				asc = scratchPool.Get()
				asc.grow(len(cmd.schema.args))
				continue
			}
			if cs.fallback != nil {
				active = cs.fallback
				out.Command = active
				ares = newResult(active.schema)
				out.Sub = ares
				asc = scratchPool.Get()
				asc.grow(len(active.schema.args))
				// The unmatched name becomes the synthesized positional's
				// first value.
				if perr := active.schema.match(st, tok, ares, asc); perr != nil {
					if forgiving {
						skip(tok, perr)
						continue
					}
					return nil, perr
				}
				continue
			}

			perr := newParseError(ErrorTypeUnknownCommand, "unknown command %q", tok.Text)
			perr.Command = tok.Text
			perr.Token = tok.Text
			cs.suggestCommand(perr, tok.Text)
			if forgiving {
				skip(tok, perr)
				continue
			}
			return nil, perr
		}

		// A token is offered to the active command first; only tokens the
		// command does not recognize fall through to the mutual schema.
		// Flags declared on other commands never leak in.
		perr := active.schema.match(st, tok, ares, asc)
		if perr == nil {
			continue
		}
		if perr.Unmatched() {
			if mperr := cs.mutual.match(st, tok, mres, msc); mperr == nil {
				continue
			}
			perr.Command = active.Name
		}
		if forgiving {
			skip(tok, perr)
			continue
		}
		return nil, perr
	}

	if !forgiving {
		if active == nil && len(cs.commands) > 0 {
			return nil, newParseError(ErrorTypeMissingCommand, "missing command")
		}
		if perr := cs.mutual.checkRequired(msc); perr != nil {
			return nil, perr
		}
		if active != nil {
			if perr := active.schema.checkRequired(asc); perr != nil {
				perr.Command = active.Name
				return nil, perr
			}
		}
	}

	cs.mutual.applyDefaults(mres)
	if active != nil {
		active.schema.applyDefaults(ares)
	}
	return out, nil
}
