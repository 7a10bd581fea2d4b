package argot

import (
	"github.com/argot-cli/argot/internal/pool"
)

// UnhandledFunc receives tokens that matched nothing during a forgiving
// parse, letting a secondary argument consumer pick them up instead of the
// parse aborting.
type UnhandledFunc func(Token)

// scratch is the per-parse mutable matcher state: a bitmask with one bit
// per schema entry marking which arguments already matched.
type scratch struct {
	mask []uint64
}

var scratchPool = pool.NewWithReset(
	func() *scratch { return &scratch{mask: make([]uint64, 4)} },
	func(s *scratch) {
		for i := range s.mask {
			s.mask[i] = 0
		}
	},
)

func (s *scratch) grow(n int) {
	words := (n + 63) / 64
	for len(s.mask) < words {
		s.mask = append(s.mask, 0)
	}
}

func (s *scratch) seen(i int) bool { return s.mask[i/64]&(1<<(i%64)) != 0 }
func (s *scratch) mark(i int)      { s.mask[i/64] |= 1 << (i % 64) }

// ParseAll consumes the stream to exhaustion and returns the typed result.
// The first error aborts the scan: either a stream-level failure
// (BadArgument, MissingFlagValue, FlagAsPositional) or a matcher failure
// (DuplicateFlag, UnknownFlag, TooManyArguments, CouldNotParse). After the
// stream is exhausted every required argument must have matched, otherwise
// TooFewArguments names the first unset one in declaration order.
func (s *Schema) ParseAll(st *Stream) (*Result, error) {
	return s.parseAll(st, false, nil)
}

// ParseAllForgiving parses like ParseAll but never fails: erroneous tokens
// are skipped and tokens that matched nothing are routed to onUnhandled
// (which may be nil). The returned result is partial; unset fields hold
// their defaults or nothing.
func (s *Schema) ParseAllForgiving(st *Stream, onUnhandled UnhandledFunc) *Result {
	res, _ := s.parseAll(st, true, onUnhandled)
	return res
}

func (s *Schema) parseAll(st *Stream, forgiving bool, onUnhandled UnhandledFunc) (*Result, error) {
	res := newResult(s)
	sc := scratchPool.Get()
	defer scratchPool.Put(sc)
	sc.grow(len(s.args))

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
		if perr := s.match(st, tok, res, sc); perr != nil {
			if forgiving {
				if perr.Unmatched() && onUnhandled != nil {
					onUnhandled(*tok)
				}
				continue
			}
			return nil, perr
		}
	}

	if !forgiving {
		if perr := s.checkRequired(sc); perr != nil {
			return nil, perr
		}
	}
	s.applyDefaults(res)
	return res, nil
}

// match offers one token to the schema: arguments are scanned in
// declaration order and the first acceptor wins. Flags match by short
// character or long name; a positional token goes to the first unclaimed
// positional (a variadic positional claims everything from then on).
func (s *Schema) match(st *Stream, tok *Token, res *Result, sc *scratch) *ParseError {
	if tok.IsFlag() {
		return s.matchFlag(st, tok, res, sc)
	}
	return s.matchPositional(tok, res, sc)
}

func (s *Schema) matchFlag(st *Stream, tok *Token, res *Result, sc *scratch) *ParseError {
	for i, a := range s.args {
		if !a.isFlag || !a.acceptsFlag(tok) {
			continue
		}
		if sc.seen(i) {
			perr := newParseError(ErrorTypeDuplicateFlag, "duplicate flag '%s'", tok.String())
			perr.Token = tok.String()
			perr.Argument = a.name
			return perr
		}
		f := s.fields[i]
		if a.takesValue {
			vtok, err := st.Value()
			if err != nil {
				perr := err.(*ParseError)
				perr.Argument = a.name
				return perr
			}
			v, cerr := f.Type.convert(vtok.Text)
			if cerr != nil {
				perr := newParseError(ErrorTypeCouldNotParse,
					"invalid value for '%s': %v", tok.String(), cerr)
				perr.Token = vtok.Text
				perr.Argument = a.name
				return perr
			}
			res.bind(a.name, v)
		} else {
			res.bind(a.name, value{b: true})
		}
		sc.mark(i)
		return nil
	}

	perr := newParseError(ErrorTypeUnknownFlag, "unknown flag '%s'", tok.String())
	perr.Token = tok.String()
	if tok.Kind == TokenLong {
		s.suggestFlag(perr, tok.Text)
	}
	return perr
}

func (s *Schema) matchPositional(tok *Token, res *Result, sc *scratch) *ParseError {
	for i, a := range s.args {
		if a.isFlag {
			continue
		}
		if sc.seen(i) && !a.variadic {
			continue
		}
		f := s.fields[i]
		v, cerr := f.Type.convert(tok.Text)
		if cerr != nil {
			perr := newParseError(ErrorTypeCouldNotParse,
				"invalid value for argument '%s': %v", a.name, cerr)
			perr.Token = tok.Text
			perr.Argument = a.name
			return perr
		}
		if a.variadic {
			res.bindItem(a.name, v)
		} else {
			res.bind(a.name, v)
		}
		sc.mark(i)
		return nil
	}

	perr := newParseError(ErrorTypeTooManyArguments, "unexpected argument '%s'", tok.Text)
	perr.Token = tok.Text
	return perr
}

// acceptsFlag reports whether the flag argument matches the token, by
// short character or long name depending on the token's shape.
func (a *Argument) acceptsFlag(tok *Token) bool {
	switch tok.Kind {
	case TokenShort:
		return a.short != 0 && len(tok.Text) == 1 && a.short == tok.Text[0]
	case TokenLong:
		return a.long != "" && a.long == tok.Text
	default:
		return false
	}
}

// checkRequired reports the first required argument, by declaration index,
// that never matched.
func (s *Schema) checkRequired(sc *scratch) *ParseError {
	for i, f := range s.fields {
		if f.Required && !sc.seen(i) {
			perr := newParseError(ErrorTypeTooFewArguments,
				"missing required argument '%s'", s.args[i].name)
			perr.Argument = s.args[i].name
			return perr
		}
	}
	return nil
}

// applyDefaults fills every slot that was not bound from input with its
// compile-time materialized default.
func (s *Schema) applyDefaults(res *Result) {
	for i, f := range s.fields {
		name := s.args[i].name
		if f.hasDefault && !res.set[name] {
			res.vals[name] = f.def
		}
	}
}
