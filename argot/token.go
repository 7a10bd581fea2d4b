package argot

import (
	"strings"

	"github.com/argot-cli/argot/internal/intern"
)

// TokenKind distinguishes the three shapes a command-line token can take.
type TokenKind uint8

const (
	// TokenPositional is a bare value, matched by declaration order.
	TokenPositional TokenKind = iota
	// TokenShort is a single-character flag (one per cluster character).
	TokenShort
	// TokenLong is a double-dash flag.
	TokenLong
)

// Token is a single parsed command-line token. For flags Text is the flag
// name with the dashes stripped; for positionals it is the raw value and
// Index carries a 1-based, strictly increasing sequence number. Tokens
// consumed as flag values via Stream.Value keep Index zero.
type Token struct {
	Kind  TokenKind
	Text  string
	Index int
}

// IsFlag reports whether the token is a short or long flag.
func (t Token) IsFlag() bool {
	return t.Kind == TokenShort || t.Kind == TokenLong
}

// String renders the token the way the user typed it, for error messages.
func (t Token) String() string {
	switch t.Kind {
	case TokenShort:
		return "-" + t.Text
	case TokenLong:
		return "--" + t.Text
	default:
		return t.Text
	}
}

// Stream is a sequential cursor over an already-split command line (program
// name excluded). It yields one Token per call, splitting short-flag
// clusters into one token per character and treating everything after a
// bare "--" as forced positionals. The cursor supports a single-step rewind
// and independent copies for non-destructive look-ahead.
type Stream struct {
	args []string

	elem   int  // index of the current raw element
	char   int  // cluster characters already consumed from args[elem]
	pos    int  // last issued 1-based positional index
	forced bool // true once a "--" separator was consumed

	prev      streamMark
	canRewind bool
}

type streamMark struct {
	elem   int
	char   int
	pos    int
	forced bool
}

// NewStream wraps a flat ordered argument sequence.
func NewStream(args []string) *Stream {
	return &Stream{args: args}
}

// Next returns the next token, or nil when the stream is exhausted.
// A lone "-" is a BadArgument error.
func (s *Stream) Next() (*Token, error) {
	return s.next(true)
}

// Value returns the next token for use as a flag value. Unlike Next it
// fails with FlagAsPositional when the next token is itself a flag, fails
// with MissingFlagValue at end of stream, and does not advance the
// positional sequence counter.
func (s *Stream) Value() (*Token, error) {
	tok, err := s.next(false)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, newParseError(ErrorTypeMissingFlagValue, "missing value at end of arguments")
	}
	if tok.IsFlag() {
		perr := newParseError(ErrorTypeFlagAsPositional, "expected a value, found flag '%s'", tok.String())
		perr.Token = tok.String()
		return nil, perr
	}
	return tok, nil
}

// Rewind steps back exactly one token: a whole raw element for positionals
// and long flags, or a single character of a short-flag cluster. Only the
// most recent Next/Value call can be undone.
func (s *Stream) Rewind() {
	if !s.canRewind {
		return
	}
	s.elem = s.prev.elem
	s.char = s.prev.char
	s.pos = s.prev.pos
	s.forced = s.prev.forced
	s.canRewind = false
}

// Copy returns an independent stream positioned at the start of the same
// backing sequence. Consuming the copy never disturbs the original, which
// is what completion generation relies on.
func (s *Stream) Copy() *Stream {
	return NewStream(s.args)
}

func (s *Stream) next(countPositional bool) (*Token, error) {
	s.prev = streamMark{elem: s.elem, char: s.char, pos: s.pos, forced: s.forced}
	s.canRewind = true

	for {
		if s.elem >= len(s.args) {
			return nil, nil
		}
		raw := s.args[s.elem]

		if s.forced {
			s.elem++
			return s.positional(raw, countPositional), nil
		}

		// Mid-cluster: emit the next character as its own short flag.
		if s.char > 0 {
			return s.clusterNext(raw), nil
		}

		switch {
		case raw == "--":
			// Separator: skip it, everything after is positional.
			s.forced = true
			s.elem++
			continue

		case raw == "-":
			s.elem++
			perr := newParseError(ErrorTypeBadArgument, "bad argument '-'")
			perr.Token = raw
			return nil, perr

		case strings.HasPrefix(raw, "--"):
			s.elem++
			return &Token{Kind: TokenLong, Text: raw[2:]}, nil

		case strings.HasPrefix(raw, "-"):
			s.char = 0
			return s.clusterNext(raw), nil

		default:
			s.elem++
			return s.positional(raw, countPositional), nil
		}
	}
}

// clusterNext consumes one character from the short-flag cluster at
// args[elem], advancing to the next raw element once the cluster is spent.
func (s *Stream) clusterNext(raw string) *Token {
	ch := raw[1+s.char]
	s.char++
	if 1+s.char >= len(raw) {
		s.elem++
		s.char = 0
	}
	return &Token{Kind: TokenShort, Text: intern.Char(ch)}
}

func (s *Stream) positional(raw string, counted bool) *Token {
	if !counted {
		return &Token{Kind: TokenPositional, Text: raw}
	}
	s.pos++
	return &Token{Kind: TokenPositional, Text: raw, Index: s.pos}
}
