package argot

import (
	"fmt"

	"github.com/argot-cli/argot/internal/fuzzy"
)

// ErrorType categorizes runtime parse errors. These categories drive
// suggestion logic and the exit-code mapping in cliio.
type ErrorType string

const (
	ErrorTypeBadArgument      ErrorType = "bad_argument"
	ErrorTypeMissingFlagValue ErrorType = "missing_flag_value"
	ErrorTypeFlagAsPositional ErrorType = "flag_as_positional"
	ErrorTypeCouldNotParse    ErrorType = "could_not_parse"
	ErrorTypeDuplicateFlag    ErrorType = "duplicate_flag"
	ErrorTypeUnknownFlag      ErrorType = "unknown_flag"
	ErrorTypeTooFewArguments  ErrorType = "too_few_arguments"
	ErrorTypeTooManyArguments ErrorType = "too_many_arguments"
	ErrorTypeUnknownCommand   ErrorType = "unknown_command"
	ErrorTypeMissingCommand   ErrorType = "missing_command"
)

// ParseError is a runtime parse failure: user input did not satisfy the
// schema. The first one aborts parsing unless forgiving mode is active.
type ParseError struct {
	Type       ErrorType
	Message    string
	Token      string // offending raw token, if any
	Argument   string // canonical argument name, if known
	Command    string // command name, for command dispatch errors
	Suggestion string // did-you-mean candidate, may be empty
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return e.Message + " (did you mean '" + e.Suggestion + "'?)"
	}
	return e.Message
}

// Unmatched reports whether the error means "this token belongs to nobody"
// rather than "this token matched but was invalid". Only unmatched tokens
// fall through from a command schema to the mutual schema.
func (e *ParseError) Unmatched() bool {
	return e.Type == ErrorTypeUnknownFlag || e.Type == ErrorTypeTooManyArguments
}

func newParseError(typ ErrorType, format string, args ...any) *ParseError {
	return &ParseError{Type: typ, Message: fmt.Sprintf(format, args...)}
}

// SchemaErrorType categorizes schema-definition errors: authoring mistakes
// detected at compile time, before any input is read.
type SchemaErrorType string

const (
	SchemaErrorMalformedDescriptor SchemaErrorType = "malformed_descriptor"
	SchemaErrorInvalidArgName      SchemaErrorType = "invalid_arg_name"
	SchemaErrorIncompatibleTypes   SchemaErrorType = "incompatible_types"
	SchemaErrorInvalidDefault      SchemaErrorType = "invalid_default"
	SchemaErrorDuplicateName       SchemaErrorType = "duplicate_name"
	SchemaErrorInvalidVariadic     SchemaErrorType = "invalid_variadic"
	SchemaErrorInvalidFallback     SchemaErrorType = "invalid_fallback"
)

// SchemaError is a schema-definition failure. It is fatal and
// non-recoverable: it represents a mistake by the schema author, not by the
// user, so it is raised before any input token is consumed.
type SchemaError struct {
	Type       SchemaErrorType
	Message    string
	Descriptor string // raw descriptor spec that caused the error
}

func (e *SchemaError) Error() string {
	if e.Descriptor != "" {
		return e.Message + " in descriptor " + strconvQuote(e.Descriptor)
	}
	return e.Message
}

func newSchemaError(typ SchemaErrorType, desc string, format string, args ...any) *SchemaError {
	return &SchemaError{Type: typ, Message: fmt.Sprintf(format, args...), Descriptor: desc}
}

func strconvQuote(s string) string {
	return fmt.Sprintf("%q", s)
}

// suggestion distance matches the go-to default for CLI typo detection.
const suggestionMaxDistance = 2

// suggestFlag fills in a did-you-mean candidate for an unknown flag name.
func (s *Schema) suggestFlag(err *ParseError, name string) *ParseError {
	candidates := make([]string, 0, len(s.args))
	for _, a := range s.args {
		if a.long != "" {
			candidates = append(candidates, a.long)
		}
	}
	if best := fuzzy.FindBest(name, candidates, suggestionMaxDistance); best != "" {
		err.Suggestion = "--" + best
	}
	return err
}

func (cs *CommandSet) suggestCommand(err *ParseError, name string) *ParseError {
	candidates := make([]string, 0, len(cs.commands))
	for _, c := range cs.commands {
		if !c.Fallback {
			candidates = append(candidates, c.Name)
		}
	}
	err.Suggestion = fuzzy.FindBest(name, candidates, suggestionMaxDistance)
	return err
}
