// Package argot is a declarative command-line argument parser. A schema
// is authored as an ordered list of descriptors written in a compact
// mini-language:
//
//	argot.MustCompile([]argot.Descriptor{
//		{Arg: "item", Help: "the item to process", Required: true},
//		{Arg: "-n/--limit value", Help: "max results", Default: "10", Type: argot.Int},
//		{Arg: "-f/--flag", Help: "enable the thing"},
//		{Arg: "other", Help: "a second positional"},
//	})
//
// Parsing, help output, and shell completion are all derived from the
// same compiled schema, so they can never drift apart. Authoring
// mistakes (malformed descriptors, duplicate names, defaults the
// declared type cannot parse) surface as SchemaErrors at compile time;
// bad input at run time yields ParseErrors with typed reasons and
// "did you mean" suggestions.
//
// Input is consumed as a token stream that splits clustered short flags
// ("-abc" is three flags) and honors "--" as the end of flag parsing.
// Matching is by declaration order: the first argument that accepts a
// token wins, positionals fill in order, and a trailing "name..."
// descriptor collects everything left over.
//
// Command hierarchies are built with CompileCommands: each command
// carries its own schema, an optional mutual schema is shared by all of
// them, and one command may be declared the fallback that receives any
// first word that names no command.
package argot
