package argot

import (
	"io"
	"strings"

	"github.com/argot-cli/argot/internal/textwrap"
)

// HelpOptions controls help rendering. The zero value renders with a
// width of 80 columns and a left indent of two spaces.
type HelpOptions struct {
	Name   string // program name for the usage line
	About  string // one-line description printed under the usage line
	Width  int
	Indent int
}

const (
	defaultHelpWidth  = 80
	defaultHelpIndent = 2
	helpColumnGap     = 4
)

func (o HelpOptions) normalized() HelpOptions {
	if o.Width <= 0 {
		o.Width = defaultHelpWidth
	}
	if o.Indent <= 0 {
		o.Indent = defaultHelpIndent
	}
	return o
}

// WriteHelp renders usage and the argument table for the schema. Every
// non-hidden argument gets one row in declaration order: the rendered
// descriptor form on the left, the wrapped help text on the right.
// Defaults are appended to the help text as "(default: X).".
func (s *Schema) WriteHelp(w io.Writer, opts HelpOptions) error {
	opts = opts.normalized()
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(usageLine(opts.Name, s))
	b.WriteString("\n")
	if opts.About != "" {
		b.WriteString("\n")
		writeWrapped(&b, opts.About, opts.Width, 0, 0)
	}

	if rows := helpRows(s, true); len(rows) > 0 {
		b.WriteString("\nArguments:\n")
		writeRows(&b, rows, opts)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteHelp renders the command overview: the usage line, the command
// table, and the shared arguments common to every command. Fallback
// commands render their name in angle brackets since any word selects
// them.
func (cs *CommandSet) WriteHelp(w io.Writer, opts HelpOptions) error {
	opts = opts.normalized()
	if opts.Name == "" {
		opts.Name = cs.name
	}
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(opts.Name)
	if len(cs.mutual.args) > 0 {
		b.WriteString(" [options]")
	}
	b.WriteString(" <command> [arguments]\n")
	if opts.About != "" {
		b.WriteString("\n")
		writeWrapped(&b, opts.About, opts.Width, 0, 0)
	}

	var rows []helpRow
	for _, c := range cs.commands {
		name := c.Name
		if c.Fallback {
			name = "<" + name + ">"
		}
		rows = append(rows, helpRow{cell: name, text: c.Help})
	}
	if len(rows) > 0 {
		b.WriteString("\nCommands:\n")
		writeRows(&b, rows, opts)
	}

	if shared := helpRows(cs.mutual, true); len(shared) > 0 {
		b.WriteString("\nShared arguments:\n")
		writeRows(&b, shared, opts)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCommandHelp renders usage and arguments for one command of the
// set, with the shared arguments listed after the command's own.
func (cs *CommandSet) WriteCommandHelp(w io.Writer, cmd *Command, opts HelpOptions) error {
	opts = opts.normalized()
	if opts.Name == "" {
		opts.Name = cs.name
	}
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(usageLine(opts.Name+" "+cmd.Name, cmd.schema))
	b.WriteString("\n")
	about := opts.About
	if about == "" {
		about = cmd.Help
	}
	if about != "" {
		b.WriteString("\n")
		writeWrapped(&b, about, opts.Width, 0, 0)
	}

	if rows := helpRows(cmd.schema, true); len(rows) > 0 {
		b.WriteString("\nArguments:\n")
		writeRows(&b, rows, opts)
	}
	if shared := helpRows(cs.mutual, true); len(shared) > 0 {
		b.WriteString("\nShared arguments:\n")
		writeRows(&b, shared, opts)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type helpRow struct {
	cell string
	text string
}

// helpRows builds one row per argument in declaration order, skipping
// hidden ones when skipHidden is set.
func helpRows(s *Schema, skipHidden bool) []helpRow {
	var rows []helpRow
	for i, a := range s.args {
		if skipHidden && a.Descriptor.Hidden {
			continue
		}
		f := s.fields[i]
		text := a.Descriptor.Help
		if f.hasDefault && a.Descriptor.Default != "" {
			if text != "" && !strings.HasSuffix(text, ".") {
				text += "."
			}
			if text != "" {
				text += " "
			}
			text += "(default: " + a.Descriptor.Default + ")."
		}
		rows = append(rows, helpRow{cell: displayName(a), text: text})
	}
	return rows
}

// displayName renders the left help cell: an explicit DisplayName, or
// the descriptor form rebuilt from the interpreted argument.
func displayName(a *Argument) string {
	if a.Descriptor.DisplayName != "" {
		return a.Descriptor.DisplayName
	}
	if !a.isFlag {
		name := a.name
		if a.variadic {
			name += "..."
		}
		if a.Descriptor.Required {
			return "<" + name + ">"
		}
		return "[" + name + "]"
	}

	var b strings.Builder
	switch a.form {
	case formShort:
		b.WriteByte('-')
		b.WriteByte(a.short)
	case formLong:
		b.WriteString("--")
		b.WriteString(a.long)
	case formShortAndLong:
		b.WriteByte('-')
		b.WriteByte(a.short)
		b.WriteString("/--")
		b.WriteString(a.long)
	}
	if a.takesValue {
		b.WriteByte(' ')
		b.WriteString(a.valueName)
	}
	return b.String()
}

// usageLine renders "name [options] <file> [paths...]" from the schema.
func usageLine(name string, s *Schema) string {
	var b strings.Builder
	b.WriteString(name)
	for _, a := range s.args {
		if a.isFlag && !a.Descriptor.Hidden {
			b.WriteString(" [options]")
			break
		}
	}
	for _, a := range s.args {
		if a.isFlag || a.Descriptor.Hidden {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(displayName(a))
	}
	return b.String()
}

// writeRows aligns the cells into one column and wraps help text into
// the remainder of the line.
func writeRows(b *strings.Builder, rows []helpRow, opts HelpOptions) {
	widest := 0
	for _, r := range rows {
		if len(r.cell) > widest {
			widest = len(r.cell)
		}
	}
	textCol := opts.Indent + widest + helpColumnGap

	for _, r := range rows {
		b.WriteString(strings.Repeat(" ", opts.Indent))
		b.WriteString(r.cell)
		if r.text == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", textCol-opts.Indent-len(r.cell)))
		writeWrapped(b, r.text, opts.Width-textCol, 0, textCol)
	}
}

func writeWrapped(b *strings.Builder, text string, limit, leftPad, contIndent int) {
	for _, line := range textwrap.Wrap(text, limit, leftPad, contIndent) {
		b.WriteString(line)
		b.WriteString("\n")
	}
}
