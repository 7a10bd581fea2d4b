package argot

import (
	"fmt"
	"io"
	"strings"
)

// Shell selects the completion dialect to generate.
type Shell string

// ShellZsh targets zsh's compsys (_arguments and _values).
const ShellZsh Shell = "zsh"

// GenerateCompletion writes a completion script for the named program.
// Every non-hidden argument contributes one spec line in declaration
// order; value-accepting arguments use their Completion hint as the
// action, or offer nothing when no hint is declared.
func (s *Schema) GenerateCompletion(w io.Writer, shell Shell, name string) error {
	if shell != ShellZsh {
		return fmt.Errorf("unsupported completion shell %q", shell)
	}
	var b strings.Builder
	fn := "_" + zshIdent(name)

	fmt.Fprintf(&b, "#compdef %s\n\n", name)
	fmt.Fprintf(&b, "%s() {\n", fn)
	writeZshArguments(&b, s, "    ")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "%s \"$@\"\n", fn)

	_, err := io.WriteString(w, b.String())
	return err
}

// GenerateCompletion writes a completion script for the command set: a
// dispatcher that completes command names in the first position and then
// delegates to a per-command function. When a fallback command declares a
// completion hint, its candidates are offered alongside the literal
// command names.
func (cs *CommandSet) GenerateCompletion(w io.Writer, shell Shell) error {
	if shell != ShellZsh {
		return fmt.Errorf("unsupported completion shell %q", shell)
	}
	var b strings.Builder
	root := "_" + zshIdent(cs.name)

	fmt.Fprintf(&b, "#compdef %s\n\n", cs.name)

	fmt.Fprintf(&b, "%s() {\n", root)
	b.WriteString("    local curcontext=\"$curcontext\" state line\n")
	b.WriteString("    _arguments -C \\\n")
	for _, a := range cs.mutual.args {
		if a.Descriptor.Hidden {
			continue
		}
		b.WriteString("        ")
		b.WriteString(zshSpec(a))
		b.WriteString(" \\\n")
	}
	b.WriteString("        '1:command:->command' \\\n")
	b.WriteString("        '*::argument:->argument'\n\n")

	b.WriteString("    case $state in\n")
	b.WriteString("    command)\n")
	b.WriteString("        _values 'command'")
	for _, c := range cs.commands {
		if c.Fallback {
			continue
		}
		b.WriteString(" \\\n            ")
		fmt.Fprintf(&b, "'%s[%s]'", c.Name, zshText(c.Help))
	}
	b.WriteString("\n")
	if cs.fallback != nil && cs.fallback.Completion != "" {
		b.WriteString("        ")
		b.WriteString(cs.fallback.Completion)
		b.WriteString("\n")
	}
	b.WriteString("        ;;\n")
	b.WriteString("    argument)\n")
	b.WriteString("        case ${words[1]} in\n")
	for _, c := range cs.commands {
		if c.Fallback {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            %s_sub_%s\n", root, zshIdent(c.Name))
		b.WriteString("            ;;\n")
	}
	if cs.fallback != nil {
		b.WriteString("        *)\n")
		fmt.Fprintf(&b, "            %s_sub_%s\n", root, zshIdent(cs.fallback.Name))
		b.WriteString("            ;;\n")
	}
	b.WriteString("        esac\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")

	for _, c := range cs.commands {
		fmt.Fprintf(&b, "%s_sub_%s() {\n", root, zshIdent(c.Name))
		writeZshArguments(&b, c.schema, "    ")
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "%s \"$@\"\n", root)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeZshArguments emits one _arguments call covering the schema.
func writeZshArguments(b *strings.Builder, s *Schema, indent string) {
	var specs []string
	for _, a := range s.args {
		if a.Descriptor.Hidden {
			continue
		}
		specs = append(specs, zshSpec(a))
	}
	if len(specs) == 0 {
		b.WriteString(indent)
		b.WriteString("_arguments\n")
		return
	}
	b.WriteString(indent)
	b.WriteString("_arguments -s")
	for _, spec := range specs {
		b.WriteString(" \\\n")
		b.WriteString(indent)
		b.WriteString("    ")
		b.WriteString(spec)
	}
	b.WriteString("\n")
}

// zshSpec renders one _arguments spec for an argument.
func zshSpec(a *Argument) string {
	help := zshText(a.Descriptor.Help)
	action := a.Descriptor.Completion
	if action == "" {
		action = "( )"
	}

	if !a.isFlag {
		prefix := ""
		if a.variadic {
			prefix = "*"
		}
		return fmt.Sprintf("'%s:%s:%s'", prefix, a.name, action)
	}

	value := ""
	if a.takesValue {
		value = fmt.Sprintf(":%s:%s", a.valueName, action)
	}

	switch a.form {
	case formShortAndLong:
		return fmt.Sprintf("'(-%c --%s)'{-%c,--%s}'[%s]%s'",
			a.short, a.long, a.short, a.long, help, value)
	case formLong:
		return fmt.Sprintf("'--%s[%s]%s'", a.long, help, value)
	default:
		return fmt.Sprintf("'-%c[%s]%s'", a.short, help, value)
	}
}

// zshText strips characters that would break a bracketed description.
func zshText(s string) string {
	r := strings.NewReplacer("'", "", "[", "(", "]", ")", "\n", " ")
	return r.Replace(s)
}

// zshIdent maps a program or command name to a shell function suffix.
func zshIdent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isNameChar(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
