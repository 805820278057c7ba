package handoff

import (
	"fmt"
	"strings"
)

// Kind is the command tag as it appears on the wire.
type Kind string

const (
	KindArg      Kind = "arg"
	KindProperty Kind = "property"
	KindLaunch   Kind = "launch"
)

// Command is one decoded protocol command. Key is only meaningful for
// property; for launch, Value carries the entry point name.
type Command struct {
	Kind  Kind
	Key   string
	Value string
}

func Arg(value string) Command {
	return Command{Kind: KindArg, Value: value}
}

func Property(key, value string) Command {
	return Command{Kind: KindProperty, Key: key, Value: value}
}

func Launch(entryPoint string) Command {
	return Command{Kind: KindLaunch, Value: entryPoint}
}

// Payload returns the number of lines following the tag line.
func (k Kind) Payload() (int, bool) {
	switch k {
	case KindArg, KindLaunch:
		return 1, true
	case KindProperty:
		return 2, true
	default:
		return 0, false
	}
}

// Lines renders the command as protocol lines, tag first.
func (c Command) Lines() []string {
	switch c.Kind {
	case KindProperty:
		return []string{string(c.Kind), c.Key, c.Value}
	default:
		return []string{string(c.Kind), c.Value}
	}
}

// Validate reports whether the command can be carried by the protocol.
func (c Command) Validate() error {
	if _, ok := c.Kind.Payload(); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, string(c.Kind))
	}
	for _, line := range c.Lines()[1:] {
		if strings.ContainsAny(line, "\r\n") {
			return fmt.Errorf("%w: %s payload contains a line break", ErrUnencodable, c.Kind)
		}
	}
	return nil
}

// Script flattens commands into protocol lines.
func Script(cmds ...Command) []string {
	var out []string
	for _, cmd := range cmds {
		out = append(out, cmd.Lines()...)
	}
	return out
}

func (c Command) String() string {
	switch c.Kind {
	case KindProperty:
		return fmt.Sprintf("%s %s=%s", c.Kind, c.Key, c.Value)
	default:
		return fmt.Sprintf("%s %s", c.Kind, c.Value)
	}
}
