package handoff

import (
	"fmt"
	"strings"

	"github.com/danmuck/launchwrap/internal/entrypoint"
	"github.com/danmuck/launchwrap/internal/properties"
)

// Handoff describes a resolved transfer just before the entry point runs.
type Handoff struct {
	EntryPoint string
	Args       []string
	Properties properties.View
	Commands   int
}

// Session accumulates launch state for one bootstrap.
type Session struct {
	props    *properties.Properties
	args     []string
	applied  int
	launched bool
}

// NewSession starts a session writing into props. A nil props gets a fresh
// instance.
func NewSession(props *properties.Properties) *Session {
	if props == nil {
		props = properties.New()
	}
	return &Session{props: props}
}

// Args returns a copy of the argument list.
func (s *Session) Args() []string {
	out := make([]string, len(s.args))
	copy(out, s.args)
	return out
}

func (s *Session) Properties() *properties.Properties {
	return s.props
}

// Applied counts commands applied, launch included.
func (s *Session) Applied() int {
	return s.applied
}

func (s *Session) Launched() bool {
	return s.launched
}

// Apply records an arg or property command. Launch goes through Handoff.
func (s *Session) Apply(cmd Command) error {
	if s.launched {
		return ErrAlreadyLaunched
	}
	switch cmd.Kind {
	case KindArg:
		s.args = append(s.args, cmd.Value)
	case KindProperty:
		s.props.Set(cmd.Key, cmd.Value)
	case KindLaunch:
		return fmt.Errorf("handoff: launch %q must go through Handoff", cmd.Value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, string(cmd.Kind))
	}
	s.applied++
	return nil
}

// Handoff resolves name and invokes it synchronously with the accumulated
// arguments. It can happen once per session. before, when set, runs after
// resolution and before invocation; its error aborts the transfer. The
// entry point's own error is returned unchanged.
func (s *Session) Handoff(resolver entrypoint.Resolver, name string, before func(Handoff) error) error {
	if s.launched {
		return ErrAlreadyLaunched
	}
	s.launched = true
	s.applied++

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty entry point name", ErrEntryPointResolution)
	}
	fn, err := resolver.Resolve(name)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrEntryPointResolution, name, err)
	}
	if fn == nil {
		return fmt.Errorf("%w: %q resolved to nil", ErrEntryPointResolution, name)
	}

	h := Handoff{
		EntryPoint: name,
		Args:       s.Args(),
		Properties: s.props,
		Commands:   s.applied,
	}
	if before != nil {
		if err := before(h); err != nil {
			return fmt.Errorf("handoff: before %q: %w", name, err)
		}
	}
	return fn(s.props, h.Args)
}
