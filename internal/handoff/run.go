package handoff

import (
	"github.com/danmuck/launchwrap/internal/entrypoint"
	"github.com/danmuck/launchwrap/internal/properties"
	"github.com/rs/zerolog/log"
)

type Options struct {
	// BeforeHandoff runs once the entry point has resolved, immediately
	// before it is invoked.
	BeforeHandoff func(Handoff) error
	// OnCommand observes every decoded command, launch included.
	OnCommand func(Command)
}

// Run consumes src until a launch command, then hands control to the
// resolved entry point on the calling goroutine. Every failure is terminal.
func Run(src LineSource, resolver entrypoint.Resolver, props *properties.Properties) error {
	return RunWithOptions(src, resolver, props, Options{})
}

func RunWithOptions(src LineSource, resolver entrypoint.Resolver, props *properties.Properties, opts Options) error {
	dec := NewDecoder(src)
	session := NewSession(props)
	for {
		cmd, err := dec.Next()
		if err != nil {
			log.Error().Err(err).Int("lines", dec.Lines()).Msg("handoff stream rejected")
			return err
		}
		if opts.OnCommand != nil {
			opts.OnCommand(cmd)
		}

		if cmd.Kind == KindLaunch {
			log.Info().
				Str("entry_point", cmd.Value).
				Int("args", len(session.args)).
				Int("properties", session.props.Len()).
				Msg("handoff")
			return session.Handoff(resolver, cmd.Value, opts.BeforeHandoff)
		}

		if err := session.Apply(cmd); err != nil {
			return err
		}
		switch cmd.Kind {
		case KindArg:
			log.Debug().Int("index", len(session.args)-1).Msg("arg")
		case KindProperty:
			log.Debug().Str("key", cmd.Key).Msg("property")
		}
	}
}
