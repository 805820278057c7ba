package main

import (
	"errors"
	"os"

	"github.com/danmuck/launchwrap/internal/entrypoint"
	"github.com/danmuck/launchwrap/internal/entrypoint/builtin"
	"github.com/danmuck/launchwrap/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()

	if err := builtin.Default().Register(entrypoint.Default); err != nil {
		log.Fatal().Err(err).Msg("register builtin entry points")
	}

	a := newApp(entrypoint.Default)
	if err := newRootCmd(a).Execute(); err != nil {
		log.Error().Err(err).Msg("launchwrap failed")
		os.Exit(exitCode(err))
	}
}

type exitCoder interface {
	ExitCode() int
}

// exitCode prefers a code carried by the error chain, e.g. from an entry
// point wrapping a child process.
func exitCode(err error) int {
	var coder exitCoder
	if errors.As(err, &coder) && coder.ExitCode() > 0 {
		return coder.ExitCode()
	}
	return 1
}
