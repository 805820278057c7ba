package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/danmuck/launchwrap/internal/config"
	"github.com/danmuck/launchwrap/internal/entrypoint"
	"github.com/danmuck/launchwrap/internal/handoff"
	"github.com/danmuck/launchwrap/internal/logging"
	"github.com/danmuck/launchwrap/internal/observability"
	"github.com/danmuck/launchwrap/internal/properties"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the host resources the commands touch, so tests can swap them.
type app struct {
	registry *entrypoint.Registry
	stdin    io.Reader
	stdout   io.Writer
	setenv   func(string, string) error
	now      func() time.Time
}

func newApp(registry *entrypoint.Registry) *app {
	return &app{
		registry: registry,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		setenv:   os.Setenv,
		now:      time.Now,
	}
}

type runFlags struct {
	configPath string
	input      string
}

func newRootCmd(a *app) *cobra.Command {
	var flags runFlags
	root := &cobra.Command{
		Use:   "launchwrap",
		Short: "Read a launch handoff stream and transfer control to an entry point",
		Long: `launchwrap reads line-pair commands from its input:

  arg       <value>
  property  <key> <value>
  launch    <entry point>

arguments and properties accumulate until launch, which resolves the named
entry point and runs it with the collected arguments.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHandoff(flags)
		},
	}
	bindRunFlags(root, &flags)

	root.AddCommand(newRunCmd(a), newEmitCmd(a), newListCmd(a))
	return root
}

func newRunCmd(a *app) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the handoff protocol (same as the root command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHandoff(flags)
		},
	}
	bindRunFlags(cmd, &flags)
	return cmd
}

func bindRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.configPath, "config", "", "launcher config file (TOML)")
	cmd.Flags().StringVar(&flags.input, "input", "", `command stream path, "-" for stdin (overrides config)`)
}

func newEmitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "emit <manifest.toml>",
		Short: "Write the handoff stream for a launch manifest to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.LoadManifest(args[0])
			if err != nil {
				return err
			}
			w := handoff.NewWriter(a.stdout)
			for _, c := range m.Commands() {
				if err := w.Write(c); err != nil {
					return fmt.Errorf("emit %s: %w", c.Kind, err)
				}
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered entry points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.registry.Names() {
				if _, err := fmt.Fprintln(a.stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) loadConfig(flags runFlags) (config.LauncherConfig, error) {
	cfg := config.DefaultLauncherConfig()
	if flags.configPath != "" {
		loaded, err := config.LoadLauncherConfig(flags.configPath)
		if err != nil {
			return config.LauncherConfig{}, err
		}
		cfg = loaded
		log.Info().Str("path", flags.configPath).Msg("loaded launcher config")
	}
	if flags.input != "" {
		cfg.Input = flags.input
	}
	return cfg, nil
}

func (a *app) runHandoff(flags runFlags) error {
	cfg, err := a.loadConfig(flags)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		lvl, ok := logging.ParseLevel(cfg.LogLevel)
		if !ok {
			return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
		}
		logging.SetLevel(lvl)
	}

	in := a.stdin
	if cfg.Input != config.StdinInput {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	metrics := observability.NewHandoffMetrics()
	props := properties.New()
	opts := handoff.Options{
		OnCommand: func(c handoff.Command) {
			metrics.RecordCommand(string(c.Kind))
		},
		BeforeHandoff: func(h handoff.Handoff) error {
			if cfg.ExportEnv {
				if err := props.ExportEnv(cfg.EnvPrefix, a.setenv); err != nil {
					return fmt.Errorf("export properties: %w", err)
				}
			}
			metrics.RecordHandoff(h.EntryPoint, len(h.Args), props.Len(), a.now())
			if cfg.MetricsTextfile != "" {
				if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
					return fmt.Errorf("write metrics textfile: %w", err)
				}
			}
			return nil
		},
	}

	src := handoff.NewScannerSource(in, cfg.MaxLineBytes)
	return handoff.RunWithOptions(src, a.registry, props, opts)
}
