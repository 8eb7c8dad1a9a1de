package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/martinemde/turtle/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the configuration and logger shared by all subcommands of
// one invocation.
type app struct {
	cfg    *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:   "turtle",
		Short: "Turtle command-language front-end",
		Long: `turtle tokenizes and parses programs written in a small turtle-graphics
command language (TO, IF, WHILE, arithmetic) and dumps the resulting syntax
tree or token stream.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", string(render.FormatYAML), "Tree output format: yaml or json")
	rootCmd.PersistentFlags().Int("indent", render.DefaultIndent, "Indentation width of the tree dump")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail on the first illegal character instead of skipping it")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")

	for _, key := range []string{"config", "format", "indent", "strict", "verbose", "debug"} {
		_ = a.cfg.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	rootCmd.AddCommand(newParseCmd(a), newTokensCmd(a), newVersionCmd())
	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg.SetEnvPrefix("TURTLE")
	a.cfg.AutomaticEnv()

	if cfgFile := a.cfg.GetString("config"); cfgFile != "" {
		a.cfg.SetConfigFile(cfgFile)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}

	level := slog.LevelWarn
	switch {
	case a.cfg.GetBool("debug"):
		level = slog.LevelDebug
	case a.cfg.GetBool("verbose"):
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	a.logger = slog.New(handler).With("run_id", uuid.NewString())
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
