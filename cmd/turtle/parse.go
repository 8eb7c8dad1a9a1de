package main

import (
	"fmt"
	"io"
	"os"

	"github.com/martinemde/turtle/render"
	"github.com/martinemde/turtle/turtleparser"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a program and dump its syntax tree",
		Long: `Parse a turtle program and write its syntax tree to stdout.

Illegal characters are logged and skipped unless --strict is set. A syntax
error stops the parse and nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	format, err := render.Lookup(a.cfg.GetString("format"))
	if err != nil {
		return err
	}

	src, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	opts := []turtleparser.Option{turtleparser.WithLogger(a.logger.With("source", name))}
	if a.cfg.GetBool("strict") {
		opts = append(opts, turtleparser.WithStrictLexing())
	}

	parser := turtleparser.NewParser(src, opts...)
	prog, err := parser.Parse()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}

	a.logger.Info("parsed program",
		"source", name,
		"statements", len(prog.Statements),
		"procedures", len(prog.Functions()),
		"lex_errors", len(parser.LexErrors()),
	)

	return render.Write(cmd.OutOrStdout(), prog, format, a.cfg.GetInt("indent"))
}

// readSource reads the program named by args, or stdin when args is empty
// or "-". It returns the source and a display name for diagnostics.
func readSource(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return src, "<stdin>", nil
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("reading program file: %w", err)
	}
	return src, args[0], nil
}
