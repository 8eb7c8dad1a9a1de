package main

import (
	"fmt"

	"github.com/martinemde/turtle/render"
	"github.com/martinemde/turtle/turtleparser"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTokens,
	}
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	logger := a.logger.With("source", name)
	lex := turtleparser.NewLexer(src)
	lex.HandleErrors(func(err *turtleparser.LexError) {
		logger.Warn("illegal input skipped",
			"line", err.Pos.Line,
			"col", err.Pos.Column,
			"char", err.Char,
			"error", err.Message,
		)
	})

	var tokens []turtleparser.Token
	for tok := range lex.All() {
		tokens = append(tokens, tok)
	}

	if errs := lex.Errors(); len(errs) > 0 && a.cfg.GetBool("strict") {
		return fmt.Errorf("tokenizing %s: %w", name, errs[0])
	}

	return render.Tokens(cmd.OutOrStdout(), tokens)
}
