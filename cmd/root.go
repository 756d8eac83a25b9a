// Package cmd implements the gophercnf command line interface using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/crillab/gophercnf/cnf"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	verbose    bool
	noColor    bool
	maxClauses int
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "gophercnf",
		Short: "Translate propositional formulas into conjunctive normal form",
		Long: `gophercnf reads a propositional formula described as a YAML tree and
translates it into an equivalent conjunction of clauses.

A formula is either an atom (a plain scalar) or a mapping with a single key
among not, implies, iff, and, or:

  iff:
    - or: [p, q]
    - r`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log the progress of each normalization pass")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVar(&opts.maxClauses, "max-clauses", 0, "Fail when the CNF would contain more clauses than this (0 means no limit)")

	rootCmd.AddCommand(newNormalizeCmd(opts))
	rootCmd.AddCommand(newDimacsCmd(opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (opts *options) normalizer() *cnf.Normalizer {
	return cnf.NewNormalizer(
		cnf.WithMaxClauses(opts.maxClauses),
		cnf.WithLogger(opts.logger),
	)
}

// style returns a color printer that is only active when w is a terminal.
func (opts *options) style(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	f, ok := w.(*os.File)
	if opts.noColor || !ok || !isatty.IsTerminal(f.Fd()) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// readFormula decodes the formula found in the file named by args, or on stdin
// when there is no argument or the argument is "-".
func readFormula(cmd *cobra.Command, args []string) (cnf.Formula, error) {
	if len(args) == 0 || args[0] == "-" {
		return cnf.DecodeYAML(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", args[0], err)
	}
	defer f.Close()
	form, err := cnf.DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("could not read formula in %q: %w", args[0], err)
	}
	return form, nil
}
