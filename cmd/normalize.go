package cmd

import (
	"fmt"

	"github.com/crillab/gophercnf/cnf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func newNormalizeCmd(opts *options) *cobra.Command {
	var format string
	normalizeCmd := &cobra.Command{
		Use:   "normalize [file.yaml]",
		Short: "Print a formula and its conjunctive normal form",
		Long: `Normalize reads a formula, eliminates implications and biconditionals,
pushes negations down to the atoms and distributes disjunctions over
conjunctions. The input formula is read from stdin when no file is given.

Examples:
  gophercnf normalize formula.yaml
  gophercnf normalize --format yaml < formula.yaml
  gophercnf normalize --max-clauses 1000 -v formula.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatYAML {
				return fmt.Errorf("invalid format %q: expected %q or %q", format, formatText, formatYAML)
			}
			f, err := readFormula(cmd, args)
			if err != nil {
				return err
			}
			res, err := opts.normalizer().Normalize(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format == formatYAML {
				return cnf.EncodeYAML(res, out)
			}
			header := opts.style(out, color.FgCyan, color.Bold)
			header.Fprintln(out, "formula:")
			fmt.Fprintln(out, f)
			header.Fprintln(out, "cnf:")
			fmt.Fprintln(out, res)
			clauses, err := cnf.Clauses(res)
			if err != nil {
				return err
			}
			opts.style(out, color.FgGreen).Fprintf(out, "%d clauses, %d variables\n", len(clauses), len(cnf.Vars(res)))
			return nil
		},
	}
	normalizeCmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or yaml")
	return normalizeCmd
}
