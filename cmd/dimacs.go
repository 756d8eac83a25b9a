package cmd

import (
	"github.com/spf13/cobra"
)

func newDimacsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs [file.yaml]",
		Short: "Write the conjunctive normal form of a formula in DIMACS format",
		Long: `Dimacs normalizes a formula and writes the result in the DIMACS CNF format,
so that it can be fed to any SAT solver. Variable names are listed in comment
lines ("c name=index") between the problem line and the clauses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readFormula(cmd, args)
			if err != nil {
				return err
			}
			return opts.normalizer().Dimacs(f, cmd.OutOrStdout())
		},
	}
}
