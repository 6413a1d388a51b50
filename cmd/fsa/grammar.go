package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGrammarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar NAME",
		Short: "Derive the right-regular grammar of an automaton",
		Long: `Prints one production per line. The first line links the start symbol to
the start state; S -> f lines mark accept states.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: catalogArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}
			if fa.HasEpsilon() {
				a.logger.Warn("epsilon moves have no production; convert the automaton first for an equivalent grammar")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.engine.Grammar(fa))
			return err
		},
	}
}
