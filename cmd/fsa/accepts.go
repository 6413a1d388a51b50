package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAcceptsCmd(a *app) *cobra.Command {
	var convert bool

	cmd := &cobra.Command{
		Use:   "accepts NAME INPUT...",
		Short: "Test strings for membership",
		Long: `Runs every INPUT through the automaton and reports whether it is accepted.
Use --dfa for non-deterministic automata: membership is then tested on the
converted automaton.`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: catalogArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}
			if convert {
				fa = a.engine.Convert(fa)
			}
			for _, input := range args[1:] {
				verdict := "rejected"
				if a.engine.Accepts(fa, input) {
					verdict = "accepted"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q: %s\n", input, verdict)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&convert, "dfa", false, "Convert to a DFA before testing")
	return cmd
}
