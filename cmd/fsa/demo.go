package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/presentation/tui"
)

var demoInputs = []string{"aab", "abbab", "abaab", "ab", "abb"}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through grammar derivation and conversion of the lab automaton",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !a.plain && tui.IsTerminal(out) {
				tui.PrintBanner(out, automata.Version)
			}

			fa, err := a.load("lab")
			if err != nil {
				return err
			}

			fmt.Fprintln(out, a.engine.Grammar(fa))

			dfa := a.engine.Convert(fa)

			if fa.IsDeterministic() {
				fmt.Fprintln(out, "The FA is deterministic")
			} else {
				fmt.Fprintln(out, "The FA is non-deterministic")
			}
			fmt.Fprintln(out, "------------------------")

			fmt.Fprintln(out, "Generated Finite Automaton:")
			fmt.Fprintln(out, dfa)

			fmt.Fprintln(out, "Checking if some example strings are accepted by the finite automaton:")
			for _, input := range demoInputs {
				if a.engine.Accepts(dfa, input) {
					fmt.Fprintf(out, "The input string %q is accepted by the automaton.\n", input)
				} else {
					fmt.Fprintf(out, "The input string %q is not accepted by the automaton.\n", input)
				}
			}
			return nil
		},
	}
}
