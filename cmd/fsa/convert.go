package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/automata/internal/presentation/report"
)

func newConvertCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "convert NAME",
		Short:             "Convert an automaton to a DFA by subset construction",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: catalogArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}
			dfa := a.engine.Convert(fa)

			switch format {
			case "text":
				out := cmd.OutOrStdout()
				fmt.Fprint(out, dfa.String())
				fmt.Fprintln(out, "Subsets:")
				subsets := fa.SubsetMap()
				for _, label := range dfa.States().Sorted() {
					fmt.Fprintf(out, "%s = %s\n", label, subsets[label])
				}
				return nil
			case "markdown", "md":
				return a.render(cmd, report.Markdown(args[0]+" (DFA)", dfa)+"\n"+report.Subsets(fa))
			}
			return fmt.Errorf("unknown format %q (want text or markdown)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, markdown")
	return cmd
}
