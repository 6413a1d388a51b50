package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/automata/internal/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "check NAME",
		Short:             "Report whether an automaton is deterministic",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: catalogArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}
			r := a.engine.Inspect(fa)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "states:        %d\n", r.States)
			fmt.Fprintf(out, "symbols:       %d\n", r.Symbols)
			fmt.Fprintf(out, "transitions:   %d\n", r.Edges)
			fmt.Fprintf(out, "deterministic: %s\n", yesNo(r.Deterministic))
			fmt.Fprintf(out, "epsilon moves: %s\n", yesNo(r.Epsilon))
			if r.Deterministic && r.Epsilon {
				fmt.Fprintln(out, "note: epsilon moves are not counted against determinism; run convert for a true DFA")
			}

			f := validator.Analyze(fa)
			fmt.Fprintf(out, "unreachable:   %s\n", listOrNone(f.Unreachable))
			fmt.Fprintf(out, "dead:          %s\n", listOrNone(f.Dead))
			if f.EmptyLanguage {
				fmt.Fprintln(out, "language:      empty")
			}
			if err := f.Err(); err != nil {
				a.logger.Info("structural findings", "error", err)
			}
			return nil
		},
	}
}

func listOrNone[T ~string](items []T) string {
	if len(items) == 0 {
		return "none"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = string(it)
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
