package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/automata/internal/dto"
	"github.com/aretw0/automata/internal/presentation/report"
)

func newDescribeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:               "describe NAME",
		Short:             "Show an automaton",
		Long:              `Prints an automaton as a text dump, a Markdown report, JSON or YAML.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: catalogArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch format {
			case "text":
				_, err = fmt.Fprint(out, fa.String())
				return err
			case "markdown", "md":
				return a.render(cmd, report.Markdown(args[0], fa))
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.FromAutomaton(args[0], fa))
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(dto.FromAutomaton(args[0], fa)); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				return enc.Close()
			}
			return fmt.Errorf("unknown format %q (want text, markdown, json or yaml)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, markdown, json, yaml")
	return cmd
}
