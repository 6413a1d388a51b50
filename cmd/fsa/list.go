package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/automata/internal/catalog"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in automata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.Names() {
				e, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", e.Name, e.Description)
			}
			return nil
		},
	}
}
