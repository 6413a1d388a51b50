package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/automata"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fsa",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fsa version %s\n", automata.Version)
		},
	}
}
