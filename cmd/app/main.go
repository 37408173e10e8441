package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ohrid",
		Short:         "Ohrid day planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	root.AddCommand(
		newServeCmd(),
		newSlotsCmd(),
		newRotationCmd(),
		newShareCmd(),
		newCatalogCmd(),
	)
	return root
}
