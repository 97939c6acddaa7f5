// Command invoicewords spells out invoice totals in French, either
// from the command line or through an HTTP API.
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
		Use:           "invoicewords",
		Short:         "Spell out invoice amounts in French",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newConvertCmd(), newServeCmd())

	return root
}
