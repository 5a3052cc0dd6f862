package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit-io/confkit/pkg/document"
)

func init() {
	rootCmd.AddCommand(newPrintCmd())
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <config.js>",
		Short: "Parse a config and print the regenerated source",
		Long: `The print command round-trips a configuration file through the parser and
generator without changing it. Useful to check that a config is parseable
and to preview the generator's formatting.

Example:
  confctl print webpack.config.js`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Print(doc.Render())
			return nil
		},
	}
}
