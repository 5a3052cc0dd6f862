package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit-io/confkit/pkg/document"
)

var pluginIdent bool

func init() {
	cmd := newPluginCmd()
	add := newPluginAddCmd()
	add.Flags().BoolVar(&pluginIdent, "ident", false, "Treat option values as identifier references")
	cmd.AddCommand(add)
	rootCmd.AddCommand(cmd)
}

func newPluginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugin",
		Short: "Manage plugin declarations in a config",
	}
}

func newPluginAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <config.js> <dotted.Name> [key=value]...",
		Short: "Add or update a plugin constructor call",
		Long: `The plugin add command upserts a "new <dotted.Name>(...)" element in the
plugins array, creating the array if missing. When a call with the same
dotted name already exists, its options object is shallow-merged with the
given pairs instead of adding a duplicate.

Example:
  confctl plugin add webpack.config.js webpack.optimize.DedupePlugin
  confctl plugin add webpack.config.js webpack.DefinePlugin sourceMap=true
  confctl plugin add webpack.config.js webpack.DefinePlugin DEBUG=debugFlag --ident`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPluginAdd(args)
		},
	}
}

func runPluginAdd(args []string) error {
	configPath := args[0]
	dottedName := args[1]

	var desc *document.Object
	if len(args) > 2 {
		var err error
		desc, err = parsePairs(args[2:], pluginIdent)
		if err != nil {
			return err
		}
	}

	printVerbose("Opening config: %s\n", configPath)
	doc, err := document.Load(configPath)
	if err != nil {
		return err
	}

	applied, err := doc.AddPlugin(dottedName, desc)
	if err != nil {
		return fmt.Errorf("failed to upsert plugin %s: %w", dottedName, err)
	}

	return writeOut(doc, configPath, applied)
}
