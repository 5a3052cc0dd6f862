package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/confkit-io/confkit/pkg/document"
)

var (
	setReassign bool
	setIdent    bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setReassign, "reassign", false, "Overwrite existing values instead of appending")
	cmd.Flags().BoolVar(&setIdent, "ident", false, "Treat values as identifier references, not strings")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <config.js> <section> <key=value>...",
		Short: "Set options inside a named section of a config",
		Long: `The set command merges key=value pairs into a named top-level section
of the configuration object. Without --reassign, pairs are appended
create-only (the section is created if missing). With --reassign, existing
keys are overwritten in place and the section must already exist.

Values follow the usual coercion: "true"/"false" become booleans and
numeric strings become numbers.

Example:
  confctl set webpack.config.js output filename=bundle.js
  confctl set webpack.config.js devServer port=9000 hot=true --reassign
  confctl set webpack.config.js output path=outputPath --ident`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	configPath := args[0]
	section := args[1]

	desc, err := parsePairs(args[2:], setIdent)
	if err != nil {
		return err
	}

	printVerbose("Opening config: %s\n", configPath)
	doc, err := document.Load(configPath)
	if err != nil {
		return err
	}

	applied, err := doc.MergeSection(section, desc, setReassign)
	if err != nil {
		return fmt.Errorf("failed to merge into %q: %w", section, err)
	}

	return writeOut(doc, configPath, applied)
}
