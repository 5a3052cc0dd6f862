package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit-io/confkit/pkg/document"
)

var (
	applySection  string
	applyReassign bool
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().StringVar(&applySection, "section", "", "Merge into a named section instead of the top level")
	cmd.Flags().BoolVar(&applyReassign, "reassign", false, "Overwrite existing values instead of appending")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <config.js> <description.yaml>",
		Short: "Merge a YAML change description into a config",
		Long: `The apply command reads a YAML description of configuration changes and
merges it into the config's export object. Mapping order in the YAML file
is preserved in the generated properties.

YAML tags select value variants: !ident for bare identifier references,
!regexp for regular-expression literals, !js for raw expression fragments.

Example:
  confctl apply webpack.config.js changes.yaml
  confctl apply webpack.config.js output.yaml --section output --reassign`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
	return cmd
}

func runApply(args []string) error {
	configPath := args[0]
	descPath := args[1]

	data, err := os.ReadFile(descPath)
	if err != nil {
		return fmt.Errorf("read description %s: %w", descPath, err)
	}
	desc, err := document.DecodeYAML(data)
	if err != nil {
		return fmt.Errorf("decode description %s: %w", descPath, err)
	}

	printVerbose("Opening config: %s\n", configPath)
	doc, err := document.Load(configPath)
	if err != nil {
		return err
	}

	var applied document.Applied
	if applySection != "" {
		applied, err = doc.MergeSection(applySection, desc, applyReassign)
	} else if applyReassign {
		err = fmt.Errorf("--reassign requires --section")
	} else {
		applied, err = doc.Merge(desc)
	}
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", descPath, err)
	}

	return writeOut(doc, configPath, applied)
}
