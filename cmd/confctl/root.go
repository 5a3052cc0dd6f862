package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/confkit-io/confkit/pkg/document"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "confctl",
	Short: "Rewrite JavaScript build-tool configuration files",
	Long: `confctl rewrites webpack-style configuration files in place by merging
settings into the parsed configuration object instead of patching text.
It can set options inside named sections, upsert plugin declarations, and
apply whole YAML change descriptions.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		BoolVarP(&dryRun, "dry-run", "n", false, "Print the rewritten config instead of writing it")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// writeOut saves the document, or prints it when --dry-run is set.
func writeOut(doc *document.Document, path string, applied document.Applied) error {
	if dryRun {
		fmt.Print(doc.Render())
		return nil
	}
	if err := doc.Save(path); err != nil {
		return err
	}
	printInfo("%s: %d change(s) applied\n", path, applied.Total())
	return nil
}

// parsePairs converts key=value arguments into an ordered description.
// Values go through the usual scalar coercion; with ident enabled,
// non-coercible values become bare identifier references instead of
// quoted strings.
func parsePairs(args []string, ident bool) (*document.Object, error) {
	desc := document.NewObject()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		if ident {
			desc.Set(key, document.Ident(value))
		} else {
			desc.Set(key, document.String(value))
		}
	}
	return desc, nil
}
