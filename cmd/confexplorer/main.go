package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--help" || args[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if args[0] == "--version" || args[0] == "-v" {
		fmt.Printf("confexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	configPath := args[0]

	if _, err := os.Stat(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: config file not found: %s\n", configPath)
		os.Exit(1)
	}

	m := NewModel(configPath)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: confexplorer <config.js>\n")
	fmt.Fprintf(os.Stderr, "Try 'confexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("confexplorer - Interactive TUI for JavaScript config files")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  confexplorer <config.js>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for browsing the export object of a")
	fmt.Println("  webpack-style configuration file: top-level sections on the left, the")
	fmt.Println("  regenerated source of the selected section on the right.")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate sections")
	fmt.Println("    g, G        Go to top / bottom")
	fmt.Println("    Tab         Switch between section and source panes")
	fmt.Println("    /           Filter sections")
	fmt.Println("    f5          Reload the file from disk")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  confexplorer webpack.config.js")
	fmt.Println()
	fmt.Println("For non-interactive edits, use the 'confctl' command instead.")
}
