package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodelint/nfalex/internal/cliformat"
	"github.com/kodelint/nfalex/persist"
	"github.com/kodelint/nfalex/rx"
)

var dotCmd = &cobra.Command{
	Use:   "dot <pattern>",
	Short: "Render the NFA compiled from pattern as Graphviz dot",
	Example: `  nfalex dot "a(b|c)*" > nfa.dot`,
	Args: cobra.ExactArgs(1),
	Run:  runDot,
}

func init() {
	rootCmd.AddCommand(dotCmd)
}

func runDot(cmd *cobra.Command, args []string) {
	pattern := args[0]
	formatter := cliformat.NewFormatter(outputFormat, noColor)

	n, err := rx.Parse(pattern)
	if err != nil {
		formatter.PrintError("failed to parse pattern: %v", err)
		os.Exit(1)
	}

	fmt.Print(persist.ToDot(n))
}
