package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kodelint/nfalex/internal/cliformat"
	"github.com/kodelint/nfalex/rx"
	"github.com/kodelint/nfalex/sim"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>",
	Short: "Report whether input matches pattern in its entirety",
	Example: `  nfalex match "a*b" "aaab"
  nfalex match "[0-9]+" "x123" --output=json`,
	Args: cobra.ExactArgs(2),
	Run:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) {
	pattern, input := args[0], args[1]
	formatter := cliformat.NewFormatter(outputFormat, noColor)

	n, err := rx.Parse(pattern)
	if err != nil {
		formatter.PrintError("failed to parse pattern: %v", err)
		os.Exit(1)
	}

	matched := sim.Accepts(n, input)
	result := &cliformat.MatchResult{Pattern: pattern, Input: input, Matched: matched}
	if err := formatter.FormatMatch(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
	if !matched {
		os.Exit(1)
	}
}
