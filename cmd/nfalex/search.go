package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kodelint/nfalex/internal/cliformat"
	"github.com/kodelint/nfalex/rx"
	"github.com/kodelint/nfalex/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <pattern> <input>",
	Short: "Find all longest-leftmost matches of pattern in input",
	Example: `  nfalex search "[a-z]+" "foo 123 bar"
  nfalex search "a" "aaa" --overlap`,
	Args: cobra.ExactArgs(2),
	Run:  runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&greedy, "greedy", false, "Stop after the first match")
	searchCmd.Flags().BoolVar(&overlap, "overlap", false, "Resume scanning one position after each match start, so matches may overlap")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	pattern, input := args[0], args[1]
	formatter := cliformat.NewFormatter(outputFormat, noColor)

	n, err := rx.Parse(pattern)
	if err != nil {
		formatter.PrintError("failed to parse pattern: %v", err)
		os.Exit(1)
	}

	runes := []rune(input)
	hits := search.Search(n, input, greedy, overlap)

	views := make([]cliformat.HitView, len(hits))
	for i, h := range hits {
		views[i] = cliformat.HitView{
			Start:  h.Start,
			Length: h.Length,
			Text:   string(runes[h.Start : h.Start+h.Length]),
		}
	}

	result := &cliformat.SearchResult{Pattern: pattern, Input: input, Hits: views}
	if err := formatter.FormatSearch(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
	if len(hits) == 0 {
		os.Exit(1)
	}
}
