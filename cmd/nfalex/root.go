package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outputFormat string
	noColor      bool
	greedy       bool
	overlap      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nfalex",
	Short: "A regex-to-NFA compiler, simulator, and longest-match lexer",
	Long: `nfalex compiles regular expressions to Thompson-construction NFAs,
simulates them over input, searches text for longest-leftmost matches, and
drives a table-driven longest-match lexer from a pattern/token-name spec.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json|table)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
