package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kodelint/nfalex/internal/cliformat"
	"github.com/kodelint/nfalex/lexer"
)

var lexSpecPath string

var lexCmd = &cobra.Command{
	Use:   "lex <input>",
	Short: "Tokenize input against a lexer spec loaded from --spec",
	Example: `  nfalex lex "123 + foo" --spec=tokens.lex`,
	Args: cobra.ExactArgs(1),
	Run:  runLex,
}

func init() {
	lexCmd.Flags().StringVar(&lexSpecPath, "spec", "", "Path to a tab-separated <regex>\\t<token-name> spec file")
	_ = lexCmd.MarkFlagRequired("spec")
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) {
	input := []rune(args[0])
	formatter := cliformat.NewFormatter(outputFormat, noColor)

	specBytes, err := os.ReadFile(lexSpecPath)
	if err != nil {
		formatter.PrintError("failed to read spec file: %v", err)
		os.Exit(1)
	}

	l := lexer.New()
	if err := l.Load(string(specBytes)); err != nil {
		formatter.PrintError("failed to load lexer spec: %v", err)
		os.Exit(1)
	}

	result := &cliformat.LexResult{}
	pos := 0
	for pos < len(input) {
		name, length := l.Yylex(input[pos:])
		if length < 0 {
			result.Remainder = string(input[pos:])
			break
		}
		if length == 0 {
			// An empty-match rule can't advance the scan; surface the
			// rest of the input as unrecognized rather than looping.
			result.Remainder = string(input[pos:])
			break
		}
		result.Tokens = append(result.Tokens, cliformat.TokenView{
			Name: name,
			Text: string(input[pos : pos+length]),
		})
		pos += length
	}

	if err := formatter.FormatLex(result); err != nil {
		formatter.PrintError("failed to format output: %v", err)
		os.Exit(1)
	}
	if result.Remainder != "" {
		os.Exit(1)
	}
}
