package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vardecl/internal/diagfmt"
	"vardecl/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.var|-]",
	Short: "Tokenize a declaration",
	Long:  `Tokenize breaks a declaration into its lexemes with character positions`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var result *driver.TokenizeResult
	if path := inputArg(args); path == "-" {
		content, err := readStdin(stdin)
		if err != nil {
			return err
		}
		result = driver.TokenizeBytes(stdinName, content)
	} else {
		result, err = driver.Tokenize(path)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet, result.File.ID)
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
