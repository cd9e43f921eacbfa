package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parlr",
	Short: "Generate LALR(1) parsing tables from a grammar",
	Long: `parlr compiles a grammar definition into LALR(1) parsing tables and a
scanner recognizing the grammar's terminals. It can also tokenize a
text stream with the compiled scanner, which is primarily aimed at
debugging the grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func readGrammarFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open the grammar file %s: %w", path, err)
	}
	return string(src), nil
}
