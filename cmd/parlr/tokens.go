package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parlr-dev/parlr/driver/scanner"
	"github.com/parlr-dev/parlr/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:     "tokens",
		Short:   "Compile a grammar and tokenize a text with its scanner",
		Example: `  parlr tokens grammar.parlr source.txt`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTokens,
	}
	rootCmd.AddCommand(cmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readGrammarFile(args[0])
	if err != nil {
		return err
	}
	g, err := grammar.Compile(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	input, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("cannot open the input file %s: %w", args[1], err)
	}

	s := scanner.New(g.DFA())
	syms := g.Symbols()
	offset := 0
	for offset < len(input) {
		res, ok := s.Scan(string(input), offset)
		if !ok {
			return fmt.Errorf("no token matches at offset %v", offset)
		}
		if res.Lexeme == "" {
			// Only a nullable whitespace pattern matches here; the
			// scan cannot make progress.
			return fmt.Errorf("no token matches at offset %v", offset)
		}
		offset += len(res.Lexeme)
		if res.Token == g.WhitespaceSymbol() {
			continue
		}
		fmt.Printf("%-20q %v\n", res.Lexeme, syms[res.Token].Name)
	}

	return nil
}
