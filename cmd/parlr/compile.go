package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parlr-dev/parlr/grammar"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile a grammar into its parsing tables",
		Example: `  parlr compile grammar.parlr -o grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	src, err := readGrammarFile(args[0])
	if err != nil {
		return err
	}

	g, err := grammar.Compile(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out, err := json.MarshalIndent(g.Report(), "", "    ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if *compileFlags.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(*compileFlags.output, out, 0644)
}
