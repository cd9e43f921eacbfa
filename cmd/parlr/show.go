package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/parlr-dev/parlr/grammar"
	"github.com/parlr-dev/parlr/spec"
)

var showFlags = struct {
	states *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Compile a grammar and print its tables in a readable format",
		Example: `  parlr show grammar.parlr`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	showFlags.states = cmd.Flags().Bool("states", false, "also print every state with its items and transitions")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	src, err := readGrammarFile(args[0])
	if err != nil {
		return err
	}

	g, err := grammar.Compile(src)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	rep := g.Report()
	fmt.Printf("grammar %v: %v symbols, %v productions, %v states\n\n",
		rep.Name, len(rep.Terminals)+len(rep.NonTerminals), len(rep.Productions), len(rep.States))

	writeTerminals(rep)
	writeProductions(rep)
	if *showFlags.states {
		writeStates(rep)
	}

	return nil
}

func writeTerminals(rep *spec.Report) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"#", "Terminal", "Prec", "Assoc"})
	tw.SetAutoFormatHeaders(false)
	for _, t := range rep.Terminals {
		name := strconv.Quote(t.Name)
		if !t.Literal {
			name = "/" + t.Name + "/"
		}
		prec := ""
		if t.Precedence != 0 {
			prec = strconv.Itoa(t.Precedence)
		}
		tw.Append([]string{strconv.Itoa(t.Number), name, prec, t.Associativity})
	}
	tw.Render()
	fmt.Println()
}

func writeProductions(rep *spec.Report) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"#", "Production", "Prec", "Action"})
	tw.SetAutoFormatHeaders(false)
	for _, p := range rep.Productions {
		prec := ""
		if p.Precedence != 0 {
			prec = strconv.Itoa(p.Precedence)
		}
		tw.Append([]string{strconv.Itoa(p.Number), p.Text, prec, p.Action})
	}
	tw.Render()
	fmt.Println()
}

func writeStates(rep *spec.Report) {
	for _, s := range rep.States {
		fmt.Printf("state %v\n", s.Number)
		for _, it := range s.Items {
			fmt.Printf("  %v\n", it.Text)
		}
		for _, t := range s.Transitions {
			fmt.Printf("  on %v: %v %v\n", t.Symbol, t.Kind, t.Target)
		}
		fmt.Println()
	}
}
