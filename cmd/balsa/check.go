package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TylerLafayette/balsa"
	"github.com/TylerLafayette/balsa/pkg/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check <template>",
	Short: "Compile a template and report its parameters and constants",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	tmpl, err := balsa.CompileFile(args[0])
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "compile failed: %v\n", err)
		return err
	}

	compiled := tmpl.Compiled()
	heading := color.New(color.FgCyan, color.Bold)

	heading.Println("Parameters")
	for _, instruction := range compiled.Instructions() {
		if instruction.ReplaceWith != compiler.ReplaceWithParameter {
			continue
		}
		p := instruction.Parameter
		line := fmt.Sprintf("  %s : %s", p.Name, p.Type)
		if p.Default != nil {
			line += fmt.Sprintf(" (default %s)", p.Default)
		}
		fmt.Println(line)
	}

	scope := compiled.GlobalScope()
	if len(scope) > 0 {
		names := make([]string, 0, len(scope))
		for name := range scope {
			names = append(names, name)
		}
		sort.Strings(names)

		heading.Println("Constants")
		for _, name := range names {
			value := scope[name]
			fmt.Printf("  %s : %s = %s\n", name, value.Type(), value)
		}
	}

	color.New(color.FgGreen).Println("template OK")
	return nil
}
