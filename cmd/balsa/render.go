package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TylerLafayette/balsa"
	"github.com/TylerLafayette/balsa/pkg/params"
)

var (
	paramsFile string
	outputFile string
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Compile a template and render it with parameters from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&paramsFile, "params", "p", "", "YAML file with parameter values")
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	tmpl, err := balsa.CompileFile(args[0])
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "compile failed: %v\n", err)
		return err
	}

	p := params.New()
	if paramsFile != "" {
		p, err = loadParameters(paramsFile)
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "loading parameters: %v\n", err)
			return err
		}
	}

	output, err := tmpl.Render(p)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "render failed: %v\n", err)
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(output), 0o644)
	}
	fmt.Print(output)
	return nil
}

// loadParameters reads a flat YAML mapping into a parameter list. Scalar
// types map to template types: strings stay strings (colors are strings
// cast at render time), integers and floats keep their numeric type.
func loadParameters(path string) (*params.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}

	p := params.New()
	for key, value := range values {
		switch v := value.(type) {
		case string:
			p = p.String(key, v)
		case int:
			p = p.Int(key, int64(v))
		case int64:
			p = p.Int(key, v)
		case float64:
			p = p.Float(key, v)
		default:
			return nil, fmt.Errorf("parameter %q: unsupported value type %T", key, value)
		}
	}
	return p, nil
}
