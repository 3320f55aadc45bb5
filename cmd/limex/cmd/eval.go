package cmd

import (
	"fmt"
	"os"

	"github.com/bpmn-os/limex"
	"github.com/bpmn-os/limex/value"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	evalVarsFile string
	evalVarsJSON string
	evalFormat   string
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a LIMEX expression",
	Long: `Lex, build and evaluate a LIMEX expression against a set of variable and
collection bindings, then print the result.

Bindings come from a YAML file (--vars) or an inline JSON object
(--vars-json), either shaped as:

  variables:
    x: 3
    y: 4
  collections:
    data: [1, 2, 3]

Examples:
  limex eval script.limex --vars bindings.yaml
  limex eval -e "z -= sqrt(x^2 + y^2)" --vars-json '{"variables":{"x":3,"y":4,"z":5}}'
  limex eval -e "sum{data[]}" --vars-json '{"collections":{"data":[1,2,3]}}' --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
	evalCmd.Flags().StringVar(&evalVarsFile, "vars", "", "YAML file binding variables/collections")
	evalCmd.Flags().StringVar(&evalVarsJSON, "vars-json", "", "inline JSON binding variables/collections")
	evalCmd.Flags().StringVar(&evalFormat, "format", "text", "output format: text or json")
}

type bindings struct {
	Variables   map[string]float64   `yaml:"variables" json:"variables"`
	Collections map[string][]float64 `yaml:"collections" json:"collections"`
}

func runEval(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	expr, err := limex.NewFloat64(source)
	if err != nil {
		return err
	}

	b, err := loadBindings()
	if err != nil {
		return err
	}

	varNames := expr.Variables()
	vars := make([]value.Float64, len(varNames))
	for i, name := range varNames {
		f, ok := b.Variables[name]
		if !ok {
			return fmt.Errorf("missing binding for variable %q", name)
		}
		vars[i] = value.Float64(f)
	}

	collNames := expr.Collections()
	colls := make([][]value.Float64, len(collNames))
	for i, name := range collNames {
		raw, ok := b.Collections[name]
		if !ok {
			return fmt.Errorf("missing binding for collection %q", name)
		}
		elems := make([]value.Float64, len(raw))
		for j, f := range raw {
			elems[j] = value.Float64(f)
		}
		colls[i] = elems
	}

	result, err := expr.Evaluate(vars, colls)
	if err != nil {
		return err
	}

	if evalFormat == "json" {
		out, err := sjson.Set("{}", "result", float64(result))
		if err != nil {
			return err
		}
		if name, ok := expr.Target(); ok {
			out, err = sjson.Set(out, "target", name)
			if err != nil {
				return err
			}
		}
		fmt.Println(out)
		return nil
	}

	if name, ok := expr.Target(); ok {
		fmt.Printf("%s = %s\n", name, result.String())
		return nil
	}
	fmt.Println(result.String())
	return nil
}

func loadBindings() (bindings, error) {
	b := bindings{Variables: map[string]float64{}, Collections: map[string][]float64{}}

	switch {
	case evalVarsFile != "":
		data, err := os.ReadFile(evalVarsFile)
		if err != nil {
			return b, fmt.Errorf("failed to read bindings file %s: %w", evalVarsFile, err)
		}
		if err := yaml.Unmarshal(data, &b); err != nil {
			return b, fmt.Errorf("invalid YAML bindings: %w", err)
		}
	case evalVarsJSON != "":
		if !gjson.Valid(evalVarsJSON) {
			return b, fmt.Errorf("--vars-json is not valid JSON")
		}
		root := gjson.Parse(evalVarsJSON)
		root.Get("variables").ForEach(func(k, v gjson.Result) bool {
			b.Variables[k.String()] = v.Float()
			return true
		})
		root.Get("collections").ForEach(func(k, v gjson.Result) bool {
			var elems []float64
			v.ForEach(func(_, e gjson.Result) bool {
				elems = append(elems, e.Float())
				return true
			})
			b.Collections[k.String()] = elems
			return true
		})
	}
	return b, nil
}
