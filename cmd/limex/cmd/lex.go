package cmd

import (
	"fmt"

	"github.com/bpmn-os/limex/internal/lexer"
	"github.com/bpmn-os/limex/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexShowPos  bool
	lexShowKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the grouped token tree for a LIMEX expression",
	Long: `Tokenize a LIMEX expression and print the resulting token tree, indented
by nesting depth.

Examples:
  limex lex script.limex
  limex lex -e "sum{data[]} / count(data)"
  limex lex --show-kind --show-pos -e "x := y + 1"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:column")
	lexCmd.Flags().BoolVar(&lexShowKind, "show-kind", false, "show each token's category and kind")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	lx := lexer.New(source)
	root, errs := lx.Tokenize()

	for _, child := range root.Children {
		printToken(child, 0)
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Printf("lex error: %s\n", e.Error())
		}
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}
	return nil
}

func printToken(tok token.Token, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	line := fmt.Sprintf("%s%q", indent, tok.Value)
	if lexShowKind {
		line += fmt.Sprintf("  [%s/%s]", tok.Category, tok.Kind)
	}
	if lexShowPos {
		line += fmt.Sprintf("  @%s", tok.Pos)
	}
	fmt.Println(line)
	for _, child := range tok.Children {
		printToken(child, depth+1)
	}
}
