package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/nicferrier/nicrisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file|expression]...",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.  All
arguments are evaluated in a single environment, in order.  Evaluation stops
at the first error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := runReadExpressions(args)
		if err != nil {
			return err
		}

		env, err := newEnv()
		if err != nil {
			return err
		}
		var w io.Writer
		if runPrint {
			w = cmd.OutOrStdout()
		}
		for i := range exprs {
			_, err := parser.Eval(env, w, exprs[i])
			if err != nil {
				return fmt.Errorf("%s: %w", runSourceName(args, i), err)
			}
		}
		return nil
	},
}

func runSourceName(args []string, i int) string {
	if runExpression {
		return fmt.Sprintf("expression %d", i+1)
	}
	return args[i]
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
