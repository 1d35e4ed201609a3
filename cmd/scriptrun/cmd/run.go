package cmd

import (
	"fmt"

	"github.com/shiroscript/shiro/internal/runtime"
	"github.com/shiroscript/shiro/internal/value"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a shiro script file or an inline expression",
	Long: `Execute a shiro program from a file or inline expression.

Examples:
  # Run a script file
  scriptrun run script.shiro

  # Evaluate an inline expression
  scriptrun run -e "use \"@std/io\" as io; io.println(\"hello\");"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	rt := runtime.New()

	var result value.Value
	var err error

	switch {
	case evalExpr != "":
		result, err = rt.EvalString(evalExpr)
	case len(args) == 1:
		result, err = rt.EvalFile(args[0])
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if err != nil {
		rt.ReportError(err)
		return fmt.Errorf("execution failed")
	}

	if result != value.Null {
		fmt.Println(result.ToString())
	}
	return nil
}
