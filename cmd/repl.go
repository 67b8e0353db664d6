package cmd

import (
	"github.com/nicferrier/nicrisp/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  Each line is evaluated as it is read
and its values are printed.  Definitions survive errors.  The session ends at
end of input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(replPrompt, replHistory)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
		"Prompt displayed before each line")
	replCmd.Flags().StringVar(&replHistory, "history", "",
		"File to save input history in")
}
