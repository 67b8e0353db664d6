package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libhttp"
	"github.com/nicferrier/nicrisp/parser"
	"github.com/nicferrier/nicrisp/repl"
	"github.com/spf13/cobra"
)

var (
	rootVerbose     bool
	rootHTTPTimeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nicrisp",
	Short: "A small lisp interpreter",
	Long: `A small lisp interpreter with procedures for fetching and reading
JSON documents.  Without a subcommand an interactive repl is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(repl.DefaultPrompt, "")
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// envConfig returns the environment configuration set by the global flags.
func envConfig() []lisp.Config {
	level := slog.LevelWarn
	if rootVerbose {
		level = slog.LevelDebug
	}
	return []lisp.Config{
		lisp.WithStderr(os.Stderr),
		lisp.WithLogLevel(level),
	}
}

func library() lisp.Loader {
	return lisplib.Loader(libhttp.WithTimeout(rootHTTPTimeout))
}

// newEnv returns an environment configured by the global flags.
func newEnv() (*lisp.LEnv, error) {
	config := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, envConfig()...)
	config = append(config, lisp.WithLoader(library()))
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env, config...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize lisp environment: %w", err)
	}
	return env, nil
}

func runRepl(prompt, history string) error {
	return repl.RunRepl(prompt,
		repl.WithConfig(envConfig()...),
		repl.WithLibrary(library()),
		repl.WithHistoryFile(history))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Log debugging information to stderr")
	rootCmd.PersistentFlags().DurationVar(&rootHTTPTimeout, "http-timeout", libhttp.DefaultTimeout,
		"Maximum duration of each httpget request")
}
