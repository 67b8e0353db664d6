// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib"
	"github.com/nicferrier/nicrisp/parser"
)

// DefaultPrompt is the prompt used when RunRepl is given an empty prompt.
const DefaultPrompt = "risp> "

// Option configures RunRepl.
type Option func(c *config)

type config struct {
	historyFile string
	envConfig   []lisp.Config
	library     lisp.Loader
}

// WithHistoryFile makes the repl save input lines to path.
func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

// WithConfig adds configuration for the environment created by RunRepl.
func WithConfig(cfg ...lisp.Config) Option {
	return func(c *config) {
		c.envConfig = append(c.envConfig, cfg...)
	}
}

// WithLibrary makes the environment created by RunRepl load fn instead of
// lisplib.LoadLibrary.
func WithLibrary(fn lisp.Loader) Option {
	return func(c *config) {
		c.library = fn
	}
}

// NewEnv returns a root environment with config applied and then the
// standard library loaded.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	return newEnv(lisplib.LoadLibrary, config)
}

func newEnv(library lisp.Loader, config []lisp.Config) (*lisp.LEnv, error) {
	all := make([]lisp.Config, 0, len(config)+2)
	all = append(all, lisp.WithReader(parser.NewReader()))
	all = append(all, config...)
	all = append(all, lisp.WithLoader(library))
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env, all...)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// Session evaluates lines of input in a single environment.  Definitions
// made by one line are visible to all following lines, including those
// following a line that failed.
type Session struct {
	Env *lisp.LEnv
	Out io.Writer
}

// NewSession returns a Session which evaluates in env and writes results to
// out.
func NewSession(env *lisp.LEnv, out io.Writer) *Session {
	return &Session{Env: env, Out: out}
}

// EvalLine evaluates each expression in line and writes its value.  At the
// first error the reason is written and the rest of the line is skipped.  A
// line without expressions writes nothing.
func (s *Session) EvalLine(line string) {
	exprs, err := parser.ParseLVal([]byte(line))
	if err != nil {
		s.result(err)
		return
	}
	for _, expr := range exprs {
		v := s.Env.Eval(expr)
		s.result(v)
		if v.Type == lisp.LError {
			s.Env.Runtime.Logger.Debug("evaluation failed", "error", v.Str)
			return
		}
	}
}

func (s *Session) result(v interface{}) {
	fmt.Fprintf(s.Out, "=> %v\n", v)
}

// Run evaluates every line read from r until EOF.  Lines may be of any
// length.
func (s *Session) Run(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			s.EvalLine(strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// RunRepl reads lines from the terminal and evaluates them until EOF.  An
// interrupt discards the current line.
func RunRepl(prompt string, opts ...Option) error {
	c := &config{library: lisplib.LoadLibrary}
	for _, opt := range opts {
		opt(c)
	}
	env, err := newEnv(c.library, c.envConfig)
	if err != nil {
		return err
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: c.historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	session := NewSession(env, rl.Stdout())
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(rl.Stdout())
			return nil
		}
		if err != nil {
			return err
		}
		session.EvalLine(line)
	}
}
