package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) error

// Loader is a function that loads native procedures into an environment.
type Loader func(env *LEnv) error

// InitializeUserEnv binds the default builtins in env and then applies config.
// Because builtins are bound first a Loader given through WithLoader may not
// redefine a default builtin.
func InitializeUserEnv(env *LEnv, config ...Config) error {
	err := env.AddBuiltins()
	if err != nil {
		return err
	}
	for _, fn := range config {
		err := fn(env)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithLoader returns a Config that executes fn.
func WithLoader(fn Loader) Config {
	return func(env *LEnv) error {
		return fn(env)
	}
}

// WithBuiltins returns a Config that binds funs in the environment.
func WithBuiltins(funs ...LBuiltinDef) Config {
	return func(env *LEnv) error {
		if len(funs) == 0 {
			return nil
		}
		return env.AddBuiltins(funs...)
	}
}

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) error {
		env.Runtime.Reader = r
		return nil
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) error {
		env.Runtime.setStderr(w)
		return nil
	}
}

// WithLogLevel returns a Config that sets the minimum level of messages
// written by the runtime's logger.
func WithLogLevel(level slog.Level) Config {
	return func(env *LEnv) error {
		env.Runtime.LogLevel.Set(level)
		return nil
	}
}

// WithLogger returns a Config that replaces the runtime's logger.  The logger
// is not affected by WithStderr or WithLogLevel, whichever order the configs
// are applied in.
func WithLogger(logger *slog.Logger) Config {
	return func(env *LEnv) error {
		env.Runtime.Logger = logger
		env.Runtime.customLogger = true
		return nil
	}
}
