package lisp

import (
	"io"
	"log/slog"
	"os"
)

// Runtime is the state shared by a root environment and every environment
// derived from it.
type Runtime struct {
	Stderr   io.Writer
	LogLevel *slog.LevelVar
	Logger   *slog.Logger
	Reader   Reader

	customLogger bool
}

// StandardRuntime returns a new Runtime that writes diagnostics to os.Stderr
// and logs warnings and above.
func StandardRuntime() *Runtime {
	rt := &Runtime{
		LogLevel: new(slog.LevelVar),
	}
	rt.LogLevel.Set(slog.LevelWarn)
	rt.setStderr(os.Stderr)
	return rt
}

// setStderr directs diagnostics to w.  A logger installed with WithLogger is
// left in place.
func (rt *Runtime) setStderr(w io.Writer) {
	rt.Stderr = w
	if rt.customLogger {
		return
	}
	rt.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: rt.LogLevel,
	}))
}
