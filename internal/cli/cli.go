package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Context is bound to every command's Run method.
type Context struct {
	context.Context
	Out io.Writer
	Log zerolog.Logger
}

type Globals struct {
	LogLevel string `help:"Log level." default:"info" enum:"trace,debug,info,warn,error"`
}

// CLI is the command tree of the tst binary.
type CLI struct {
	Globals

	Bench  BenchCmd  `cmd:"" help:"Run the benchmark suite and print a report."`
	Search SearchCmd `cmd:"" help:"Look up words in a word list."`
	Prefix PrefixCmd `cmd:"" help:"List the words of a word list starting with a prefix."`
	Tree   TreeCmd   `cmd:"" help:"Print the node structure built from a word list."`
}

// NewLogger returns a console logger writing to w at the named level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}

func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
