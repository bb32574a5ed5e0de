package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/cli"
)

func main() {
	var c cli.CLI
	kctx := kong.Parse(&c,
		kong.Name("tst"),
		kong.Description("Ternary search tree tools: word list queries and benchmarks."),
		kong.UsageOnError(),
	)

	logger := cli.NewLogger(os.Stderr, c.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := kctx.Run(&cli.Context{Context: ctx, Out: os.Stdout, Log: logger}); err != nil {
		logger.Error().Err(err).Str("command", kctx.Command()).Msg("Command failed")
		stop()
		os.Exit(1)
	}
}
