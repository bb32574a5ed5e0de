package cli

import (
	"errors"
	"fmt"

	tst "github.com/sarthakjha889/go-ternary-search-tree"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/bench"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/config"
)

type BenchCmd struct {
	Config string `help:"Benchmark profile (YAML). Defaults apply when omitted." type:"path" short:"c"`
	Format string `help:"Report format, text or yaml. Overrides the profile."`
	Out    string `help:"Write the report to this file instead of stdout." type:"path" short:"o"`
}

// Run executes the bench command.
func (cmd *BenchCmd) Run(ctx *Context) error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Format != "" {
		cfg.Report.Format = cmd.Format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	report, err := bench.NewRunner(cfg, ctx.Log).Run(ctx)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd.Out, ctx.Out)
	if err != nil {
		return err
	}
	if cfg.Report.Format == "yaml" {
		err = report.WriteYAML(out)
	} else {
		err = report.WriteText(out)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err == nil && cmd.Out != "" {
		ctx.Log.Info().Str("file", cmd.Out).Msg("Saved report")
	}
	return err
}

type SearchCmd struct {
	WordList
	Queries []string `arg:"" help:"Words to look up."`
}

// Run executes the search command. Malformed queries are reported, not fatal.
func (cmd *SearchCmd) Run(ctx *Context) error {
	tree, err := cmd.load(ctx.Log)
	if err != nil {
		return err
	}
	for _, q := range cmd.Queries {
		found, err := tree.Search(q)
		switch {
		case errors.Is(err, tst.ErrInvalidInput):
			ctx.Log.Warn().Err(err).Msg("Invalid query")
			fmt.Fprintf(ctx.Out, "%s\tinvalid\n", q)
		case err != nil:
			return err
		case found:
			fmt.Fprintf(ctx.Out, "%s\tfound\n", q)
		default:
			fmt.Fprintf(ctx.Out, "%s\tabsent\n", q)
		}
	}
	return nil
}

type PrefixCmd struct {
	WordList
	Prefix string `arg:"" optional:"" help:"Prefix to match. Lists every word when omitted."`
	Limit  int    `help:"Stop after this many words; 0 means no limit." default:"0" short:"n"`
}

// Run executes the prefix command.
func (cmd *PrefixCmd) Run(ctx *Context) error {
	tree, err := cmd.load(ctx.Log)
	if err != nil {
		return err
	}
	words, err := tree.WithPrefix(cmd.Prefix)
	if err != nil {
		return err
	}
	n := 0
	for word := range words {
		if cmd.Limit > 0 && n == cmd.Limit {
			break
		}
		fmt.Fprintln(ctx.Out, word)
		n++
	}
	ctx.Log.Debug().Str("prefix", cmd.Prefix).Int("matches", n).Msg("Prefix query")
	return nil
}

type TreeCmd struct {
	WordList
}

// Run executes the tree command.
func (cmd *TreeCmd) Run(ctx *Context) error {
	tree, err := cmd.load(ctx.Log)
	if err != nil {
		return err
	}
	fmt.Fprint(ctx.Out, tree.String())
	fmt.Fprintln(ctx.Out, tree.Summary())
	return nil
}
