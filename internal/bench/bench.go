package bench

import (
	"context"
	"runtime"
	"slices"
	"time"

	"github.com/rs/zerolog"
	tst "github.com/sarthakjha889/go-ternary-search-tree"
	"github.com/sarthakjha889/go-ternary-search-tree/internal/config"
)

// Runner times tree operations over generated word lists. It only uses the
// public API of the tree.
type Runner struct {
	cfg *config.Config
	gen *Generator
	log zerolog.Logger
}

// NewRunner creates a Runner for cfg.
func NewRunner(cfg *config.Config, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg: cfg,
		gen: NewGenerator(cfg.Seed),
		log: logger,
	}
}

// Run executes every benchmark in turn. It stops between steps when ctx is done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	steps := []struct {
		name string
		run  func(*Report) error
	}{
		{"insert scaling", r.insertScaling},
		{"search scaling", r.searchScaling},
		{"worst case scenarios", r.scenarios},
		{"comparison", r.comparison},
		{"prefix queries", r.prefixQueries},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.log.Info().Str("step", step.name).Msg("Benchmarking")
		if err := step.run(report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (r *Runner) randomWords(count int) []string {
	return r.gen.RandomWords(count, r.cfg.Scaling.MinLength, r.cfg.Scaling.MaxLength)
}

func (r *Runner) insertScaling(report *Report) error {
	for _, count := range r.cfg.Scaling.Counts {
		words := r.randomWords(count)

		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)

		tree := tst.New()
		start := time.Now()
		for _, w := range words {
			if err := tree.Insert(w); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		runtime.ReadMemStats(&after)
		var heap uint64
		if after.HeapAlloc > before.HeapAlloc {
			heap = after.HeapAlloc - before.HeapAlloc
		}

		result := ScalingResult{
			Words:    len(words),
			Duration: elapsed,
			HeapMB:   float64(heap) / 1024 / 1024,
			Nodes:    tree.Nodes(),
			Height:   tree.Height(),
		}
		report.Insert = append(report.Insert, result)
		r.log.Debug().Int("words", result.Words).Dur("elapsed", elapsed).Float64("heap_mb", result.HeapMB).Msg("insert")
	}
	return nil
}

func (r *Runner) searchScaling(report *Report) error {
	for _, count := range r.cfg.Scaling.Counts {
		words := r.randomWords(count)
		tree := tst.New()
		if err := tree.InsertAll(words...); err != nil {
			return err
		}

		start := time.Now()
		for _, w := range words {
			if _, err := tree.Search(w); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)

		report.Search = append(report.Search, ScalingResult{Words: len(words), Duration: elapsed})
		r.log.Debug().Int("words", len(words)).Dur("elapsed", elapsed).Msg("search")
	}
	return nil
}

func (r *Runner) scenarios(report *Report) error {
	size := r.cfg.Scenarios.Size
	scenarios := []struct {
		name  string
		words []string
	}{
		{"sequential", SequentialWords(size)},
		{"similar_prefixes", r.gen.SimilarWords(size, "commonprefix")},
		{"single_chars", SingleChars(40)},
		{"reverse_sorted", r.gen.ReverseSorted(size, r.cfg.Scaling.MinLength, r.cfg.Scaling.MaxLength)},
	}
	for _, s := range scenarios {
		tree := tst.New()
		start := time.Now()
		for _, w := range s.words {
			if err := tree.Insert(w); err != nil {
				return err
			}
		}
		insert := time.Since(start)

		sample := s.words[:min(len(s.words), r.cfg.Scenarios.SearchSample)]
		start = time.Now()
		for _, w := range sample {
			if _, err := tree.Search(w); err != nil {
				return err
			}
		}
		search := time.Since(start)

		report.Scenarios = append(report.Scenarios, ScenarioResult{
			Name:   s.name,
			Insert: insert,
			Search: search,
			Words:  tree.Size(),
			Height: tree.Height(),
		})
		r.log.Debug().Str("scenario", s.name).Dur("insert", insert).Dur("search", search).Msg("scenario")
	}
	return nil
}

func (r *Runner) comparison(report *Report) error {
	words := r.randomWords(r.cfg.Comparison.Words)
	c := &Comparison{Words: len(words)}

	tree := tst.New()
	start := time.Now()
	for _, w := range words {
		if err := tree.Insert(w); err != nil {
			return err
		}
	}
	c.TreeInsert = time.Since(start)
	start = time.Now()
	for _, w := range words {
		tree.Contains(w)
	}
	c.TreeSearch = time.Since(start)

	set := make(map[string]struct{})
	start = time.Now()
	for _, w := range words {
		set[w] = struct{}{}
	}
	c.SetInsert = time.Since(start)
	start = time.Now()
	for _, w := range words {
		_ = set[w]
	}
	c.SetSearch = time.Since(start)

	var list []string
	start = time.Now()
	for _, w := range words {
		if !slices.Contains(list, w) {
			list = append(list, w)
		}
	}
	c.ListInsert = time.Since(start)
	start = time.Now()
	for _, w := range words {
		slices.Contains(list, w)
	}
	c.ListSearch = time.Since(start)

	report.Comparison = c
	return nil
}

func (r *Runner) prefixQueries(report *Report) error {
	words := r.randomWords(r.cfg.Comparison.Words)
	tree := tst.New()
	if err := tree.InsertAll(words...); err != nil {
		return err
	}

	for length := 1; length <= 3; length++ {
		result := PrefixResult{Length: length}
		start := time.Now()
		for _, w := range words {
			if len(w) < length {
				continue
			}
			matches, err := tree.PrefixSearch(w[:length])
			if err != nil {
				return err
			}
			result.Queries++
			result.Matches += len(matches)
		}
		result.Duration = time.Since(start)
		report.Prefix = append(report.Prefix, result)
	}
	return nil
}
