package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report collects the results of a Runner.
type Report struct {
	Insert     []ScalingResult  `yaml:"insert"`
	Search     []ScalingResult  `yaml:"search"`
	Scenarios  []ScenarioResult `yaml:"scenarios"`
	Comparison *Comparison      `yaml:"comparison,omitempty"`
	Prefix     []PrefixResult   `yaml:"prefix"`
}

type ScalingResult struct {
	Words    int           `yaml:"words"`
	Duration time.Duration `yaml:"duration"`
	HeapMB   float64       `yaml:"heap_mb,omitempty"`
	Nodes    int           `yaml:"nodes,omitempty"`
	Height   int           `yaml:"height,omitempty"`
}

// Rate returns operations per second, or +Inf when nothing was measured.
func (s ScalingResult) Rate() float64 {
	return rate(s.Words, s.Duration)
}

type ScenarioResult struct {
	Name   string        `yaml:"name"`
	Words  int           `yaml:"words"`
	Height int           `yaml:"height"`
	Insert time.Duration `yaml:"insert"`
	Search time.Duration `yaml:"search"`
}

// Comparison holds timings of the tree against a map set and a plain slice.
type Comparison struct {
	Words      int           `yaml:"words"`
	TreeInsert time.Duration `yaml:"tree_insert"`
	TreeSearch time.Duration `yaml:"tree_search"`
	SetInsert  time.Duration `yaml:"set_insert"`
	SetSearch  time.Duration `yaml:"set_search"`
	ListInsert time.Duration `yaml:"list_insert"`
	ListSearch time.Duration `yaml:"list_search"`
}

type PrefixResult struct {
	Length   int           `yaml:"length"`
	Queries  int           `yaml:"queries"`
	Matches  int           `yaml:"matches"`
	Duration time.Duration `yaml:"duration"`
}

func rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return math.Inf(1)
	}
	return float64(n) / d.Seconds()
}

// WriteYAML encodes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// WriteText renders the report as a plain text document.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format+"\n", args...)
	}
	section := func(title string) {
		line("%s", title)
		line("%s", strings.Repeat("-", len(title)))
	}

	line("%s", strings.Repeat("=", 60))
	line("TERNARY SEARCH TREE PERFORMANCE ANALYSIS REPORT")
	line("%s", strings.Repeat("=", 60))
	line("")

	if len(r.Insert) > 0 {
		section("INSERT PERFORMANCE:")
		for _, res := range r.Insert {
			line("  %5d words: %.4fs (%.0f words/sec, %.2fMB, %d nodes, height %d)",
				res.Words, res.Duration.Seconds(), res.Rate(), res.HeapMB, res.Nodes, res.Height)
		}
		line("")
	}

	if len(r.Search) > 0 {
		section("SEARCH PERFORMANCE:")
		for _, res := range r.Search {
			line("  %5d words: %.4fs (%.0f searches/sec)", res.Words, res.Duration.Seconds(), res.Rate())
		}
		line("")
	}

	if len(r.Scenarios) > 0 {
		section("WORST CASE SCENARIOS:")
		for _, s := range r.Scenarios {
			line("  %s (%d words, height %d):", s.Name, s.Words, s.Height)
			line("    Insert: %.4fs", s.Insert.Seconds())
			line("    Search: %.4fs", s.Search.Seconds())
		}
		line("")
	}

	if c := r.Comparison; c != nil {
		section("COMPARISON WITH BUILT-IN STRUCTURES:")
		line("  %d words", c.Words)
		line("  TST    - Insert: %.4fs, Search: %.4fs", c.TreeInsert.Seconds(), c.TreeSearch.Seconds())
		line("  Map    - Insert: %.4fs, Search: %.4fs", c.SetInsert.Seconds(), c.SetSearch.Seconds())
		line("  Slice  - Insert: %.4fs, Search: %.4fs", c.ListInsert.Seconds(), c.ListSearch.Seconds())
		line("")
	}

	if len(r.Prefix) > 0 {
		section("PREFIX QUERIES:")
		for _, p := range r.Prefix {
			line("  length %d: %d queries, %d matches in %.4fs", p.Length, p.Queries, p.Matches, p.Duration.Seconds())
		}
		line("")
	}

	section("THEORETICAL COMPLEXITY ANALYSIS:")
	line("  Insert, Search, Delete:")
	line("    Average case: O(L + log n)")
	line("    Worst case:   O(L * k), k = alphabet size")
	line("  Prefix query:")
	line("    O(P + log n + M), M = size of the matching subtree")
	line("")
	line("NOTES:")
	line("- Insert/search times are influenced by input distribution.")
	line("- Heap usage is a runtime.MemStats delta and may vary per run.")
	line("- The slice suffers on search due to linear lookup time.")
	line("- The tree is optimised for prefix and near-prefix retrievals.")

	_, err := io.WriteString(w, sb.String())
	return err
}
