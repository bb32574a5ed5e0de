package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wordList = `# animals
cat
Cats

dog
car
not a word
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var grammar CLI
	parser, err := kong.New(&grammar, kong.Name("tst"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	err = kctx.Run(&Context{Context: context.Background(), Out: &out, Log: zerolog.Nop()})
	return out.String(), err
}

func writeWords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(wordList), 0o644))
	return path
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "search", "--words", writeWords(t), "CAT", "ca", "cats", "two words")
	require.NoError(t, err)
	assert.Equal(t, "CAT\tfound\nca\tabsent\ncats\tfound\ntwo words\tinvalid\n", out)
}

func TestPrefixCmd(t *testing.T) {
	words := writeWords(t)

	out, err := run(t, "prefix", "-w", words, "ca")
	require.NoError(t, err)
	assert.Equal(t, "car\ncat\ncats\n", out)

	out, err = run(t, "prefix", "-w", words)
	require.NoError(t, err)
	assert.Equal(t, "car\ncat\ncats\ndog\n", out)

	out, err = run(t, "prefix", "-w", words, "--limit", "2", "ca")
	require.NoError(t, err)
	assert.Equal(t, "car\ncat\n", out)

	out, err = run(t, "prefix", "-w", words, "zz")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTreeCmd(t *testing.T) {
	out, err := run(t, "tree", "-w", writeWords(t))
	require.NoError(t, err)
	assert.Contains(t, out, "root 'c' end=false")
	assert.Contains(t, out, "TernarySearchTree(words=4, height=")
}

func TestBenchCmd(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(profile, []byte(`
scaling:
  counts: [10, 20]
scenarios:
  size: 20
  search_sample: 5
comparison:
  words: 20
`), 0o644))

	out, err := run(t, "bench", "--config", profile)
	require.NoError(t, err)
	assert.Contains(t, out, "TERNARY SEARCH TREE PERFORMANCE ANALYSIS REPORT")

	report := filepath.Join(dir, "report.yaml")
	out, err = run(t, "bench", "-c", profile, "--format", "yaml", "-o", report)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scenarios:")

	_, err = run(t, "bench", "-c", profile, "--format", "html")
	assert.ErrorContains(t, err, "unknown report format")
}

func TestParseErrors(t *testing.T) {
	_, err := run(t, "search", "--words", filepath.Join(t.TempDir(), "missing.txt"), "cat")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "tree", "-w", writeWords(t))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, NewLogger(&buf, "nonsense").GetLevel())
}
