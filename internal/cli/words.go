package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	tst "github.com/sarthakjha889/go-ternary-search-tree"
)

// WordList is embedded by commands that build a tree from a file.
type WordList struct {
	Words string `help:"Word list, one word per line. Blank lines and lines starting with # are skipped." type:"existingfile" required:"" short:"w"`
}

// load builds a tree from the word list. Lines the tree rejects are logged
// and skipped.
func (l WordList) load(log zerolog.Logger) (*tst.Tree, error) {
	file, err := os.Open(l.Words)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	tree := tst.New().WithLogger(log)
	scanner := bufio.NewScanner(file)
	lineNo, skipped := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := tree.Insert(line); err != nil {
			skipped++
			log.Warn().Err(err).Str("file", l.Words).Int("line", lineNo).Msg("Skipping word")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	log.Info().Str("file", l.Words).Int("words", tree.Size()).Int("skipped", skipped).Msg("Loaded word list")
	return tree, nil
}
