package bench

import (
	"fmt"
	"math/rand"
	"sort"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Generator produces reproducible word lists for a given seed.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) word(minLen, maxLen int) string {
	b := make([]byte, minLen+g.rnd.Intn(maxLen-minLen+1))
	for i := range b {
		b[i] = letters[g.rnd.Intn(len(letters))]
	}
	return string(b)
}

// RandomWords returns up to count distinct lowercase words with lengths in
// [minLen, maxLen], in generation order. Duplicates are dropped, so short
// length ranges can return fewer than count words.
func (g *Generator) RandomWords(count, minLen, maxLen int) []string {
	seen := make(map[string]struct{}, count)
	words := make([]string, 0, count)
	for i := 0; i < count; i++ {
		w := g.word(minLen, maxLen)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// SimilarWords returns count words that all start with base; the first is
// base itself.
func (g *Generator) SimilarWords(count int, base string) []string {
	words := make([]string, 0, count)
	if count == 0 {
		return words
	}
	words = append(words, base)
	for i := 1; i < count; i++ {
		words = append(words, base+g.word(1, 5))
	}
	return words
}

// ReverseSorted returns random words in descending order, the worst case for
// an unbalanced first level.
func (g *Generator) ReverseSorted(count, minLen, maxLen int) []string {
	words := g.RandomWords(count, minLen, maxLen)
	sort.Sort(sort.Reverse(sort.StringSlice(words)))
	return words
}

// SequentialWords returns word000000, word000001 and so on.
func SequentialWords(count int) []string {
	words := make([]string, count)
	for i := range words {
		words[i] = fmt.Sprintf("word%06d", i)
	}
	return words
}

// SingleChars returns the letters a to z, repeated times over.
func SingleChars(repeat int) []string {
	words := make([]string, 0, repeat*len(letters))
	for i := 0; i < repeat; i++ {
		for _, c := range letters {
			words = append(words, string(c))
		}
	}
	return words
}
