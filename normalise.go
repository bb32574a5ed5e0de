package tst

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// DefaultAlphabet is the set of runes a Tree accepts unless configured otherwise:
// letters, combining marks, decimal digits and the word-internal punctuation ' - _ .
var DefaultAlphabet runes.Set = runes.Predicate(func(r rune) bool {
	switch r {
	case '\'', '-', '_', '.':
		return true
	}
	return unicode.In(r, unicode.L, unicode.M, unicode.Nd)
})

// normaliser turns a caller supplied key into the rune sequence the tree stores.
// It never looks at nodes, so the alphabet and folding policy can change
// without touching traversal code.
type normaliser struct {
	fold     bool
	alphabet runes.Set
}

// normalise validates and folds key. An empty result is only accepted when
// allowEmpty is set, in which case it is returned as a nil slice.
func (n normaliser) normalise(key string, allowEmpty bool) ([]rune, error) {
	if !utf8.ValidString(key) {
		return nil, invalidInput(key, "not valid UTF-8")
	}
	entry := strings.TrimSpace(key)
	if n.fold {
		// a fresh Caser per call: Casers carry state and a Synced tree
		// normalises from several readers at once
		folded, _, err := transform.String(cases.Fold(), entry)
		if err != nil {
			return nil, invalidInput(key, "case folding failed: "+err.Error())
		}
		entry = folded
	}
	if entry == "" {
		if allowEmpty {
			return nil, nil
		}
		return nil, invalidInput(key, "empty key")
	}
	word := []rune(entry)
	for _, r := range word {
		if !n.alphabet.Contains(r) {
			return nil, invalidInput(key, fmt.Sprintf("unsupported character %q", r))
		}
	}
	return word, nil
}
