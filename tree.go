package tst

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/runes"
)

// Tree is a ternary search tree storing a set of words. Keys are case folded
// by default, so "Cat" and "cat" name the same word.
//
// A Tree is not safe for concurrent use; wrap it in a Synced when it is shared.
type Tree struct {
	root  *node
	count int
	normaliser
	log zerolog.Logger
}

// New creates a new empty tree. By default keys are case folded and checked
// against DefaultAlphabet, and nothing is logged.
func New() *Tree {
	t := &Tree{log: zerolog.Nop()}
	t.WithAlphabet(DefaultAlphabet)
	t.CaseInsensitive()
	return t
}

// CaseSensitive sets the Tree to store keys exactly as given.
// It panics if the tree already holds words.
func (t *Tree) CaseSensitive() *Tree {
	t.mustBeEmpty("CaseSensitive")
	t.fold = false
	return t
}

// CaseInsensitive sets the Tree to case fold every key. This is the default.
// It panics if the tree already holds words.
func (t *Tree) CaseInsensitive() *Tree {
	t.mustBeEmpty("CaseInsensitive")
	t.fold = true
	return t
}

// WithAlphabet replaces the set of runes keys may contain. The set is checked
// after case folding.
// It panics if set is nil or the tree already holds words.
func (t *Tree) WithAlphabet(set runes.Set) *Tree {
	if set == nil {
		panic("tst: nil alphabet")
	}
	t.mustBeEmpty("WithAlphabet")
	t.alphabet = set
	return t
}

// WithLogger sets the logger used for debug events such as node pruning.
func (t *Tree) WithLogger(logger zerolog.Logger) *Tree {
	t.log = logger
	return t
}

func (t *Tree) mustBeEmpty(op string) {
	if t.root != nil {
		panic("tst: " + op + " called on a non-empty tree")
	}
}

// Insert adds word to the tree. Inserting a word that is already stored is a
// no-op. The only error is an *InvalidInputError for a malformed word.
func (t *Tree) Insert(word string) error {
	key, err := t.normalise(word, false)
	if err != nil {
		return err
	}
	t.insert(key)
	return nil
}

// InsertAll inserts every word, or none of them if any word is malformed.
func (t *Tree) InsertAll(words ...string) error {
	keys := make([][]rune, 0, len(words))
	for _, word := range words {
		key, err := t.normalise(word, false)
		if err != nil {
			return err
		}
		keys = append(keys, key)
	}
	for _, key := range keys {
		t.insert(key)
	}
	return nil
}

func (t *Tree) insert(key []rune) {
	created := 0
	slot := &t.root
	for i := 0; ; {
		n := *slot
		if n == nil {
			n = &node{char: key[i]}
			*slot = n
			created++
		}
		switch c := key[i]; {
		case c < n.char:
			slot = &n.lo
		case c > n.char:
			slot = &n.hi
		default:
			if i == len(key)-1 {
				if !n.end {
					n.end = true
					t.count++
					t.log.Debug().Str("word", string(key)).Int("created", created).Msg("inserted word")
				}
				return
			}
			i++
			slot = &n.eq
		}
	}
}

// Search reports whether word is stored. A word that is only a prefix of
// stored words is not found.
func (t *Tree) Search(word string) (bool, error) {
	key, err := t.normalise(word, false)
	if err != nil {
		return false, err
	}
	n := t.find(key)
	return n != nil && n.end, nil
}

// Contains is like Search but treats a malformed word as absent.
func (t *Tree) Contains(word string) bool {
	found, err := t.Search(word)
	return err == nil && found
}

// find returns the node of key's last character, or nil if the path is missing.
func (t *Tree) find(key []rune) *node {
	n := t.root
	for i := 0; n != nil; {
		switch c := key[i]; {
		case c < n.char:
			n = n.lo
		case c > n.char:
			n = n.hi
		default:
			if i == len(key)-1 {
				return n
			}
			i++
			n = n.eq
		}
	}
	return nil
}

// Delete removes word from the tree and reports whether it was stored.
// Nodes left serving no other word are discarded.
func (t *Tree) Delete(word string) (bool, error) {
	key, err := t.normalise(word, false)
	if err != nil {
		return false, err
	}
	path := t.path(key)
	if path == nil {
		return false, nil
	}
	terminal := *path[len(path)-1]
	if !terminal.end {
		return false, nil
	}
	terminal.end = false
	t.count--
	pruned := prune(path)
	t.log.Debug().Str("word", string(key)).Int("pruned", pruned).Msg("deleted word")
	return true, nil
}

// path returns every slot visited while descending to key's last character,
// root slot first. The last slot owns the terminal node. A nil path means key
// is not in the tree.
func (t *Tree) path(key []rune) []**node {
	slots := make([]**node, 0, len(key))
	slot := &t.root
	for i := 0; *slot != nil; {
		n := *slot
		slots = append(slots, slot)
		switch c := key[i]; {
		case c < n.char:
			slot = &n.lo
		case c > n.char:
			slot = &n.hi
		default:
			if i == len(key)-1 {
				return slots
			}
			i++
			slot = &n.eq
		}
	}
	return nil
}

// prune walks path from the bottom up, unlinking dead nodes from their owning
// slot. It stops at the first node that is still needed and returns the
// number of nodes removed.
func prune(path []**node) int {
	removed := 0
	for i := len(path) - 1; i >= 0; i-- {
		slot := path[i]
		if !(*slot).dead() {
			break
		}
		*slot = nil
		removed++
	}
	return removed
}

// Size returns the number of distinct words stored.
func (t *Tree) Size() int {
	return t.count
}

// IsEmpty reports whether the tree holds no words.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Clear removes every word.
func (t *Tree) Clear() {
	t.log.Debug().Int("words", t.count).Msg("cleared tree")
	t.root = nil
	t.count = 0
}

// Height returns the number of nodes on the longest chain of lo, eq and hi
// links, or 0 for an empty tree.
func (t *Tree) Height() int {
	return height(t.root)
}

// Nodes returns the number of nodes currently allocated.
func (t *Tree) Nodes() int {
	return countNodes(t.root)
}

// Summary returns a one line description of the tree.
func (t *Tree) Summary() string {
	return fmt.Sprintf("TernarySearchTree(words=%d, height=%d)", t.count, t.Height())
}
