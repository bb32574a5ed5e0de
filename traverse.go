package tst

import (
	"fmt"
	"iter"
	"strings"
)

// All returns an iterator over every stored word in ascending order.
// The iterator can be ranged over more than once; each pass walks the tree
// as it is at that moment.
func (t *Tree) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		walk(t.root, make([]rune, 0, 16), yield)
	}
}

// WithPrefix returns an iterator over every stored word starting with prefix,
// in ascending order. An empty prefix yields every word.
func (t *Tree) WithPrefix(prefix string) (iter.Seq[string], error) {
	key, err := t.normalise(prefix, true)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return t.All(), nil
	}
	return func(yield func(string) bool) {
		anchor := t.find(key)
		if anchor == nil {
			return
		}
		if anchor.end && !yield(string(key)) {
			return
		}
		buf := make([]rune, len(key), len(key)+16)
		copy(buf, key)
		walk(anchor.eq, buf, yield)
	}, nil
}

// AllStrings returns every stored word in ascending order.
func (t *Tree) AllStrings() []string {
	return collect(t.All(), t.count)
}

// PrefixSearch returns every stored word starting with prefix, in ascending
// order. A prefix that matches nothing gives an empty slice, not an error.
func (t *Tree) PrefixSearch(prefix string) ([]string, error) {
	seq, err := t.WithPrefix(prefix)
	if err != nil {
		return nil, err
	}
	return collect(seq, 0), nil
}

func collect(seq iter.Seq[string], size int) []string {
	words := make([]string, 0, size)
	for word := range seq {
		words = append(words, word)
	}
	return words
}

// walk yields the words below n in order: lo first, then the node itself and
// its eq subtree, then hi. buf holds the characters consumed above n.
func walk(n *node, buf []rune, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.lo, buf, yield) {
		return false
	}
	buf = append(buf, n.char)
	if n.end && !yield(string(buf)) {
		return false
	}
	if !walk(n.eq, buf, yield) {
		return false
	}
	return walk(n.hi, buf[:len(buf)-1], yield)
}

// String renders the node structure, one line per node, indented by depth
// and labelled with the slot the node hangs from.
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}
	var sb strings.Builder
	describe(&sb, t.root, "root", 0)
	return sb.String()
}

func describe(sb *strings.Builder, n *node, slot string, depth int) {
	fmt.Fprintf(sb, "%s%s %q end=%t\n", strings.Repeat("  ", depth), slot, n.char, n.end)
	if n.lo != nil {
		describe(sb, n.lo, "lo", depth+1)
	}
	if n.eq != nil {
		describe(sb, n.eq, "eq", depth+1)
	}
	if n.hi != nil {
		describe(sb, n.hi, "hi", depth+1)
	}
}
