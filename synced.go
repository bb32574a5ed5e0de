package tst

import "sync"

// Synced guards a Tree with a read-write lock so it can be shared between
// goroutines. Writers are Insert, InsertAll, Delete and Clear; everything
// else takes the read lock. Results are copies, never live iterators.
type Synced struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewSynced wraps tree. The caller must not use tree directly afterwards.
func NewSynced(tree *Tree) *Synced {
	return &Synced{tree: tree}
}

// Insert adds word to the tree.
func (s *Synced) Insert(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(word)
}

// InsertAll inserts every word, or none of them if any word is malformed.
func (s *Synced) InsertAll(words ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.InsertAll(words...)
}

// Delete removes word and reports whether it was stored.
func (s *Synced) Delete(word string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Delete(word)
}

// Clear removes every word.
func (s *Synced) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
}

// Search reports whether word is stored.
func (s *Synced) Search(word string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Search(word)
}

// PrefixSearch returns the stored words starting with prefix.
func (s *Synced) PrefixSearch(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.PrefixSearch(prefix)
}

// AllStrings returns every stored word in order.
func (s *Synced) AllStrings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.AllStrings()
}

// Size returns the number of stored words.
func (s *Synced) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Size()
}
