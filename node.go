package tst

// node holds one character of one or more stored words. Each child slot is
// owned by exactly this node; lo holds smaller characters at the same
// position, hi larger ones, and eq the next position.
type node struct {
	char       rune
	lo, eq, hi *node
	end        bool
}

// dead reports whether the node serves no word and no branch.
func (n *node) dead() bool {
	return !n.end && n.lo == nil && n.eq == nil && n.hi == nil
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.lo), height(n.eq), height(n.hi))
}

func countNodes(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.lo) + countNodes(n.eq) + countNodes(n.hi)
}
