// Package adaptive implements the FGK (Faller-Gallager-Knuth) one-pass
// adaptive Huffman tree and the encoder/decoder pair built on top of it.
// The tree starts as a single NYT (not-yet-transmitted) leaf and grows one
// symbol at a time, maintaining the sibling property after every update.
package adaptive

// node is a single position in the FGK tree. Identity is the pointer
// itself. number labels the node's place in the sibling ordering; swap
// exchanges the numbers of the two nodes it moves, so a number stays with
// a tree position. It is used only to find the leader of a weight block.
type node struct {
	weight int
	isLeaf bool
	symbol rune
	number int

	parent, left, right *node
}

// Tree is a single adaptive Huffman tree, shared by an Encoder and a
// Decoder that are processing the same stream.
type Tree struct {
	root *node
	nyt  *node

	symbols map[rune]*node
	nodes   []*node // registry of every node ever created, for leader search

	nextNumber int
}

// startNumber is where freshly split internal/leaf pairs begin counting
// down from. NYT permanently holds number 0 (its identity is tracked by
// pointer, not by renumbering), so any value comfortably above the
// number of nodes a real input could ever produce avoids collisions;
// Unicode has on the order of 10^6 scalar values total.
const startNumber = 1 << 30

// NewTree returns a fresh tree containing only the NYT node.
func NewTree() *Tree {
	nyt := &node{number: 0}
	t := &Tree{
		root:       nyt,
		nyt:        nyt,
		symbols:    make(map[rune]*node),
		nodes:      []*node{nyt},
		nextNumber: startNumber,
	}
	return t
}

// PathToSymbol returns the root-to-leaf path for symbol if it has already
// been seen (ok == true), or the root-to-NYT path otherwise.
func (t *Tree) PathToSymbol(symbol rune) (path []bool, ok bool) {
	if leaf, known := t.symbols[symbol]; known {
		return pathTo(leaf), true
	}
	return pathTo(t.nyt), false
}

// pathTo walks from n up to the root and returns the bits read top-down:
// false for a left child, true for a right child.
func pathTo(n *node) []bool {
	var reversed []bool
	for cur := n; cur.parent != nil; cur = cur.parent {
		reversed = append(reversed, cur.parent.right == cur)
	}
	path := make([]bool, len(reversed))
	for i, b := range reversed {
		path[len(reversed)-1-i] = b
	}
	return path
}

// Root returns the tree's root node, for callers that need to start a
// traversal (the decoder).
func (t *Tree) Root() *node { return t.root }

// IsNYT reports whether n is the tree's current NYT node.
func (t *Tree) IsNYT(n *node) bool { return n == t.nyt }

// IsLeaf reports whether n is a symbol leaf (false for internal nodes and
// for the NYT node).
func (n *node) IsLeaf() bool { return n.isLeaf }

// Left and Right expose the two children of an internal node so callers
// can walk the tree one bit at a time.
func (n *node) Left() *node  { return n.left }
func (n *node) Right() *node { return n.right }

// Symbol returns the symbol stored at leaf n. Callers must only call this
// on nodes for which IsLeaf is true.
func (n *node) Symbol() rune { return n.symbol }

// leader returns the highest-numbered node sharing n's weight, excluding n
// itself and every node in n's own subtree. Returns nil if no such node
// exists.
//
// Excluding descendants of n (not just direct children) is what keeps
// swap safe: swap only knows how to exchange two unrelated positions,
// and picking a node from inside n's own subtree as its leader would
// rewire n into its own former child, corrupting the tree. A brand new
// internal/leaf pair is the only place two weight-0 nodes can exist
// below a common weight-0 ancestor at once (see split), and both sit
// in n's subtree, so this exclusion also covers what spec §4.3's
// direct-children-only phrasing was reaching for.
func (t *Tree) leader(n *node) *node {
	var best *node
	for _, m := range t.nodes {
		if m == n || m.weight != n.weight {
			continue
		}
		if isAncestor(n, m) {
			continue
		}
		if best == nil || m.number > best.number {
			best = m
		}
	}
	return best
}

// isAncestor reports whether a is an ancestor of b (a strict ancestor;
// a == b is not considered an ancestor of itself).
func isAncestor(a, b *node) bool {
	for cur := b.parent; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}
	return false
}

// swap exchanges the tree positions of a and b together with their
// numbers, leaving their weights and subtrees attached to the same node
// pointers. Both "which
// child was I" booleans are captured before any mutation so the sibling
// case (a.parent == b.parent) doesn't observe a half-mutated parent.
func (t *Tree) swap(a, b *node) {
	pa, pb := a.parent, b.parent
	aWasLeft := pa != nil && pa.left == a
	bWasLeft := pb != nil && pb.left == b

	if pa != nil {
		if aWasLeft {
			pa.left = b
		} else {
			pa.right = b
		}
	} else {
		t.root = b
	}
	if pb != nil {
		if bWasLeft {
			pb.left = a
		} else {
			pb.right = a
		}
	} else {
		t.root = a
	}
	a.parent, b.parent = pb, pa
	a.number, b.number = b.number, a.number
}

// Update increments symbol's weight by one, growing the tree with a new
// NYT/leaf pair on the symbol's first occurrence, and restores the
// sibling property by walking from the affected node to the root.
func (t *Tree) Update(symbol rune) {
	start, known := t.symbols[symbol]
	if !known {
		// Increment walk starts at the new leaf (split's internal node's
		// right child), so the leaf and then the internal node above it
		// both reach weight 1: see SPEC_FULL.md's "Resolved ambiguity" note.
		start = t.split(symbol).right
	}
	t.incrementFrom(start)
}

// split turns the current NYT leaf into an internal node with two
// children: a fresh NYT leaf and a fresh leaf for symbol. The old NYT
// node pointer is reused as the new NYT, so IsNYT keeps working for
// anyone still holding it. Returns the new internal node.
func (t *Tree) split(symbol rune) *node {
	oldNYT := t.nyt
	parent := oldNYT.parent

	internal := &node{number: t.nextNumber, parent: parent}
	t.nextNumber--
	// weight starts at 0: the increment walk (started by the caller at
	// this leaf, not here) is what raises it to 1, matching
	// original_source/3-huffman-streaming/huffman-streaming.py's
	// nouvelle_feuille. Starting at 1 would put this leaf in the same
	// weight class as nodes above it in the tree before the walk ever
	// reaches it, which can make leader() return a descendant of its own
	// ancestor and swap into a parent cycle.
	newLeaf := &node{number: t.nextNumber, isLeaf: true, symbol: symbol, parent: internal}
	t.nextNumber--

	internal.left = oldNYT
	internal.right = newLeaf
	oldNYT.parent = internal

	if parent == nil {
		t.root = internal
	} else if parent.left == oldNYT {
		parent.left = internal
	} else {
		parent.right = internal
	}

	t.symbols[symbol] = newLeaf
	t.nodes = append(t.nodes, internal, newLeaf)
	return internal
}

// incrementFrom raises the weight of n and every ancestor by one,
// swapping each node to the front of its weight block (if it isn't
// already there) before incrementing, per the FGK discipline. leader
// already excludes n's own subtree; the separate check against n's
// parent here guards the remaining case: a leader candidate sitting
// directly above n, which swap also can't handle safely.
func (t *Tree) incrementFrom(n *node) {
	for n != nil {
		if ld := t.leader(n); ld != nil && ld != n.parent && ld.number > n.number {
			t.swap(n, ld)
		}
		n.weight++
		n = n.parent
	}
}
