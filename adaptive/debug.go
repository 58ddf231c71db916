package adaptive

import "golang.org/x/exp/slices"

// LeafCode pairs a known symbol with its current root-to-leaf path.
type LeafCode struct {
	Symbol rune
	Path   []bool
}

// LeafCodes returns every symbol currently in the tree together with its
// path, sorted by path length then symbol. Used by tests to compare the
// encoder's and decoder's trees structurally rather than by walking
// pointers, and to check the prefix-code invariant (P5) deterministically.
func (t *Tree) LeafCodes() []LeafCode {
	codes := make([]LeafCode, 0, len(t.symbols))
	for symbol, leaf := range t.symbols {
		codes = append(codes, LeafCode{Symbol: symbol, Path: pathTo(leaf)})
	}
	slices.SortFunc(codes, func(a, b LeafCode) int {
		if len(a.Path) != len(b.Path) {
			return len(a.Path) - len(b.Path)
		}
		return int(a.Symbol) - int(b.Symbol)
	})
	return codes
}
