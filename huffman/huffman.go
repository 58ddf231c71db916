// Package huffman builds a prefix-code tree from a set of weighted
// symbols via the classic min-heap merge, and turns that tree into a
// root-to-leaf code table. It is shared by the classic and static codec
// variants, which differ only in where the weights come from (a
// per-input frequency count versus a baked-in table) and in how the
// resulting tree is framed.
package huffman

import (
	"container/heap"
	"sort"
)

// Node is a position in a Huffman tree: either a symbol leaf or an
// internal node with exactly two children.
type Node struct {
	Weight float64
	IsLeaf bool
	Symbol rune
	Left   *Node
	Right  *Node
}

type priorityQueue []*Node

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].Weight < pq[j].Weight }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*Node)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Build merges weights into a Huffman tree by repeatedly combining the
// two lowest-weight nodes, same as a textbook min-heap construction.
// Returns nil for an empty input, and a single leaf node (no parent)
// when exactly one symbol is given. Leaves are pushed in ascending symbol
// order, so the same weights always give the same tree shape.
func Build(weights map[rune]float64) *Node {
	if len(weights) == 0 {
		return nil
	}

	symbols := make([]rune, 0, len(weights))
	for symbol := range weights {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	pq := &priorityQueue{}
	heap.Init(pq)
	for _, symbol := range symbols {
		heap.Push(pq, &Node{Weight: weights[symbol], IsLeaf: true, Symbol: symbol})
	}

	for pq.Len() > 1 {
		left := heap.Pop(pq).(*Node)
		right := heap.Pop(pq).(*Node)
		heap.Push(pq, &Node{Weight: left.Weight + right.Weight, Left: left, Right: right})
	}
	return (*pq)[0]
}

// CodeTable walks root and returns each leaf's root-to-leaf path: false
// for a left step, true for a right step. A nil root yields an empty
// table; a single-leaf root yields a table mapping that leaf's symbol to
// an empty path (callers that can't represent a zero-length code, like
// classic's single-symbol alphabet, special-case this themselves).
func CodeTable(root *Node) map[rune][]bool {
	table := make(map[rune][]bool)
	if root == nil {
		return table
	}

	var walk func(n *Node, path []bool)
	walk = func(n *Node, path []bool) {
		if n.IsLeaf {
			code := make([]bool, len(path))
			copy(code, path)
			table[n.Symbol] = code
			return
		}
		walk(n.Left, append(path, false))
		walk(n.Right, append(path, true))
	}
	walk(root, nil)
	return table
}
