package tree

import (
	"iter"
	"unicode/utf8"

	"github.com/arloliu/hufftext/bitstream"
)

// CodeTable maps every leaf symbol of a tree to its root-to-leaf path.
//
// Codes are prefix-free by construction. A CodeTable is immutable and safe for
// concurrent use.
type CodeTable struct {
	codes    map[string]bitstream.Bits
	symbols  []string
	maxRunes int
}

// Generate derives the code table of t with a single depth-first traversal.
// Descending Left appends a 0 bit and descending Right appends a 1 bit.
//
// A single-leaf tree maps its only symbol to the empty code.
func Generate(t *Tree) *CodeTable {
	type frame struct {
		id   NodeID
		path bitstream.Bits
	}

	leafCount := (t.Len() + 1) / 2
	ct := &CodeTable{
		codes:   make(map[string]bitstream.Bits, leafCount),
		symbols: make([]string, 0, leafCount),
	}

	stack := []frame{{id: t.Root()}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(f.id)
		if n.IsLeaf() {
			ct.codes[n.Symbol] = f.path
			ct.symbols = append(ct.symbols, n.Symbol)
			ct.maxRunes = max(ct.maxRunes, utf8.RuneCountInString(n.Symbol))

			continue
		}

		// right first so the left subtree is emitted first
		stack = append(stack,
			frame{id: n.Right, path: f.path.Append(true)},
			frame{id: n.Left, path: f.path.Append(false)},
		)
	}

	return ct
}

// Code returns the code of symbol and whether the symbol is in the table.
func (c *CodeTable) Code(symbol string) (bitstream.Bits, bool) {
	code, ok := c.codes[symbol]
	return code, ok
}

// Len returns the number of symbols.
func (c *CodeTable) Len() int {
	return len(c.symbols)
}

// Symbols returns the symbols in left-to-right leaf order.
func (c *CodeTable) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)

	return out
}

// MaxSymbolRunes returns the length in runes of the longest symbol.
func (c *CodeTable) MaxSymbolRunes() int {
	return c.maxRunes
}

// All iterates over (symbol, code) pairs in left-to-right leaf order.
func (c *CodeTable) All() iter.Seq2[string, bitstream.Bits] {
	return func(yield func(string, bitstream.Bits) bool) {
		for _, s := range c.symbols {
			if !yield(s, c.codes[s]) {
				return
			}
		}
	}
}
