package bigsmiles

import (
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// Bond connects two endpoints, each an *Atom, *BondDescriptorAtom or
// *StochasticObject. RingID is non-zero for ring closure bonds.
type Bond struct {
	ID     int
	Symbol string
	Atom1  Endpoint
	Atom2  Endpoint
	RingID int

	parent nodeContainer
}

func (b *Bond) node() {}

// Order is the numeric bond order of the bond's symbol.
func (b *Bond) Order() float64 {
	return chem.BondOrder(b.Symbol)
}

// SetOrder rewrites the bond symbol to the one carrying the given order.
func (b *Bond) SetOrder(order float64) error {
	symbol, ok := chem.SymbolForOrder(order)
	if !ok {
		return constructorErrorf("no bond symbol with order %v", order)
	}
	b.Symbol = symbol
	return nil
}

// Aromatic reports whether the bond was formed between aromatic atoms.
func (b *Bond) Aromatic() bool {
	return b.Symbol == chem.BondAromatic
}

func (b *Bond) Root() *Molecule {
	if b.parent == nil {
		return nil
	}
	return b.parent.Root()
}

// delete detaches the bond from both endpoints and removes it from its
// parent's node list and the root bond registry.
func (b *Bond) delete() {
	detachBond(b, b.Atom1)
	detachBond(b, b.Atom2)
	if b.parent != nil {
		removeNode(b.parent, b)
		if root := b.parent.Root(); root != nil {
			root.removeBond(b)
		}
	}
}

func (b *Bond) String() string {
	return nodeString(b, WriteOptions{})
}

func (b *Bond) write(sb *strings.Builder, opts WriteOptions) {
	if b.Symbol == chem.BondAromatic && !opts.ShowAromaticBonds {
		return
	}
	sb.WriteString(b.Symbol)
}

func removeNode(c nodeContainer, n Node) {
	nodes := c.nodeList()
	for i, node := range nodes {
		if node == n {
			c.setNodes(append(nodes[:i], nodes[i+1:]...))
			return
		}
	}
}
