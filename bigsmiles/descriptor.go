package bigsmiles

import (
	"strconv"
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// Bonding descriptor symbols.
const (
	DescriptorLeft     = "<"
	DescriptorRight    = ">"
	DescriptorDollar   = "$"
	DescriptorImplicit = ""
)

// BondDescriptor is one descriptor declared inside a stochastic object,
// identified by symbol and index. All instances written with the same
// symbol and index share one BondDescriptor.
type BondDescriptor struct {
	Symbol string
	Index  int

	// BondSymbol is the bond symbol every use of this descriptor must
	// agree on. Unknown until the first use with a bond.
	BondSymbol string

	bondSet   bool
	instances []*BondDescriptorAtom
	parent    *StochasticObject
}

func (bd *BondDescriptor) String() string {
	return bd.text(WriteOptions{})
}

func (bd *BondDescriptor) text(opts WriteOptions) string {
	index := ""
	if bd.Index != DefaultBondingDescriptorIndex || opts.ShowDescriptorIndexOne {
		index = strconv.Itoa(bd.Index)
	}
	return "[" + bd.Symbol + index + "]"
}

// Label is the symbol-index form used in diagnostics ("$1", ">2").
func (bd *BondDescriptor) Label() string {
	return bd.Symbol + strconv.Itoa(bd.Index)
}

// Instances lists the descriptor atoms written with this descriptor.
func (bd *BondDescriptor) Instances() []*BondDescriptorAtom { return bd.instances }

// IsPair reports whether the two descriptors are a complementary <> pair
// with matching index.
func (bd *BondDescriptor) IsPair(other *BondDescriptor) bool {
	if other == nil || bd.Index != other.Index {
		return false
	}
	return (bd.Symbol == DescriptorLeft && other.Symbol == DescriptorRight) ||
		(bd.Symbol == DescriptorRight && other.Symbol == DescriptorLeft)
}

// Implicit reports whether the descriptor is the empty "[]" end group.
func (bd *BondDescriptor) Implicit() bool {
	return bd.Symbol == DescriptorImplicit
}

// Order is the bond order shared by every use of the descriptor; single
// when no bond symbol has been recorded.
func (bd *BondDescriptor) Order() float64 {
	if !bd.bondSet || bd.BondSymbol == "" {
		return 1
	}
	return chem.BondOrder(bd.BondSymbol)
}

// Aromatic reports whether the descriptor bonds aromatically.
func (bd *BondDescriptor) Aromatic() bool {
	return bd.BondSymbol == chem.BondAromatic
}

// BondDescriptorAtom is one written occurrence of a bonding descriptor in
// a stochastic fragment. It bonds like an atom with a single bond site.
type BondDescriptorAtom struct {
	ID         int
	Descriptor *BondDescriptor

	bond   *Bond
	parent nodeContainer
}

func newBondDescriptorAtom(id int, bd *BondDescriptor, parent nodeContainer) *BondDescriptorAtom {
	bda := &BondDescriptorAtom{ID: id, Descriptor: bd, parent: parent}
	bd.instances = append(bd.instances, bda)
	return bda
}

func (bda *BondDescriptorAtom) node()                 {}
func (bda *BondDescriptorAtom) endpointLabel() string { return bda.Descriptor.String() }

// Bond is the single bond attached to the descriptor atom, nil until made.
func (bda *BondDescriptorAtom) Bond() *Bond { return bda.bond }

func (bda *BondDescriptorAtom) setBond(bond *Bond) error {
	if bda.bond != nil {
		return constructorErrorf(
			"trying to make a bond to %s when it already has a bond", bda.Descriptor.String())
	}
	bda.bond = bond
	return nil
}

func (bda *BondDescriptorAtom) clearBond(bond *Bond) {
	if bda.bond == bond {
		bda.bond = nil
	}
}

func (bda *BondDescriptorAtom) Root() *Molecule {
	if bda.parent == nil {
		return nil
	}
	return bda.parent.Root()
}

func (bda *BondDescriptorAtom) String() string {
	return nodeString(bda, WriteOptions{})
}

func (bda *BondDescriptorAtom) write(sb *strings.Builder, opts WriteOptions) {
	sb.WriteString(bda.Descriptor.text(opts))
}
