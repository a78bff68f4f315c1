package bigsmiles

import (
	"strconv"
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// StochasticFragment is one repeat unit or end group alternative inside a
// stochastic object, delimited by "," or ";".
type StochasticFragment struct {
	ID int

	nodes       []Node
	rings       []*Bond
	descriptors []*BondDescriptor
	parent      *StochasticObject
}

// Nodes lists the fragment contents in source order.
func (sf *StochasticFragment) Nodes() []Node { return sf.nodes }

// Descriptors lists the bonding descriptors used inside the fragment.
func (sf *StochasticFragment) Descriptors() []*BondDescriptor { return sf.descriptors }

// Rings lists the ring closure bonds opened inside the fragment.
func (sf *StochasticFragment) Rings() []*Bond { return sf.rings }

func (sf *StochasticFragment) addNode(n Node)        { sf.nodes = append(sf.nodes, n) }
func (sf *StochasticFragment) nodeList() []Node      { return sf.nodes }
func (sf *StochasticFragment) setNodes(nodes []Node) { sf.nodes = nodes }

func (sf *StochasticFragment) ringList() []*Bond { return sf.rings }
func (sf *StochasticFragment) addRing(b *Bond)   { sf.rings = append(sf.rings, b) }

func (sf *StochasticFragment) removeRing(bond *Bond) {
	for i, b := range sf.rings {
		if b == bond {
			sf.rings = append(sf.rings[:i], sf.rings[i+1:]...)
			break
		}
	}
}

func (sf *StochasticFragment) Root() *Molecule {
	if sf.parent == nil {
		return nil
	}
	return sf.parent.Root()
}

func (sf *StochasticFragment) InStochasticObject() bool { return true }

func (sf *StochasticFragment) String() string {
	var sb strings.Builder
	sf.write(&sb, WriteOptions{})
	return sb.String()
}

func (sf *StochasticFragment) write(sb *strings.Builder, opts WriteOptions) {
	writeNodes(sb, sf.nodes, opts)
}

// StochasticObject is a "{...}" region: fragments plus the boundary
// descriptors on its open and close brackets. It bonds to neighbors like a
// single atom through BondLeft and BondRight.
type StochasticObject struct {
	ID int

	fragments   []*StochasticFragment
	descriptors []*BondDescriptor

	// LeftDescriptor and RightDescriptor are the boundary descriptors
	// written immediately after "{" and before "}".
	LeftDescriptor  *BondDescriptor
	RightDescriptor *BondDescriptor

	bondLeft  *Bond
	bondRight *Bond
	parent    nodeContainer
}

func (so *StochasticObject) node()                 {}
func (so *StochasticObject) endpointLabel() string { return so.String() }

// Fragments lists the stochastic fragments in source order.
func (so *StochasticObject) Fragments() []*StochasticFragment { return so.fragments }

// Descriptors lists every bonding descriptor declared in the object,
// boundary descriptors included.
func (so *StochasticObject) Descriptors() []*BondDescriptor { return so.descriptors }

// BondLeft is the bond entering the object from the left, nil when the
// object starts the molecule.
func (so *StochasticObject) BondLeft() *Bond { return so.bondLeft }

// BondRight is the bond leaving the object to the right.
func (so *StochasticObject) BondRight() *Bond { return so.bondRight }

func (so *StochasticObject) setBondLeft(bond *Bond) error {
	if so.bondLeft != nil {
		return constructorErrorf("trying to make a bond to %s when it already has a bond", so.endpointLabel())
	}
	so.bondLeft = bond
	return nil
}

func (so *StochasticObject) setBondRight(bond *Bond) error {
	if so.bondRight != nil {
		return constructorErrorf("trying to make a bond to %s when it already has a bond", so.endpointLabel())
	}
	so.bondRight = bond
	return nil
}

func (so *StochasticObject) clearBond(bond *Bond) {
	if so.bondLeft == bond {
		so.bondLeft = nil
	}
	if so.bondRight == bond {
		so.bondRight = nil
	}
}

// ImplicitEndGroups reports whether either boundary descriptor is the
// implicit "[]" form.
func (so *StochasticObject) ImplicitEndGroups() bool {
	if so.LeftDescriptor != nil && so.LeftDescriptor.Implicit() {
		return true
	}
	if so.RightDescriptor != nil && so.RightDescriptor.Implicit() {
		return true
	}
	return false
}

// Aromatic reports whether the object bonds aromatically on its left side.
func (so *StochasticObject) Aromatic() bool {
	return so.LeftDescriptor != nil && so.LeftDescriptor.Aromatic()
}

func (so *StochasticObject) Root() *Molecule {
	if so.parent == nil {
		return nil
	}
	return so.parent.Root()
}

func (so *StochasticObject) InStochasticObject() bool { return true }

func (so *StochasticObject) String() string {
	return nodeString(so, WriteOptions{})
}

func (so *StochasticObject) write(sb *strings.Builder, opts WriteOptions) {
	sb.WriteString("{")
	if so.LeftDescriptor != nil {
		sb.WriteString(so.LeftDescriptor.text(opts))
	}
	for i, fragment := range so.fragments {
		if i > 0 {
			sb.WriteString(",")
		}
		fragment.write(sb, opts)
	}
	if so.RightDescriptor != nil {
		sb.WriteString(so.RightDescriptor.text(opts))
	}
	sb.WriteString("}")

	if so.bondRight != nil && so.bondRight.RingID != 0 {
		if so.bondRight.Symbol != chem.BondAromatic {
			sb.WriteString(so.bondRight.Symbol)
		}
		if so.bondRight.RingID > 9 {
			sb.WriteString("%")
		}
		sb.WriteString(strconv.Itoa(so.bondRight.RingID))
	}
}

// findDescriptor returns the object's descriptor with the given symbol and
// index, or nil.
func (so *StochasticObject) findDescriptor(symbol string, index int) *BondDescriptor {
	for _, bd := range so.descriptors {
		if bd.Symbol == symbol && bd.Index == index {
			return bd
		}
	}
	return nil
}
