package bigsmiles

import (
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// Molecule is the root of a parsed BigSMILES string.
type Molecule struct {
	input string

	nodes []Node
	atoms []*Atom // includes atoms inside branches and stochastic objects
	bonds []*Bond // includes bonds inside branches and stochastic objects
	rings []*Bond // top-level ring closures only

	atomID     int
	bondID     int
	bdAtomID   int
	branchID   int
	fragmentID int
	objectID   int
}

// Input is the text the molecule was parsed from; empty for molecules
// assembled programmatically.
func (m *Molecule) Input() string { return m.input }

// Nodes lists the top-level nodes in source order.
func (m *Molecule) Nodes() []Node { return m.nodes }

// Atoms lists every atom in the molecule, nested scopes included.
func (m *Molecule) Atoms() []*Atom { return m.atoms }

// Bonds lists every bond in the molecule, nested scopes included.
func (m *Molecule) Bonds() []*Bond { return m.bonds }

// Rings lists the top-level ring closure bonds.
func (m *Molecule) Rings() []*Bond { return m.rings }

func (m *Molecule) addNode(n Node)        { m.nodes = append(m.nodes, n) }
func (m *Molecule) nodeList() []Node      { return m.nodes }
func (m *Molecule) setNodes(nodes []Node) { m.nodes = nodes }

func (m *Molecule) Root() *Molecule          { return m }
func (m *Molecule) InStochasticObject() bool { return false }

func (m *Molecule) registerAtom(a *Atom) { m.atoms = append(m.atoms, a) }
func (m *Molecule) registerBond(b *Bond) { m.bonds = append(m.bonds, b) }

func (m *Molecule) ringList() []*Bond { return m.rings }
func (m *Molecule) addRing(b *Bond)  { m.rings = append(m.rings, b) }

func (m *Molecule) removeRing(bond *Bond) {
	for i, b := range m.rings {
		if b == bond {
			m.rings = append(m.rings[:i], m.rings[i+1:]...)
			break
		}
	}
}

func (m *Molecule) removeBond(bond *Bond) {
	for i, b := range m.bonds {
		if b == bond {
			m.bonds = append(m.bonds[:i], m.bonds[i+1:]...)
			break
		}
	}
	for i, b := range m.rings {
		if b == bond {
			m.rings = append(m.rings[:i], m.rings[i+1:]...)
			break
		}
	}
}

// ContainsStochasticObject reports whether any stochastic object appears
// in the molecule, branches included.
func (m *Molecule) ContainsStochasticObject() bool {
	return containsStochasticObject(m.nodes)
}

func containsStochasticObject(nodes []Node) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case *StochasticObject:
			return true
		case *Branch:
			if containsStochasticObject(n.nodes) {
				return true
			}
		}
	}
	return false
}

// HasDisconnect reports whether the molecule contains a "." bond.
func (m *Molecule) HasDisconnect() bool {
	for _, b := range m.bonds {
		if b.Symbol == chem.BondDisconnect {
			return true
		}
	}
	return false
}

// StochasticObjects lists the top-level stochastic objects in source order.
func (m *Molecule) StochasticObjects() []*StochasticObject {
	var objects []*StochasticObject
	for _, n := range m.nodes {
		if so, ok := n.(*StochasticObject); ok {
			objects = append(objects, so)
		}
	}
	return objects
}

func (m *Molecule) String() string {
	return m.StringWith(WriteOptions{})
}

// StringWith serializes the molecule back to BigSMILES text under the
// given options.
func (m *Molecule) StringWith(opts WriteOptions) string {
	var sb strings.Builder
	writeNodes(&sb, m.nodes, opts)
	return sb.String()
}

func (m *Molecule) nextAtomID() int     { m.atomID++; return m.atomID }
func (m *Molecule) nextBondID() int     { m.bondID++; return m.bondID }
func (m *Molecule) nextBDAtomID() int   { m.bdAtomID++; return m.bdAtomID }
func (m *Molecule) nextBranchID() int   { m.branchID++; return m.branchID }
func (m *Molecule) nextFragmentID() int { m.fragmentID++; return m.fragmentID }
func (m *Molecule) nextObjectID() int   { m.objectID++; return m.objectID }
