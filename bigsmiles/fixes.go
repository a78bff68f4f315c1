package bigsmiles

// capStochasticEnds adds an explicit [H] end group to a stochastic object
// that starts or ends the molecule without implicit end groups, so the
// written form stays a whole molecule.
func capStochasticEnds(m *Molecule) error {
	if so, ok := m.nodes[0].(*StochasticObject); ok && !so.ImplicitEndGroups() {
		if so.LeftDescriptor != nil && so.LeftDescriptor.Order() > 1 {
			return constructorErrorf("a double bond coming out of a stochastic object requires an explicit end group")
		}
		atom := newAtom(m.nextAtomID(), AtomSpec{Symbol: "H"}, m)
		bond := &Bond{ID: m.nextBondID(), Atom1: atom, Atom2: so, parent: m}
		if err := attachBond(bond); err != nil {
			return err
		}
		m.nodes = append([]Node{atom, bond}, m.nodes...)
		m.registerAtom(atom)
		m.registerBond(bond)
	}

	if so, ok := m.nodes[len(m.nodes)-1].(*StochasticObject); ok &&
		!so.ImplicitEndGroups() && so.bondRight == nil {
		if so.RightDescriptor != nil && so.RightDescriptor.Order() > 1 {
			return constructorErrorf("a double bond coming out of a stochastic object requires an explicit end group")
		}
		if _, err := addBondAtomPair(m, "", AtomSpec{Symbol: "H"}); err != nil {
			return err
		}
	}
	return nil
}

// runSyntaxFixes normalizes the parsed tree: redundant trailing branch
// symbols are spliced away, ring indexes are renumbered sequentially and
// node ids are renumbered in traversal order.
func runSyntaxFixes(m *Molecule) {
	spliceTrailingBranch(m)
	renumberRings(m)
	renumberNodeIDs(m)
}

// spliceTrailingBranch removes the parentheses around a branch that ends
// its scope: "CC(CC)" means the same as "CCCC".
func spliceTrailingBranch(c nodeContainer) {
	for _, n := range c.nodeList() {
		switch n := n.(type) {
		case *Branch:
			spliceTrailingBranch(n)
		case *StochasticObject:
			for _, sf := range n.fragments {
				spliceTrailingBranch(sf)
			}
		}
	}

	nodes := c.nodeList()
	if len(nodes) == 0 {
		return
	}
	if br, ok := nodes[len(nodes)-1].(*Branch); ok {
		nodes = nodes[:len(nodes)-1]
		for _, n := range br.nodes {
			setNodeParent(n, c)
			nodes = append(nodes, n)
		}
		c.setNodes(nodes)
	}
}

func setNodeParent(n Node, c nodeContainer) {
	switch n := n.(type) {
	case *Atom:
		n.parent = c
	case *Bond:
		n.parent = c
	case *Branch:
		n.parent = c
	case *BondDescriptorAtom:
		n.parent = c
	case *StochasticObject:
		n.parent = c
	}
}

// renumberRings renumbers ring closures sequentially from 1, deepest
// scopes first.
func renumberRings(m *Molecule) {
	rings := collectRings(m.nodes, m.rings)
	for i, ring := range rings {
		ring.RingID = i + 1
	}
}

func collectRings(nodes []Node, own []*Bond) []*Bond {
	var rings []*Bond
	for _, n := range nodes {
		switch n := n.(type) {
		case *Branch:
			rings = append(rings, collectRings(n.nodes, nil)...)
		case *StochasticObject:
			for _, sf := range n.fragments {
				rings = append(rings, collectRings(sf.nodes, sf.rings)...)
			}
		}
	}
	return append(rings, own...)
}

// renumberNodeIDs renumbers every node id in traversal order and rebuilds
// the root atom and bond registries to match.
func renumberNodeIDs(m *Molecule) {
	r := &renumberer{}
	r.walk(m.nodes)
	for _, ring := range m.rings {
		r.bondID++
		ring.ID = r.bondID
		r.bonds = append(r.bonds, ring)
	}
	m.atoms = r.atoms
	m.bonds = r.bonds
	m.atomID = r.atomID
	m.bondID = r.bondID
	m.bdAtomID = r.bdAtomID
	m.branchID = r.branchID
	m.fragmentID = r.fragmentID
	m.objectID = r.objectID
}

type renumberer struct {
	atomID, bondID, bdAtomID       int
	branchID, fragmentID, objectID int

	atoms []*Atom
	bonds []*Bond
}

func (r *renumberer) walk(nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Atom:
			r.atomID++
			n.ID = r.atomID
			r.atoms = append(r.atoms, n)
		case *Bond:
			r.bondID++
			n.ID = r.bondID
			r.bonds = append(r.bonds, n)
		case *BondDescriptorAtom:
			r.bdAtomID++
			n.ID = r.bdAtomID
		case *Branch:
			r.branchID++
			n.ID = r.branchID
			r.walk(n.nodes)
		case *StochasticObject:
			r.objectID++
			n.ID = r.objectID
			for _, sf := range n.fragments {
				r.fragmentID++
				sf.ID = r.fragmentID
				r.walk(sf.nodes)
				for _, ring := range sf.rings {
					r.bondID++
					ring.ID = r.bondID
					r.bonds = append(r.bonds, ring)
				}
			}
		}
	}
}
