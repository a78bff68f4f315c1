package bigsmiles

import (
	"github.com/dhamidi/bigsmiles/chem"
)

// The construction functions below append to a scope (molecule, branch,
// stochastic object or fragment) and return the scope subsequent symbols
// should land in. They are driven by the token mapper but usable directly
// for programmatic assembly.

// attachBond records the bond on both endpoints. A ring closure ending on
// a stochastic object is walked in reverse so the object side is treated
// as the right-hand attachment.
func attachBond(bond *Bond) error {
	endpoints := [2]Endpoint{bond.Atom1, bond.Atom2}
	if bond.RingID != 0 {
		if _, ok := bond.Atom2.(*StochasticObject); ok {
			endpoints[0], endpoints[1] = endpoints[1], endpoints[0]
		}
	}
	for i, ep := range endpoints {
		switch ep := ep.(type) {
		case *Atom:
			ep.addBond(bond)
		case *BondDescriptorAtom:
			if err := ep.setBond(bond); err != nil {
				return err
			}
		case *StochasticObject:
			if i == 0 {
				if err := ep.setBondRight(bond); err != nil {
					return err
				}
			} else {
				if err := ep.setBondLeft(bond); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func detachBond(bond *Bond, ep Endpoint) {
	switch ep := ep.(type) {
	case *Atom:
		ep.removeBond(bond)
	case *BondDescriptorAtom:
		ep.clearBond(bond)
	case *StochasticObject:
		ep.clearBond(bond)
	}
}

func endpointAromatic(ep Endpoint) bool {
	switch ep := ep.(type) {
	case *Atom:
		return ep.Aromatic
	case *BondDescriptorAtom:
		return ep.Descriptor.Aromatic()
	case *StochasticObject:
		return ep.Aromatic()
	}
	return false
}

func parentOf(scope Scope) Scope {
	switch s := scope.(type) {
	case *Branch:
		return s.parent
	case *StochasticFragment:
		return s.parent
	case *StochasticObject:
		return s.parent
	}
	return nil
}

// priorEndpoint finds the endpoint a new bond should reach back to: the
// nearest atom-like node scanning the scope backwards, or the parent
// scope's when the scope is still empty. withDescriptors admits bonding
// descriptor atoms as endpoints.
func priorEndpoint(c nodeContainer, withDescriptors bool) (Endpoint, error) {
	return priorEndpointFlag(c, withDescriptors, false)
}

func priorEndpointFlag(c nodeContainer, withDescriptors, ascended bool) (Endpoint, error) {
	nodes := c.nodeList()
	if len(nodes) > 0 {
		for i := len(nodes) - 1; i >= 0; i-- {
			switch n := nodes[i].(type) {
			case *Atom:
				return n, nil
			case *StochasticObject:
				return n, nil
			case *BondDescriptorAtom:
				if withDescriptors {
					return n, nil
				}
			}
		}
		return nil, constructorErrorf("trying to make a bond to a prior atom that isn't there")
	}
	if !ascended {
		if parent, ok := parentOf(c).(nodeContainer); ok {
			return priorEndpointFlag(parent, withDescriptors, true)
		}
	}
	return nil, constructorErrorf("bond attempted to be made with nothing to bond back to")
}

// ringHolder is a scope that owns ring closures: *Molecule or
// *StochasticFragment.
type ringHolder interface {
	Scope
	ringList() []*Bond
	addRing(b *Bond)
	removeRing(b *Bond)
}

func ringParent(scope Scope) ringHolder {
	for scope != nil {
		if rh, ok := scope.(ringHolder); ok {
			return rh
		}
		scope = parentOf(scope)
	}
	return nil
}

func asContainer(scope Scope) (nodeContainer, error) {
	c, ok := scope.(nodeContainer)
	if !ok {
		return nil, constructorErrorf("symbol not allowed between stochastic fragments")
	}
	return c, nil
}

func addAtom(scope Scope, spec AtomSpec) (Scope, error) {
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	root := c.Root()
	atom := newAtom(root.nextAtomID(), spec, c)
	c.addNode(atom)
	root.registerAtom(atom)
	return scope, nil
}

func addBond(c nodeContainer, symbol string, atom1, atom2 Endpoint) error {
	root := c.Root()
	bond := &Bond{ID: root.nextBondID(), Symbol: symbol, Atom1: atom1, Atom2: atom2, parent: c}
	c.addNode(bond)
	root.registerBond(bond)
	return attachBond(bond)
}

func addBondAtomPair(scope Scope, bondSymbol string, spec AtomSpec) (Scope, error) {
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	root := c.Root()
	atom := newAtom(root.nextAtomID(), spec, c)
	prior, err := priorEndpoint(c, true)
	if err != nil {
		return scope, err
	}
	if err := addBond(c, bondSymbol, prior, atom); err != nil {
		return scope, err
	}
	c.addNode(atom)
	root.registerAtom(atom)
	return scope, nil
}

// addRing opens a ring closure the first time an index is seen and closes
// it the second time. Closing onto an atom pair that already shares a bond
// merges the ring into that bond with an increased order.
func addRing(scope Scope, ringID int, bondSymbol string) (Scope, error) {
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	holder := ringParent(c)
	for _, ring := range holder.ringList() {
		if ring.RingID != ringID {
			continue
		}
		if ring.Atom2 != nil {
			return scope, constructorErrorf("ring already formed for ring id %d", ringID)
		}
		atom2, err := priorEndpoint(c, false)
		if err != nil {
			return scope, err
		}
		shared, err := commonBond(ring.Atom1, atom2)
		if err != nil {
			return scope, err
		}
		if shared != nil {
			log.Warning("duplicate ring detected and merged into one with a higher bond order")
			if err := shared.SetOrder(shared.Order() + chem.BondOrder(bondSymbol)); err != nil {
				return scope, err
			}
			removePartialRing(holder, ringID)
			return scope, nil
		}
		ring.Atom2 = atom2

		// the multi-bond symbol may sit on either or both ring indexes
		if chem.BondOrder(bondSymbol) > ring.Order() {
			ring.Symbol = bondSymbol
		}
		if endpointAromatic(ring.Atom1) && endpointAromatic(ring.Atom2) {
			ring.Symbol = chem.BondAromatic
		}
		return scope, attachBond(ring)
	}

	// open a new ring
	atom1, err := priorEndpoint(c, false)
	if err != nil {
		return scope, err
	}
	root := c.Root()
	bond := &Bond{ID: root.nextBondID(), Symbol: bondSymbol, Atom1: atom1, RingID: ringID, parent: c}
	root.registerBond(bond)
	holder.addRing(bond)
	return scope, nil
}

// commonBond returns a bond the two endpoints already share, if any.
func commonBond(atom1, atom2 Endpoint) (*Bond, error) {
	a1, ok1 := atom1.(*Atom)
	if so, ok := atom2.(*StochasticObject); ok && ok1 {
		if so.bondRight != nil {
			for _, b := range a1.bonds {
				if b == so.bondRight {
					return nil, constructorErrorf("an atom can't have two bonds to the same stochastic object")
				}
			}
		}
		return nil, nil
	}
	a2, ok2 := atom2.(*Atom)
	if !ok1 || !ok2 {
		return nil, nil
	}
	for _, b := range a1.bonds {
		for _, b2 := range a2.bonds {
			if b == b2 {
				return b, nil
			}
		}
	}
	return nil, nil
}

func removePartialRing(holder ringHolder, ringID int) {
	for _, ring := range holder.ringList() {
		if ring.RingID == ringID {
			holder.removeRing(ring)
			holder.Root().removeBond(ring)
			return
		}
	}
}

// currentStochasticObject walks up to the enclosing stochastic object.
func currentStochasticObject(scope Scope) (*StochasticObject, error) {
	for scope != nil {
		if so, ok := scope.(*StochasticObject); ok {
			return so, nil
		}
		scope = parentOf(scope)
	}
	return nil, constructorErrorf("no stochastic object found")
}

// getBondingDescriptor finds or creates the stochastic object's descriptor
// for symbol and index. When a concrete bond symbol accompanies the use,
// the first one seen is adopted and later conflicting symbols are errors.
func getBondingDescriptor(so *StochasticObject, symbol string, index int, bondSymbol string, bondKnown bool) (*BondDescriptor, error) {
	for _, bd := range so.descriptors {
		if bd.Symbol == symbol && bd.Index == index {
			if bondKnown {
				if !bd.bondSet {
					bd.BondSymbol = bondSymbol
					bd.bondSet = true
				} else if bd.BondSymbol != bondSymbol {
					return nil, constructorErrorf("multiple bond orders to same bonding descriptor")
				}
			}
			return bd, nil
		}
	}
	bd := &BondDescriptor{Symbol: symbol, Index: index, parent: so}
	if bondKnown {
		bd.BondSymbol = bondSymbol
		bd.bondSet = true
	}
	so.descriptors = append(so.descriptors, bd)
	return bd, nil
}

func getBondingDescriptorAtom(scope Scope, c nodeContainer, symbol string, index int, bondSymbol string, bondKnown bool) (*BondDescriptorAtom, error) {
	so, err := currentStochasticObject(scope)
	if err != nil {
		return nil, err
	}
	bd, err := getBondingDescriptor(so, symbol, index, bondSymbol, bondKnown)
	if err != nil {
		return nil, err
	}
	return newBondDescriptorAtom(c.Root().nextBDAtomID(), bd, c), nil
}

func addBondingDescriptorAtom(scope Scope, symbol string, index int) (Scope, error) {
	if !scope.InStochasticObject() {
		return scope, constructorErrorf("bonding descriptors are only allowed inside stochastic objects")
	}
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	bda, err := getBondingDescriptorAtom(scope, c, symbol, index, "", false)
	if err != nil {
		return scope, err
	}
	c.addNode(bda)
	return scope, nil
}

func addBondBondingDescriptorPair(scope Scope, bondSymbol, symbol string, index int) (Scope, error) {
	if !scope.InStochasticObject() {
		return scope, constructorErrorf("bonding descriptors are only allowed inside stochastic objects")
	}
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	bda, err := getBondingDescriptorAtom(scope, c, symbol, index, bondSymbol, true)
	if err != nil {
		return scope, err
	}
	prior, err := priorEndpoint(c, true)
	if err != nil {
		return scope, err
	}
	if err := addBond(c, bondSymbol, prior, bda); err != nil {
		return scope, err
	}
	c.addNode(bda)
	return scope, nil
}

func openBranch(scope Scope) (Scope, error) {
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	if br, ok := c.(*Branch); ok && len(br.nodes) == 0 {
		return scope, constructorErrorf("branch can't start with another branch")
	}
	branch := &Branch{ID: c.Root().nextBranchID(), parent: c}
	c.addNode(branch)
	return branch, nil
}

func closeBranch(scope Scope) (Scope, error) {
	branch, ok := scope.(*Branch)
	if !ok {
		return scope, constructorErrorf("error closing branch; no matching start or another node left open")
	}
	if len(branch.nodes) == 0 {
		// an empty "()" is dropped
		parent := branch.parent
		nodes := parent.nodeList()
		parent.setNodes(nodes[:len(nodes)-1])
	}
	return branch.parent, nil
}

func openStochasticObject(scope Scope, symbol string, index int) (*StochasticObject, error) {
	c, err := asContainer(scope)
	if err != nil {
		return nil, err
	}
	so := &StochasticObject{ID: c.Root().nextObjectID(), parent: c}
	so.LeftDescriptor, err = getBondingDescriptor(so, symbol, index, "", false)
	if err != nil {
		return nil, err
	}
	c.addNode(so)
	return so, nil
}

func openStochasticObjectFragment(scope Scope, symbol string, index int) (Scope, error) {
	so, err := openStochasticObject(scope, symbol, index)
	if err != nil {
		return scope, err
	}
	return openStochasticFragment(so), nil
}

func openStochasticObjectFragmentWithBond(scope Scope, bondSymbol, symbol string, index int) (Scope, error) {
	c, err := asContainer(scope)
	if err != nil {
		return scope, err
	}
	root := c.Root()
	so := &StochasticObject{ID: root.nextObjectID(), parent: c}
	so.LeftDescriptor, err = getBondingDescriptor(so, symbol, index, bondSymbol, true)
	if err != nil {
		return scope, err
	}

	prior, err := priorEndpoint(c, false)
	if err != nil {
		return scope, err
	}
	bond := &Bond{ID: root.nextBondID(), Symbol: bondSymbol, Atom1: prior, Atom2: so, parent: c}
	c.addNode(bond)
	root.registerBond(bond)
	if err := attachBond(bond); err != nil {
		return scope, err
	}
	c.addNode(so)
	return openStochasticFragment(so), nil
}

func closeStochasticObject(scope Scope, symbol string, index int) (Scope, error) {
	so, ok := scope.(*StochasticObject)
	if !ok {
		return scope, constructorErrorf("error closing stochastic object; no matching start or another node left open")
	}
	var err error
	so.RightDescriptor, err = getBondingDescriptor(so, symbol, index, "", false)
	if err != nil {
		return scope, err
	}
	return so.parent, nil
}

func openStochasticFragment(so *StochasticObject) *StochasticFragment {
	sf := &StochasticFragment{ID: so.Root().nextFragmentID(), parent: so}
	so.fragments = append(so.fragments, sf)
	return sf
}

func closeOpenStochasticFragment(scope Scope) (Scope, error) {
	so, err := closeStochasticFragment(scope)
	if err != nil {
		return scope, err
	}
	return openStochasticFragment(so), nil
}

func closeStochasticFragment(scope Scope) (*StochasticObject, error) {
	sf, ok := scope.(*StochasticFragment)
	if !ok {
		return nil, constructorErrorf("stochastic separator can only follow a stochastic fragment")
	}
	collectFragmentDescriptors(sf, sf.nodes)
	if len(sf.descriptors) == 0 {
		return nil, constructorErrorf("no bonding descriptor in the stochastic fragment %q", sf.String())
	}
	return sf.parent, nil
}

func collectFragmentDescriptors(sf *StochasticFragment, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *BondDescriptorAtom:
			if !containsDescriptor(sf.descriptors, n.Descriptor) {
				sf.descriptors = append(sf.descriptors, n.Descriptor)
			}
		case *Branch:
			collectFragmentDescriptors(sf, n.nodes)
		}
	}
}

func containsDescriptor(list []*BondDescriptor, bd *BondDescriptor) bool {
	for _, d := range list {
		if d == bd {
			return true
		}
	}
	return false
}

// finishConstruction checks every scope was closed, applies the syntax
// normalizations and runs post-construction validation.
func finishConstruction(scope Scope) (*Molecule, error) {
	m, ok := scope.(*Molecule)
	if !ok {
		return nil, constructorErrorf("missing closing symbol for %T", scope)
	}
	if len(m.nodes) == 0 {
		return m, nil
	}
	if err := capStochasticEnds(m); err != nil {
		return nil, err
	}
	runSyntaxFixes(m)
	if err := runValidation(m); err != nil {
		return nil, err
	}
	return m, nil
}
