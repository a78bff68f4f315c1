package bigsmiles

import (
	"strconv"
)

// fixTokenRings checks ring indexes at the token level and renumbers
// re-used indexes so every ring id appears exactly twice. SMILES allows
// re-using an index once its ring closed; unique ids keep the parsed
// rings unambiguous.
func fixTokenRings(tokens []Token) ([]Token, error) {
	positions := make(map[int][]int)
	var order []int
	for i, tok := range tokens {
		if tok.Kind != TokenRing && tok.Kind != TokenRing2 {
			continue
		}
		id := ringIndex(tokens[i])
		if _, seen := positions[id]; !seen {
			order = append(order, id)
		}
		positions[id] = append(positions[id], i)
	}
	if len(positions) == 0 {
		return tokens, nil
	}

	nextID := 0
	for id := range positions {
		if id > nextID {
			nextID = id
		}
	}
	nextID++

	for _, id := range order {
		idxs := positions[id]
		switch {
		case len(idxs) == 1:
			return nil, validationErrorf("missing ring index; only one found for %q", tokens[idxs[0]].Value)
		case len(idxs)%2 == 1:
			return nil, validationErrorf("more than two ring indexes found for %q", tokens[idxs[0]].Value)
		case len(idxs) > 2:
			log.Warningf("duplicate ring index detected (%d) and fixed", id)
			for start := 2; start < len(idxs); start += 2 {
				tokens[idxs[start]] = ringToken(nextID, tokens[idxs[start]])
				tokens[idxs[start+1]] = ringToken(nextID, tokens[idxs[start+1]])
				nextID++
			}
		}
	}
	return tokens, nil
}

func ringToken(id int, old Token) Token {
	if id > 9 {
		return Token{Kind: TokenRing2, Value: "%" + strconv.Itoa(id), Column: old.Column}
	}
	return Token{Kind: TokenRing, Value: strconv.Itoa(id), Column: old.Column}
}

// runValidation checks the constraints construction can't see locally.
func runValidation(m *Molecule) error {
	if err := checkRingClosure(m); err != nil {
		return err
	}
	if err := checkBondingDescriptors(m.nodes); err != nil {
		return err
	}
	return checkImplicitEndGroupEnds(m, nil)
}

func checkRingClosure(m *Molecule) error {
	for _, ring := range collectRings(m.nodes, m.rings) {
		if ring.Atom2 == nil {
			return validationErrorf("ring opened, but not closed (ring id: %d)", ring.RingID)
		}
	}
	return nil
}

func checkBondingDescriptors(nodes []Node) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Branch:
			if err := checkBondingDescriptors(n.nodes); err != nil {
				return err
			}
		case *StochasticObject:
			if err := checkObjectDescriptors(n); err != nil {
				return err
			}
			for _, sf := range n.fragments {
				if err := checkBondingDescriptors(sf.nodes); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkObjectDescriptors(so *StochasticObject) error {
	for _, bd := range so.descriptors {
		uses := len(bd.instances)
		if so.LeftDescriptor == bd {
			uses++
		}
		if so.RightDescriptor == bd {
			uses++
		}
		switch bd.Symbol {
		case DescriptorDollar:
			if uses < 2 {
				return validationErrorf("[$] type bonding descriptors require more than one instance in a string")
			}
		case DescriptorLeft, DescriptorRight:
			if findComplement(so, bd) == nil {
				return validationErrorf("%s complementary partner not found", bd.String())
			}
		}
	}
	return nil
}

func findComplement(so *StochasticObject, bd *BondDescriptor) *BondDescriptor {
	for _, other := range so.descriptors {
		if bd.IsPair(other) {
			return other
		}
	}
	return nil
}

// checkImplicitEndGroupEnds verifies implicit "[]" end groups sit at the
// outer ends of the molecule.
func checkImplicitEndGroupEnds(c nodeContainer, parent nodeContainer) error {
	nodes := c.nodeList()
	for i, n := range nodes {
		switch n := n.(type) {
		case *StochasticObject:
			if n.LeftDescriptor != nil && n.LeftDescriptor.Implicit() {
				if i != 0 {
					return validationErrorf(
						"with the left end group implicit, nothing can sit left of the stochastic object")
				}
				if parent != nil {
					return validationErrorf("implicit left end group not allowed within interior")
				}
			}
			if n.RightDescriptor != nil && n.RightDescriptor.Implicit() {
				if i != len(nodes)-1 {
					return validationErrorf(
						"with the right end group implicit, nothing can sit right of the stochastic object")
				}
				if parent != nil {
					return validationErrorf("implicit right end group not allowed within interior")
				}
			}
			for _, sf := range n.fragments {
				if err := checkImplicitEndGroupEnds(sf, c); err != nil {
					return err
				}
			}
		case *Branch:
			if err := checkImplicitEndGroupEnds(n, c); err != nil {
				return err
			}
		}
	}
	return nil
}
