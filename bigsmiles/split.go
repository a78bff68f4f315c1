package bigsmiles

import (
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// Split breaks a molecule apart at its zero-order disconnect bonds and
// returns the independent sub-molecules. Segments stay together when
// something still bridges the disconnect point: a ring closure reaching
// across it, a disconnect nested inside a branch, or ionic charges pairing
// the segments into one salt. A molecule without disconnects is returned
// as is.
func Split(m *Molecule) ([]*Molecule, error) {
	if !m.HasDisconnect() {
		return []*Molecule{m}, nil
	}

	// a disconnect inside a branch can't be cut out of the text
	for _, b := range m.bonds {
		if b.Symbol != chem.BondDisconnect {
			continue
		}
		if _, ok := b.parent.(*Molecule); !ok {
			return []*Molecule{m}, nil
		}
	}

	segments := splitSegments(m)
	if len(segments) < 2 {
		return []*Molecule{m}, nil
	}
	if ringsCross(m, segments) {
		return []*Molecule{m}, nil
	}

	// charged segments stay together as one ionic compound
	var neutral []string
	var charged []string
	for _, seg := range segments {
		text := segmentText(seg)
		if segmentCharge(seg) != 0 {
			charged = append(charged, text)
		} else {
			neutral = append(neutral, text)
		}
	}

	var texts []string
	if len(charged) > 0 {
		texts = append(texts, strings.Join(charged, chem.BondDisconnect))
	}
	texts = append(texts, neutral...)

	molecules := make([]*Molecule, 0, len(texts))
	for _, text := range texts {
		sub, err := Parse(text)
		if err != nil {
			return nil, err
		}
		molecules = append(molecules, sub)
	}
	return molecules, nil
}

// splitSegments cuts the top-level node list at disconnect bonds.
func splitSegments(m *Molecule) [][]Node {
	var segments [][]Node
	var current []Node
	for _, n := range m.nodes {
		if b, ok := n.(*Bond); ok && b.Symbol == chem.BondDisconnect && b.RingID == 0 {
			if len(current) > 0 {
				segments = append(segments, current)
				current = nil
			}
			continue
		}
		current = append(current, n)
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// ringsCross reports whether any ring closure connects atoms from two
// different segments.
func ringsCross(m *Molecule, segments [][]Node) bool {
	index := make(map[*Atom]int)
	for i, seg := range segments {
		for _, atom := range segmentAtoms(seg) {
			index[atom] = i
		}
	}
	for _, ring := range m.rings {
		a1, ok1 := ring.Atom1.(*Atom)
		a2, ok2 := ring.Atom2.(*Atom)
		if ok1 && ok2 && index[a1] != index[a2] {
			return true
		}
	}
	return false
}

func segmentAtoms(nodes []Node) []*Atom {
	var atoms []*Atom
	for _, n := range nodes {
		switch n := n.(type) {
		case *Atom:
			atoms = append(atoms, n)
		case *Branch:
			atoms = append(atoms, segmentAtoms(n.nodes)...)
		case *StochasticObject:
			for _, sf := range n.fragments {
				atoms = append(atoms, segmentAtoms(sf.nodes)...)
			}
		}
	}
	return atoms
}

func segmentCharge(nodes []Node) int {
	charge := 0
	for _, atom := range segmentAtoms(nodes) {
		charge += atom.Charge
	}
	return charge
}

func segmentText(nodes []Node) string {
	var sb strings.Builder
	writeNodes(&sb, nodes, WriteOptions{})
	return sb.String()
}
