package bigsmiles

import "strings"

// Node is one element of a parse tree: an *Atom, *Bond,
// *BondDescriptorAtom, *Branch or *StochasticObject.
type Node interface {
	write(sb *strings.Builder, opts WriteOptions)
	node()
}

// Scope is a container the constructor can be positioned inside while
// building: *Molecule, *Branch, *StochasticObject or *StochasticFragment.
type Scope interface {
	Root() *Molecule
	InStochasticObject() bool
}

// nodeContainer is a Scope that holds an ordered node sequence. All scopes
// except *StochasticObject qualify.
type nodeContainer interface {
	Scope
	addNode(n Node)
	nodeList() []Node
	setNodes(nodes []Node)
}

// Endpoint is anything a bond can terminate on.
type Endpoint interface {
	Node
	endpointLabel() string
}

// WriteOptions controls serialization back to BigSMILES text. The zero
// value hides aromatic ":" bond symbols, hides the default descriptor
// index 1, prints ring-bond symbols on the opening atom only, and prints
// implicit hydrogen counts never.
type WriteOptions struct {
	// ShowAromaticBonds prints ":" for aromatic bonds instead of
	// suppressing them.
	ShowAromaticBonds bool

	// ShowDescriptorIndexOne prints "[$1]" instead of "[$]".
	ShowDescriptorIndexOne bool

	// ShowRingBondOnBothAtoms prints a ring bond's symbol at both ring
	// index sites, not just the opening atom.
	ShowRingBondOnBothAtoms bool

	// ShowHydrogens prints computed implicit hydrogen counts in brackets.
	ShowHydrogens bool

	// HideAtomClass drops ":n" atom class annotations.
	HideAtomClass bool
}

func writeNodes(sb *strings.Builder, nodes []Node, opts WriteOptions) {
	for _, n := range nodes {
		n.write(sb, opts)
	}
}

func nodeString(n Node, opts WriteOptions) string {
	var sb strings.Builder
	n.write(&sb, opts)
	return sb.String()
}
