package bigsmiles

import (
	"strings"
)

const (
	treeVertical = "│"
	treeTee      = "├──"
	treeCorner   = "└──"
	treeTab      = "    "
)

// Tree renders the molecule's node structure as an indented tree, one row
// per node, for inspection and debugging.
func (m *Molecule) Tree() string {
	var sb strings.Builder
	sb.WriteString("Molecule: ")
	sb.WriteString(m.String())
	writeTreeNodes(&sb, m.nodes, nil)
	return sb.String()
}

func writeTreeNodes(sb *strings.Builder, nodes []Node, spacers []bool) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		writeTreeRow(sb, n, spacers, last)
		switch n := n.(type) {
		case *Branch:
			writeTreeNodes(sb, n.nodes, append(spacers, last))
		case *StochasticObject:
			inner := append(spacers, last)
			for j, sf := range n.fragments {
				fragLast := j == len(n.fragments)-1
				writeTreeLabel(sb, "StochasticFragment", "", inner, fragLast)
				writeTreeNodes(sb, sf.nodes, append(inner, fragLast))
			}
		}
	}
}

func writeTreeRow(sb *strings.Builder, n Node, spacers []bool, last bool) {
	switch n := n.(type) {
	case *Atom:
		writeTreeLabel(sb, "Atom", n.String(), spacers, last)
	case *Bond:
		writeTreeLabel(sb, "Bond", n.String(), spacers, last)
	case *BondDescriptorAtom:
		writeTreeLabel(sb, "BondDescriptorAtom", n.String(), spacers, last)
	case *Branch:
		writeTreeLabel(sb, "Branch", "", spacers, last)
	case *StochasticObject:
		writeTreeLabel(sb, "StochasticObject", "", spacers, last)
	}
}

func writeTreeLabel(sb *strings.Builder, label, text string, spacers []bool, last bool) {
	sb.WriteString("\n")
	for _, spacer := range spacers {
		if !spacer {
			sb.WriteString(treeVertical)
		}
		sb.WriteString(treeTab)
	}
	if last {
		sb.WriteString(treeCorner)
	} else {
		sb.WriteString(treeTee)
	}
	sb.WriteString(" ")
	sb.WriteString(label)
	if text != "" {
		sb.WriteString(": ")
		sb.WriteString(text)
	}
}
