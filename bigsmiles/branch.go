package bigsmiles

import "strings"

// Branch is a parenthesized side chain.
type Branch struct {
	ID int

	nodes  []Node
	parent nodeContainer
}

func (br *Branch) node() {}

// Nodes lists the branch contents in source order.
func (br *Branch) Nodes() []Node { return br.nodes }

func (br *Branch) addNode(n Node)        { br.nodes = append(br.nodes, n) }
func (br *Branch) nodeList() []Node      { return br.nodes }
func (br *Branch) setNodes(nodes []Node) { br.nodes = nodes }

func (br *Branch) Root() *Molecule {
	if br.parent == nil {
		return nil
	}
	return br.parent.Root()
}

func (br *Branch) InStochasticObject() bool {
	return br.parent.InStochasticObject()
}

func (br *Branch) String() string {
	return nodeString(br, WriteOptions{})
}

func (br *Branch) write(sb *strings.Builder, opts WriteOptions) {
	sb.WriteString("(")
	writeNodes(sb, br.nodes, opts)
	sb.WriteString(")")
}
