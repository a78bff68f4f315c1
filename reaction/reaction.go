// Package reaction parses chemical reaction notation built from BigSMILES
// chemicals: "reactants >> products" or "reactants > agents > products",
// with comma-separated chemicals inside each block. Each chemical is
// parsed by the core parser and split at disconnect points.
package reaction

import (
	"fmt"
	"strings"

	"github.com/dhamidi/bigsmiles/bigsmiles"
)

// Reaction holds the parsed chemicals of one reaction string.
type Reaction struct {
	Reactants []*bigsmiles.Molecule
	Agents    []*bigsmiles.Molecule
	Products  []*bigsmiles.Molecule
}

// Parse parses a reaction string. Whitespace is ignored. A ">" inside a
// bonding descriptor ("[>]", "[>2]") never counts as a reaction arrow.
func Parse(text string) (*Reaction, error) {
	text = strings.Join(strings.Fields(text), "")
	blocks, arrows := splitArrows(text)

	switch {
	case len(arrows) == 1 && arrows[0] == ">>":
		reactants, err := parseBlock(blocks[0])
		if err != nil {
			return nil, err
		}
		products, err := parseBlock(blocks[1])
		if err != nil {
			return nil, err
		}
		return &Reaction{Reactants: reactants, Products: products}, nil

	case len(arrows) == 2 && arrows[0] == ">" && arrows[1] == ">":
		reactants, err := parseBlock(blocks[0])
		if err != nil {
			return nil, err
		}
		agents, err := parseBlock(blocks[1])
		if err != nil {
			return nil, err
		}
		products, err := parseBlock(blocks[2])
		if err != nil {
			return nil, err
		}
		return &Reaction{Reactants: reactants, Agents: agents, Products: products}, nil
	}

	return nil, fmt.Errorf("invalid reaction %q; expected 'reactants >> products' or 'reactants > agents > products'", text)
}

// splitArrows splits the text at reaction arrows, skipping ">" characters
// that immediately follow "[".
func splitArrows(text string) (blocks []string, arrows []string) {
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '>' {
			continue
		}
		if i > 0 && text[i-1] == '[' {
			continue
		}
		arrow := ">"
		if i+1 < len(text) && text[i+1] == '>' {
			arrow = ">>"
		}
		blocks = append(blocks, text[start:i])
		arrows = append(arrows, arrow)
		i += len(arrow) - 1
		start = i + 1
	}
	blocks = append(blocks, text[start:])
	return blocks, arrows
}

// parseBlock parses a comma-separated list of chemicals, splitting each
// parsed molecule at its disconnect points. Commas inside stochastic
// objects separate fragments, not chemicals.
func parseBlock(block string) ([]*bigsmiles.Molecule, error) {
	var chemicals []*bigsmiles.Molecule
	for _, chunk := range splitChemicals(block) {
		m, err := bigsmiles.Parse(chunk)
		if err != nil {
			return nil, err
		}
		parts, err := bigsmiles.Split(m)
		if err != nil {
			return nil, err
		}
		chemicals = append(chemicals, parts...)
	}
	return chemicals, nil
}

func splitChemicals(block string) []string {
	var chunks []string
	depth := 0
	start := 0
	for i := 0; i < len(block); i++ {
		switch block[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',', ';':
			if depth == 0 {
				chunks = append(chunks, block[start:i])
				start = i + 1
			}
		}
	}
	return append(chunks, block[start:])
}
