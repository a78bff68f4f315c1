// Package formula computes molecular formulas, molar masses and elemental
// analyses from parsed BigSMILES molecules. Formulas print in Hill
// notation: carbon then hydrogen first when carbon is present, everything
// else alphabetically. A molecule containing a stochastic object yields a
// partial formula marked with a trailing "{}".
package formula

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dhamidi/bigsmiles/bigsmiles"
	"github.com/dhamidi/bigsmiles/chem"
)

// Formula is an element-count multiset for a molecule or molecular
// fragment. The zero value is not usable; build one with FromMolecule,
// FromFragment or Parse.
type Formula struct {
	counts     map[string]int
	stochastic int
}

// FromMolecule counts the elements of a parsed molecule, implicit
// hydrogens included. Each stochastic object contributes one "{}" marker
// instead of its contents.
func FromMolecule(m *bigsmiles.Molecule) *Formula {
	f := &Formula{counts: make(map[string]int)}
	f.walk(m.Nodes())
	return f
}

// FromFragment counts the elements of one stochastic fragment, giving the
// formula of a single repeat unit or end group.
func FromFragment(sf *bigsmiles.StochasticFragment) *Formula {
	f := &Formula{counts: make(map[string]int)}
	f.walk(sf.Nodes())
	return f
}

func (f *Formula) walk(nodes []bigsmiles.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *bigsmiles.Atom:
			f.addAtom(n)
		case *bigsmiles.Branch:
			f.walk(n.Nodes())
		case *bigsmiles.StochasticObject:
			f.stochastic++
		}
	}
}

func (f *Formula) addAtom(a *bigsmiles.Atom) {
	f.counts[a.Symbol]++
	hydrogens := int(a.ImplicitHydrogens())
	if a.HasHydrogens {
		hydrogens = a.Hydrogens
	}
	f.counts["H"] += hydrogens
	if f.counts["H"] == 0 {
		delete(f.counts, "H")
	}
}

// Count returns how many atoms of the element the formula holds.
func (f *Formula) Count(symbol string) int { return f.counts[symbol] }

// Elements returns a copy of the element-count map.
func (f *Formula) Elements() map[string]int {
	elements := make(map[string]int, len(f.counts))
	for symbol, count := range f.counts {
		elements[symbol] = count
	}
	return elements
}

// ContainsStochasticObject reports whether the formula is partial because
// a stochastic object was counted as "{}".
func (f *Formula) ContainsStochasticObject() bool { return f.stochastic > 0 }

// String renders the formula in Hill notation.
func (f *Formula) String() string {
	var sb strings.Builder
	for _, symbol := range f.order() {
		count, ok := f.counts[symbol]
		if !ok || count == 0 {
			continue
		}
		sb.WriteString(symbol)
		if count != 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	if f.stochastic > 0 {
		sb.WriteString("{}")
		if f.stochastic != 1 {
			sb.WriteString(strconv.Itoa(f.stochastic))
		}
	}
	return sb.String()
}

func (f *Formula) order() []string {
	symbols := make([]string, 0, len(f.counts))
	for symbol := range f.counts {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	if f.counts["C"] == 0 {
		return symbols
	}
	ordered := []string{"C", "H"}
	for _, symbol := range symbols {
		if symbol != "C" && symbol != "H" {
			ordered = append(ordered, symbol)
		}
	}
	return ordered
}

// MolarMass is the mass of one mole in g/mol. For a partial formula the
// stochastic contents are not included; check ContainsStochasticObject.
func (f *Formula) MolarMass() float64 {
	mass := 0.0
	for symbol, count := range f.counts {
		mass += chem.AtomicMass(symbol) * float64(count)
	}
	return mass
}

// ElementalAnalysis returns the mass fraction of each element.
func (f *Formula) ElementalAnalysis() map[string]float64 {
	total := f.MolarMass()
	analysis := make(map[string]float64, len(f.counts))
	if total == 0 {
		return analysis
	}
	for symbol, count := range f.counts {
		analysis[symbol] = chem.AtomicMass(symbol) * float64(count) / total
	}
	return analysis
}

var formulaPattern = regexp.MustCompile(`[A-Z][a-z]*|\d+`)

// Parse reads a molecular formula string like "C2H6O" into a Formula.
func Parse(text string) (*Formula, error) {
	parts := formulaPattern.FindAllString(text, -1)
	if strings.Join(parts, "") != text {
		return nil, fmt.Errorf("invalid molecular formula %q", text)
	}
	f := &Formula{counts: make(map[string]int)}
	for i, part := range parts {
		if part[0] >= '0' && part[0] <= '9' {
			if i == 0 {
				return nil, fmt.Errorf("molecular formula can't start with a count: %q", text)
			}
			continue
		}
		if !chem.IsElement(part) {
			return nil, fmt.Errorf("invalid symbol %q in molecular formula", part)
		}
		count := 1
		if i+1 < len(parts) && parts[i+1][0] >= '0' && parts[i+1][0] <= '9' {
			count, _ = strconv.Atoi(parts[i+1])
		}
		f.counts[part] += count
	}
	return f, nil
}
