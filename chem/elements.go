// Package chem holds the read-only chemical reference data shared by the
// BigSMILES tokenizer, constructor and formula calculators: the periodic
// table with allowed valences, the organic and aromatic subsets, and the
// bond-symbol to bond-order table. All data here is immutable and safe to
// share between goroutines.
package chem

import "sort"

// Element describes one entry of the periodic table.
type Element struct {
	Symbol       string
	Name         string
	AtomicNumber int
	AtomicMass   float64

	// Valences lists the allowed valences in escalation order; the first
	// entry is the default. Empty means the element is only ever written
	// unbonded (noble gases and exotic metals).
	Valences []int

	// Organic marks membership in the SMILES organic subset (writable
	// without brackets).
	Organic bool

	// Aromatic marks elements that may be written lowercase to flag an
	// aromatic atom.
	Aromatic bool
}

var elements = []Element{
	{"H", "hydrogen", 1, 1.008, []int{1}, false, false},
	{"He", "helium", 2, 4.0026, nil, false, false},
	{"Li", "lithium", 3, 6.94, []int{1}, false, false},
	{"Be", "beryllium", 4, 9.0122, []int{2}, false, false},
	{"B", "boron", 5, 10.81, []int{3}, true, true},
	{"C", "carbon", 6, 12.011, []int{4}, true, true},
	{"N", "nitrogen", 7, 14.007, []int{3, 5}, true, true},
	{"O", "oxygen", 8, 15.999, []int{2}, true, true},
	{"F", "fluorine", 9, 18.998, []int{1}, true, false},
	{"Ne", "neon", 10, 20.180, nil, false, false},
	{"Na", "sodium", 11, 22.990, []int{1}, false, false},
	{"Mg", "magnesium", 12, 24.305, []int{2}, false, false},
	{"Al", "aluminium", 13, 26.982, []int{3}, false, false},
	{"Si", "silicon", 14, 28.085, []int{4}, false, false},
	{"P", "phosphorus", 15, 30.974, []int{3, 5}, true, true},
	{"S", "sulfur", 16, 32.06, []int{2, 4, 6}, true, true},
	{"Cl", "chlorine", 17, 35.45, []int{1, 3, 5, 7}, true, false},
	{"Ar", "argon", 18, 39.948, nil, false, false},
	{"K", "potassium", 19, 39.098, []int{1}, false, false},
	{"Ca", "calcium", 20, 40.078, []int{2}, false, false},
	{"Sc", "scandium", 21, 44.956, []int{3}, false, false},
	{"Ti", "titanium", 22, 47.867, []int{2, 3, 4}, false, false},
	{"V", "vanadium", 23, 50.942, []int{2, 3, 4, 5}, false, false},
	{"Cr", "chromium", 24, 51.996, []int{2, 3, 6}, false, false},
	{"Mn", "manganese", 25, 54.938, []int{2, 3, 4, 6, 7}, false, false},
	{"Fe", "iron", 26, 55.845, []int{2, 3, 4, 6}, false, false},
	{"Co", "cobalt", 27, 58.933, []int{2, 3}, false, false},
	{"Ni", "nickel", 28, 58.693, []int{2, 3}, false, false},
	{"Cu", "copper", 29, 63.546, []int{1, 2}, false, false},
	{"Zn", "zinc", 30, 65.38, []int{2}, false, false},
	{"Ga", "gallium", 31, 69.723, []int{3}, false, false},
	{"Ge", "germanium", 32, 72.630, []int{2, 4}, false, false},
	{"As", "arsenic", 33, 74.922, []int{3, 5}, false, true},
	{"Se", "selenium", 34, 78.971, []int{2, 4, 6}, false, true},
	{"Br", "bromine", 35, 79.904, []int{1, 3, 5, 7}, true, false},
	{"Kr", "krypton", 36, 83.798, nil, false, false},
	{"Rb", "rubidium", 37, 85.468, []int{1}, false, false},
	{"Sr", "strontium", 38, 87.62, []int{2}, false, false},
	{"Y", "yttrium", 39, 88.906, []int{3}, false, false},
	{"Zr", "zirconium", 40, 91.224, []int{2, 3, 4}, false, false},
	{"Nb", "niobium", 41, 92.906, []int{3, 5}, false, false},
	{"Mo", "molybdenum", 42, 95.95, []int{2, 3, 4, 5, 6}, false, false},
	{"Tc", "technetium", 43, 98.0, []int{4, 6, 7}, false, false},
	{"Ru", "ruthenium", 44, 101.07, []int{2, 3, 4, 6, 8}, false, false},
	{"Rh", "rhodium", 45, 102.91, []int{2, 3, 4, 6, 9}, false, false},
	{"Pd", "palladium", 46, 106.42, []int{2, 4}, false, false},
	{"Ag", "silver", 47, 107.87, []int{1}, false, false},
	{"Cd", "cadmium", 48, 112.41, []int{2}, false, false},
	{"In", "indium", 49, 114.82, []int{1, 3}, false, false},
	{"Sn", "tin", 50, 118.71, []int{2, 4}, false, false},
	{"Sb", "antimony", 51, 121.76, []int{3, 5}, false, false},
	{"Te", "tellurium", 52, 127.60, []int{2, 4, 6}, false, false},
	{"I", "iodine", 53, 126.90, []int{1, 3, 5, 7}, true, false},
	{"Xe", "xenon", 54, 131.29, nil, false, false},
	{"Cs", "caesium", 55, 132.91, []int{1}, false, false},
	{"Ba", "barium", 56, 137.33, []int{2}, false, false},
	{"La", "lanthanum", 57, 138.91, []int{3}, false, false},
	{"Ce", "cerium", 58, 140.12, []int{3, 4}, false, false},
	{"Pr", "praseodymium", 59, 140.91, []int{3}, false, false},
	{"Nd", "neodymium", 60, 144.24, []int{3}, false, false},
	{"Pm", "promethium", 61, 145.0, []int{3}, false, false},
	{"Sm", "samarium", 62, 150.36, []int{2, 3}, false, false},
	{"Eu", "europium", 63, 151.96, []int{2, 3}, false, false},
	{"Gd", "gadolinium", 64, 157.25, []int{3}, false, false},
	{"Tb", "terbium", 65, 158.93, []int{3}, false, false},
	{"Dy", "dysprosium", 66, 162.50, []int{3}, false, false},
	{"Ho", "holmium", 67, 164.93, []int{3}, false, false},
	{"Er", "erbium", 68, 167.26, []int{3}, false, false},
	{"Tm", "thulium", 69, 168.93, []int{3}, false, false},
	{"Yb", "ytterbium", 70, 173.05, []int{2, 3}, false, false},
	{"Lu", "lutetium", 71, 174.97, []int{3}, false, false},
	{"Hf", "hafnium", 72, 178.49, []int{4}, false, false},
	{"Ta", "tantalum", 73, 180.95, []int{5}, false, false},
	{"W", "tungsten", 74, 183.84, []int{2, 3, 4, 5, 6}, false, false},
	{"Re", "rhenium", 75, 186.21, []int{4, 6, 7}, false, false},
	{"Os", "osmium", 76, 190.23, []int{2, 3, 4, 6, 8}, false, false},
	{"Ir", "iridium", 77, 192.22, []int{2, 3, 4, 6}, false, false},
	{"Pt", "platinum", 78, 195.08, []int{2, 4}, false, false},
	{"Au", "gold", 79, 196.97, []int{1, 3}, false, false},
	{"Hg", "mercury", 80, 200.59, []int{1, 2}, false, false},
	{"Tl", "thallium", 81, 204.38, []int{1, 3}, false, false},
	{"Pb", "lead", 82, 207.2, []int{2, 4}, false, false},
	{"Bi", "bismuth", 83, 208.98, []int{3, 5}, false, false},
	{"Po", "polonium", 84, 209.0, []int{2, 4, 6}, false, false},
	{"At", "astatine", 85, 210.0, []int{1, 3, 5, 7}, false, false},
	{"Rn", "radon", 86, 222.0, nil, false, false},
	{"Fr", "francium", 87, 223.0, []int{1}, false, false},
	{"Ra", "radium", 88, 226.0, []int{2}, false, false},
	{"Ac", "actinium", 89, 227.0, []int{3}, false, false},
	{"Th", "thorium", 90, 232.04, []int{4}, false, false},
	{"Pa", "protactinium", 91, 231.04, []int{4, 5}, false, false},
	{"U", "uranium", 92, 238.03, []int{3, 4, 5, 6}, false, false},
	{"Np", "neptunium", 93, 237.0, []int{3, 4, 5, 6, 7}, false, false},
	{"Pu", "plutonium", 94, 244.0, []int{3, 4, 5, 6}, false, false},
	{"Am", "americium", 95, 243.0, []int{3, 4, 5, 6}, false, false},
	{"Cm", "curium", 96, 247.0, []int{3, 4}, false, false},
	{"Bk", "berkelium", 97, 247.0, []int{3, 4}, false, false},
	{"Cf", "californium", 98, 251.0, []int{3}, false, false},
	{"Es", "einsteinium", 99, 252.0, []int{3}, false, false},
	{"Fm", "fermium", 100, 257.0, []int{3}, false, false},
	{"Md", "mendelevium", 101, 258.0, []int{2, 3}, false, false},
	{"No", "nobelium", 102, 259.0, []int{2, 3}, false, false},
	{"Lr", "lawrencium", 103, 266.0, []int{3}, false, false},
	{"Rf", "rutherfordium", 104, 267.0, []int{4}, false, false},
	{"Db", "dubnium", 105, 268.0, []int{5}, false, false},
	{"Sg", "seaborgium", 106, 269.0, []int{6}, false, false},
	{"Bh", "bohrium", 107, 270.0, []int{7}, false, false},
	{"Hs", "hassium", 108, 277.0, []int{8}, false, false},
	{"Mt", "meitnerium", 109, 278.0, nil, false, false},
	{"Ds", "darmstadtium", 110, 281.0, nil, false, false},
	{"Rg", "roentgenium", 111, 282.0, nil, false, false},
	{"Cn", "copernicium", 112, 285.0, nil, false, false},
	{"Nh", "nihonium", 113, 286.0, nil, false, false},
	{"Fl", "flerovium", 114, 289.0, nil, false, false},
	{"Mc", "moscovium", 115, 290.0, nil, false, false},
	{"Lv", "livermorium", 116, 293.0, nil, false, false},
	{"Ts", "tennessine", 117, 294.0, nil, false, false},
	{"Og", "oganesson", 118, 294.0, nil, false, false},
}

var (
	bySymbol = make(map[string]*Element, len(elements))

	// SymbolsLongestFirst lists every element symbol ordered so that a
	// longest-match scan hits "Cl" before "C" and "Br" before "B".
	SymbolsLongestFirst []string

	// OrganicLongestFirst lists the organic-subset symbols in the same
	// longest-match order.
	OrganicLongestFirst []string

	// AromaticSymbols is the set of lowercase aromatic symbols ("c", "n", ...).
	AromaticSymbols = make(map[string]bool)

	// AromaticLongestFirst lists the aromatic symbols in longest-match order.
	AromaticLongestFirst []string
)

func init() {
	for i := range elements {
		e := &elements[i]
		bySymbol[e.Symbol] = e
		SymbolsLongestFirst = append(SymbolsLongestFirst, e.Symbol)
		if e.Organic {
			OrganicLongestFirst = append(OrganicLongestFirst, e.Symbol)
		}
		if e.Aromatic {
			AromaticSymbols[lower(e.Symbol)] = true
			AromaticLongestFirst = append(AromaticLongestFirst, lower(e.Symbol))
		}
	}
	longestFirst(SymbolsLongestFirst)
	longestFirst(OrganicLongestFirst)
	longestFirst(AromaticLongestFirst)
}

func longestFirst(symbols []string) {
	sort.Slice(symbols, func(i, j int) bool {
		if len(symbols[i]) != len(symbols[j]) {
			return len(symbols[i]) > len(symbols[j])
		}
		return symbols[i] < symbols[j]
	})
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Lookup returns the element for a symbol written in its canonical
// capitalization ("Cl", "C"). The second result is false for unknown symbols.
func Lookup(symbol string) (*Element, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}

// IsElement reports whether symbol names a periodic-table element.
func IsElement(symbol string) bool {
	_, ok := bySymbol[symbol]
	return ok
}

// IsAromaticSymbol reports whether symbol is a lowercase aromatic form
// ("c", "n", "o", "p", "s", "b", "se", "as").
func IsAromaticSymbol(symbol string) bool {
	return AromaticSymbols[symbol]
}

// IsOrganic reports whether symbol belongs to the SMILES organic subset.
func IsOrganic(symbol string) bool {
	e, ok := bySymbol[symbol]
	return ok && e.Organic
}

// AtomicMass returns the standard atomic mass for a symbol, or 0 when the
// symbol is unknown.
func AtomicMass(symbol string) float64 {
	if e, ok := bySymbol[symbol]; ok {
		return e.AtomicMass
	}
	return 0
}

// Valences returns the allowed-valence escalation list for a symbol. The
// returned slice must not be modified.
func Valences(symbol string) []int {
	if e, ok := bySymbol[symbol]; ok {
		return e.Valences
	}
	return nil
}
