package chem

// Bond symbols as they appear in (Big)SMILES text. The empty string is an
// implicit single bond.
const (
	BondSingle     = ""
	BondDash       = "-"
	BondDouble     = "="
	BondTriple     = "#"
	BondQuadruple  = "$"
	BondAromatic   = ":"
	BondUp         = "/"
	BondDown       = "\\"
	BondDisconnect = "."
)

var bondOrders = map[string]float64{
	BondDisconnect: 0,
	BondSingle:     1,
	BondDash:       1,
	BondUp:         1,
	BondDown:       1,
	BondAromatic:   1.5,
	BondDouble:     2,
	BondTriple:     3,
	BondQuadruple:  4,
}

// BondOrder returns the numeric order of a bond symbol; aromatic bonds count
// as 1.5. Unknown symbols return -1.
func BondOrder(symbol string) float64 {
	if order, ok := bondOrders[symbol]; ok {
		return order
	}
	return -1
}

// SymbolForOrder is the inverse of BondOrder for whole and aromatic orders,
// preferring the implicit single-bond spelling. Returns false when no symbol
// carries the requested order.
func SymbolForOrder(order float64) (string, bool) {
	switch order {
	case 0:
		return BondDisconnect, true
	case 1:
		return BondSingle, true
	case 1.5:
		return BondAromatic, true
	case 2:
		return BondDouble, true
	case 3:
		return BondTriple, true
	case 4:
		return BondQuadruple, true
	}
	return "", false
}

// IsBondSymbol reports whether symbol is a valid bond spelling.
func IsBondSymbol(symbol string) bool {
	_, ok := bondOrders[symbol]
	return ok
}

// IsStereoBond reports whether symbol is one of the cis/trans markers.
func IsStereoBond(symbol string) bool {
	return symbol == BondUp || symbol == BondDown
}
