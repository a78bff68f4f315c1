package bigsmiles

// TokenKind identifies one lexical class of BigSMILES text.
type TokenKind int

const (
	TokenBond TokenKind = iota
	TokenAtom
	TokenAromatic
	TokenAtomExtend
	TokenBranchStart
	TokenBranchEnd
	TokenRing
	TokenRing2
	TokenBondEZ
	TokenDisconnected
	TokenRxn
	TokenBondDescriptor
	TokenStochasticSeparator
	TokenStochasticStart
	TokenStochasticEnd
	TokenImplicitEndGroup
	TokenBondDescriptorLadder
)

var tokenKindNames = map[TokenKind]string{
	TokenBond:                 "Bond",
	TokenAtom:                 "Atom",
	TokenAromatic:             "Aromatic",
	TokenAtomExtend:           "AtomExtend",
	TokenBranchStart:          "BranchStart",
	TokenBranchEnd:            "BranchEnd",
	TokenRing:                 "Ring",
	TokenRing2:                "Ring2",
	TokenBondEZ:               "BondEZ",
	TokenDisconnected:         "Disconnected",
	TokenRxn:                  "Rxn",
	TokenBondDescriptor:       "BondDescriptor",
	TokenStochasticSeparator:  "StochasticSeparator",
	TokenStochasticStart:      "StochasticStart",
	TokenStochasticEnd:        "StochasticEnd",
	TokenImplicitEndGroup:     "ImplicitEndGroup",
	TokenBondDescriptorLadder: "BondDescriptorLadder",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is one lexeme of BigSMILES text. Column is the byte offset of the
// lexeme within the input handed to the tokenizer.
type Token struct {
	Kind   TokenKind
	Value  string
	Column int
}

func (t Token) String() string {
	return t.Kind.String() + ": " + t.Value
}
