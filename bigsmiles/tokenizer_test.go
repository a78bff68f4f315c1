package bigsmiles

import (
	"errors"
	"testing"
)

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		input string
		kinds []TokenKind
	}{
		{"CC", []TokenKind{TokenAtom, TokenAtom}},
		{"C=C", []TokenKind{TokenAtom, TokenBond, TokenAtom}},
		{"C#N", []TokenKind{TokenAtom, TokenBond, TokenAtom}},
		{"CCl", []TokenKind{TokenAtom, TokenAtom}},
		{"CBr", []TokenKind{TokenAtom, TokenAtom}},
		{"c1ccccc1", []TokenKind{
			TokenAromatic, TokenRing, TokenAromatic, TokenAromatic,
			TokenAromatic, TokenAromatic, TokenAromatic, TokenRing}},
		{"C%12CC%12", []TokenKind{TokenAtom, TokenRing2, TokenAtom, TokenAtom, TokenRing2}},
		{"C(C)C", []TokenKind{TokenAtom, TokenBranchStart, TokenAtom, TokenBranchEnd, TokenAtom}},
		{"[12CH3]", []TokenKind{TokenAtomExtend}},
		{"[Na+]", []TokenKind{TokenAtomExtend}},
		{"F/C=C/F", []TokenKind{TokenAtom, TokenBondEZ, TokenAtom, TokenBond, TokenAtom, TokenBondEZ, TokenAtom}},
		{"C.C", []TokenKind{TokenAtom, TokenDisconnected, TokenAtom}},
		{"C>>C", []TokenKind{TokenAtom, TokenRxn, TokenAtom}},
		{"C>C", []TokenKind{TokenAtom, TokenRxn, TokenAtom}},
		{"{[>][<]CC[>][<]}", []TokenKind{
			TokenStochasticStart, TokenBondDescriptor, TokenBondDescriptor,
			TokenAtom, TokenAtom, TokenBondDescriptor, TokenBondDescriptor,
			TokenStochasticEnd}},
		{"{[]C[]}", []TokenKind{
			TokenStochasticStart, TokenImplicitEndGroup, TokenAtom,
			TokenImplicitEndGroup, TokenStochasticEnd}},
		{"{[<]C[>],[<]N[>]}", []TokenKind{
			TokenStochasticStart, TokenBondDescriptor, TokenAtom, TokenBondDescriptor,
			TokenStochasticSeparator, TokenBondDescriptor, TokenAtom, TokenBondDescriptor,
			TokenStochasticEnd}},
		{"[$1[$2]1]", []TokenKind{TokenBondDescriptorLadder}},
		{"CC{[>][<]CC(C)[>][<]}CC(C)=C", []TokenKind{
			TokenAtom, TokenAtom, TokenStochasticStart, TokenBondDescriptor,
			TokenBondDescriptor, TokenAtom, TokenAtom, TokenBranchStart, TokenAtom,
			TokenBranchEnd, TokenBondDescriptor, TokenBondDescriptor,
			TokenStochasticEnd, TokenAtom, TokenAtom, TokenBranchStart, TokenAtom,
			TokenBranchEnd, TokenBond, TokenAtom}},
		{"C C", []TokenKind{TokenAtom, TokenAtom}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if len(tokens) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d (%v)", len(tokens), len(tt.kinds), tokens)
			}
			for i, tok := range tokens {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d = %v, want %v", i, tok.Kind, tt.kinds[i])
				}
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown symbol", "DJW"},
		{"bare uranium", "U"},
		{"bare zinc", "CZnC"},
		{"unterminated bracket atom", "[C"},
		{"bad percent ring", "C%1C"},
		{"bad atom class", "[C:]"},
		{"unknown bracket element", "[Zq]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", tt.input)
			}
			var terr *TokenizeError
			if !errors.As(err, &terr) {
				t.Fatalf("error %v is not a *TokenizeError", err)
			}
			if terr.Symbol == "" {
				t.Error("TokenizeError carries no offending symbol")
			}
		})
	}
}

func TestTokenizeColumns(t *testing.T) {
	tokens, err := Tokenize("CC{[<]C[>]}")
	if err != nil {
		t.Fatal(err)
	}
	wantColumns := []int{0, 1, 2, 3, 6, 7, 10}
	if len(tokens) != len(wantColumns) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantColumns))
	}
	for i, tok := range tokens {
		if tok.Column != wantColumns[i] {
			t.Errorf("token %d (%s) column = %d, want %d", i, tok, tok.Column, wantColumns[i])
		}
	}
}

func TestTokenizeAtomSymbol(t *testing.T) {
	tests := []struct {
		input string
		want  AtomSpec
	}{
		{"C", AtomSpec{Symbol: "C"}},
		{"n", AtomSpec{Symbol: "N", Aromatic: true}},
		{"[C]", AtomSpec{Symbol: "C", HasHydrogens: true}},
		{"[CH4]", AtomSpec{Symbol: "C", Hydrogens: 4, HasHydrogens: true}},
		{"[13C@H+:1]", AtomSpec{
			Symbol: "C", Isotope: 13, Stereo: "@", Hydrogens: 1,
			HasHydrogens: true, Charge: 1, Class: 1}},
		{"[Fe+2]", AtomSpec{Symbol: "Fe", Charge: 2, HasHydrogens: true}},
		{"[Fe++]", AtomSpec{Symbol: "Fe", Charge: 2, HasHydrogens: true}},
		{"[O--]", AtomSpec{Symbol: "O", Charge: -2, HasHydrogens: true}},
		{"[nH]", AtomSpec{Symbol: "N", Aromatic: true, Hydrogens: 1, HasHydrogens: true}},
		{"[235U]", AtomSpec{Symbol: "U", Isotope: 235, HasHydrogens: true}},
		{"[C@@H2]", AtomSpec{Symbol: "C", Stereo: "@@", Hydrogens: 2, HasHydrogens: true}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := TokenizeAtomSymbol(tt.input)
			if err != nil {
				t.Fatalf("TokenizeAtomSymbol(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("TokenizeAtomSymbol(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeBondingDescriptor(t *testing.T) {
	tests := []struct {
		input  string
		symbol string
		index  int
	}{
		{"[$]", "$", 1},
		{"[$1]", "$", 1},
		{"[<]", "<", 1},
		{"[>2]", ">", 2},
		{"[<12]", "<", 12},
		{"[]", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			symbol, index := TokenizeBondingDescriptor(tt.input)
			if symbol != tt.symbol || index != tt.index {
				t.Errorf("TokenizeBondingDescriptor(%q) = (%q, %d), want (%q, %d)",
					tt.input, symbol, index, tt.symbol, tt.index)
			}
		})
	}
}
