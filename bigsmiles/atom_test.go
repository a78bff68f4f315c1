package bigsmiles

import (
	"testing"
)

func TestAtomValence(t *testing.T) {
	tests := []struct {
		input     string
		implicitH float64
		full      bool
	}{
		{"C", 4, true},
		{"N", 3, true},
		{"O", 2, true},
		{"CC", 3, true},
		{"C=C", 2, true},
		{"C#C", 1, true},
		{"[CH3]", 0, false}, // explicit hydrogens, one bond short
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			atom := m.Atoms()[0]
			if got := atom.ImplicitHydrogens(); got != tt.implicitH {
				t.Errorf("ImplicitHydrogens() = %v, want %v", got, tt.implicitH)
			}
			if got := atom.FullValence(); got != tt.full {
				t.Errorf("FullValence() = %v, want %v", got, tt.full)
			}
		})
	}
}

func TestAtomValenceEscalation(t *testing.T) {
	// sulfur escalates 2 -> 4 -> 6 as double bonds are added
	m, err := Parse("O=S(=O)(O)O")
	if err != nil {
		t.Fatal(err)
	}
	var sulfur *Atom
	for _, a := range m.Atoms() {
		if a.Symbol == "S" {
			sulfur = a
		}
	}
	if sulfur == nil {
		t.Fatal("no sulfur atom found")
	}
	if got := sulfur.Valence(); got != 6 {
		t.Errorf("Valence() = %v, want 6", got)
	}
	if !sulfur.FullValence() {
		t.Error("FullValence() = false, want true")
	}
}

func TestAtomShowHydrogens(t *testing.T) {
	m, err := Parse("CO")
	if err != nil {
		t.Fatal(err)
	}
	got := m.StringWith(WriteOptions{ShowHydrogens: true})
	if got != "[CH3][OH]" {
		t.Errorf("StringWith(ShowHydrogens) = %q, want %q", got, "[CH3][OH]")
	}
}

func TestAtomRingIDs(t *testing.T) {
	m, err := Parse("C1CCCCC1")
	if err != nil {
		t.Fatal(err)
	}
	atoms := m.Atoms()
	if got := atoms[0].RingIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("first atom RingIDs() = %v, want [1]", got)
	}
	if got := atoms[len(atoms)-1].RingIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("last atom RingIDs() = %v, want [1]", got)
	}
	if got := atoms[1].RingIDs(); len(got) != 0 {
		t.Errorf("interior atom RingIDs() = %v, want none", got)
	}
}
