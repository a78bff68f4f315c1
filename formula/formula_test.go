package formula

import (
	"math"
	"testing"

	"github.com/dhamidi/bigsmiles/bigsmiles"
)

func mustParse(t *testing.T, input string) *bigsmiles.Molecule {
	t.Helper()
	m, err := bigsmiles.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return m
}

func TestFromMolecule(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"CCO", "C2H6O"},
		{"O", "H2O"},
		{"c1ccccc1", "C6H6"},
		{"CC(=O)OC1=CC=CC=C1C(=O)O", "C9H8O4"},
		{"[Na+]", "Na"},
		{"C(F)(F)F", "CHF3"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := FromMolecule(mustParse(t, tt.input))
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if f.ContainsStochasticObject() {
				t.Error("ContainsStochasticObject() = true, want false")
			}
		})
	}
}

func TestFromMoleculeStochastic(t *testing.T) {
	f := FromMolecule(mustParse(t, "CC{[>][<]CC(C)[>][<]}CC(C)=C"))
	if !f.ContainsStochasticObject() {
		t.Fatal("ContainsStochasticObject() = false, want true")
	}
	if got, want := f.String(), "C6H12{}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFromFragment(t *testing.T) {
	m := mustParse(t, "{[>][<]CC[>][<]}")
	objects := m.StochasticObjects()
	if len(objects) != 1 {
		t.Fatalf("StochasticObjects() = %d, want 1", len(objects))
	}
	fragments := objects[0].Fragments()
	if len(fragments) != 1 {
		t.Fatalf("Fragments() = %d, want 1", len(fragments))
	}
	f := FromFragment(fragments[0])
	if got, want := f.String(), "C2H4"; got != want {
		t.Errorf("repeat unit formula = %q, want %q", got, want)
	}
}

func TestMolarMass(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"CCO", 46.069},
		{"O", 18.015},
		{"c1ccccc1", 78.114},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := FromMolecule(mustParse(t, tt.input))
			if got := f.MolarMass(); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("MolarMass() = %v, want about %v", got, tt.want)
			}
		})
	}
}

func TestElementalAnalysis(t *testing.T) {
	f := FromMolecule(mustParse(t, "O"))
	analysis := f.ElementalAnalysis()
	if got := analysis["O"]; math.Abs(got-0.888) > 0.001 {
		t.Errorf("oxygen fraction = %v, want about 0.888", got)
	}
	if got := analysis["H"]; math.Abs(got-0.112) > 0.001 {
		t.Errorf("hydrogen fraction = %v, want about 0.112", got)
	}
	total := 0.0
	for _, fraction := range analysis {
		total += fraction
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("fractions sum to %v, want 1", total)
	}
}

func TestParse(t *testing.T) {
	f, err := Parse("C2H6O")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Count("C"); got != 2 {
		t.Errorf("Count(C) = %d, want 2", got)
	}
	if got := f.Count("H"); got != 6 {
		t.Errorf("Count(H) = %d, want 6", got)
	}
	if got := f.Count("O"); got != 1 {
		t.Errorf("Count(O) = %d, want 1", got)
	}
	if got := f.String(); got != "C2H6O" {
		t.Errorf("round trip = %q, want %q", got, "C2H6O")
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"2H6O", "C2Qx6", "C2 H6"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}

func TestElements(t *testing.T) {
	f := FromMolecule(mustParse(t, "CCO"))
	elements := f.Elements()
	elements["C"] = 99
	if got := f.Count("C"); got != 2 {
		t.Errorf("Elements() aliases internal state; Count(C) = %d after mutation, want 2", got)
	}
}
