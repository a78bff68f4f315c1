package reaction

import (
	"testing"

	"github.com/dhamidi/bigsmiles/bigsmiles"
)

func chemicalStrings(chemicals []*bigsmiles.Molecule) []string {
	texts := make([]string, len(chemicals))
	for i, m := range chemicals {
		texts[i] = m.String()
	}
	return texts
}

func assertChemicals(t *testing.T, label string, got []*bigsmiles.Molecule, want []string) {
	t.Helper()
	texts := chemicalStrings(got)
	if len(texts) != len(want) {
		t.Fatalf("%s = %v, want %v", label, texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, texts[i], want[i])
		}
	}
}

func TestParseTwoPart(t *testing.T) {
	r, err := Parse("C=CCBr >> C=CCI")
	if err != nil {
		t.Fatal(err)
	}
	assertChemicals(t, "Reactants", r.Reactants, []string{"C=CCBr"})
	assertChemicals(t, "Agents", r.Agents, nil)
	assertChemicals(t, "Products", r.Products, []string{"C=CCI"})
}

func TestParseSplitsDisconnects(t *testing.T) {
	r, err := Parse("[I-].[Na+].C=CCBr>>[Na+].[Br-].C=CCI")
	if err != nil {
		t.Fatal(err)
	}
	assertChemicals(t, "Reactants", r.Reactants, []string{"[I-].[Na+]", "C=CCBr"})
	assertChemicals(t, "Products", r.Products, []string{"[Na+].[Br-]", "C=CCI"})
}

func TestParseThreePart(t *testing.T) {
	r, err := Parse("C=CCBr.[Na+].[I-]>CC(=O)C>C=CCI.[Na+].[Br-]")
	if err != nil {
		t.Fatal(err)
	}
	assertChemicals(t, "Reactants", r.Reactants, []string{"[Na+].[I-]", "C=CCBr"})
	assertChemicals(t, "Agents", r.Agents, []string{"CC(=O)C"})
	assertChemicals(t, "Products", r.Products, []string{"[Na+].[Br-]", "C=CCI"})
}

func TestParseCommaSeparated(t *testing.T) {
	r, err := Parse("C=CCBr,CO>>C=CCOC")
	if err != nil {
		t.Fatal(err)
	}
	assertChemicals(t, "Reactants", r.Reactants, []string{"C=CCBr", "CO"})
	assertChemicals(t, "Products", r.Products, []string{"C=CCOC"})
}

func TestParseDescriptorsAreNotArrows(t *testing.T) {
	r, err := Parse("CC{[>][<]CC[>][<]}CC>>CC{[>][<]CC(C)[>][<]}CC")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Reactants) != 1 || len(r.Products) != 1 {
		t.Fatalf("got %d reactants and %d products, want 1 and 1",
			len(r.Reactants), len(r.Products))
	}
}

func TestParseStochasticFragmentCommas(t *testing.T) {
	// commas inside a stochastic object separate fragments, not chemicals
	r, err := Parse("{[][<]C(=O)CCCCC(=O)[<],[>]NCCCCCCN[>][]}>>C")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Reactants) != 1 {
		t.Fatalf("got %d reactants, want 1", len(r.Reactants))
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"C=CCBr",
		"C>C>C>C",
		"C>>C>>C",
		"C=CCBr >> C=CC(",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", input)
			}
		})
	}
}
