package bigsmiles

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"CC",
		"CCC(C)C",
		"C1CCCCC1",
		"c1ccccc1",
		"C1=CC=CC=C1",
		"O=C=O",
		"C#N",
		"CC(=O)O",
		"CC(C)(C)C",
		"[12CH4]",
		"[13CH3]CC",
		"[Na+].[Cl-]",
		"C1.CCCCC1",
		"O=S(=O)(O)O",
		"N1CCCCC1",
		"CC{[>][<]CC(C)[>][<]}CC(C)=C",
		"[H]O{[>][<]C(=O)CCCCC(=O)[<],[>]NCCCCCCN[>][<]}[H]",
		"CC{[>][<]CC[>][<]}CC",
		"{[][$]CC[$][]}",
		"{[][>]CC[<][]}",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			m, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", input, err)
			}
			if got := m.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		})
	}
}

func TestParseNormalizes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// stochastic ends capped with explicit hydrogens
		{"{[>][<]CC[>][<]}", "[H]{[>][<]CC[>][<]}[H]"},
		{"{[$][$]CC[$][$]}", "[H]{[$][$]CC[$][$]}[H]"},
		{"CC{[>][<]CC[>][<]}", "CC{[>][<]CC[>][<]}[H]"},

		// re-used ring indexes renumbered
		{"O1CCCCC1N1CCCCC1", "O1CCCCC1N2CCCCC2"},
		{"C1CCCCC1C1CCCCC1C1CCCCC1", "C1CCCCC1C2CCCCC2C3CCCCC3"},

		// redundant trailing branches spliced away
		{"CC(CC(CC))", "CCCCCC"},
		{"CC(CC)", "CCCC"},
		{"C1=CN=C[NH]C(=O)1", "C1=CN=C[NH]C1=O"},
		{"{[][>]C([>])([>]),[<]C[>][>]}C", "{[][>]C([>])[>],[<]C[>][>]}C"},

		// empty branches dropped
		{"CC()CC", "CCCC"},

		// ring bond symbol normalizes to the opening atom
		{"C=1CCCCC=1", "C=1CCCCC1"},
		{"C1CCCCC=1", "C=1CCCCC1"},

		// duplicate ring merged into one bond of higher order
		{"C1.C1", "CC"},

		// default descriptor index hidden
		{"{[>1][<1]CC[>1][<1]}", "[H]{[>][<]CC[>][<]}[H]"},
		{"[H]{[>1][<]CC([>2])[>],[<2]CC[>2],[<2][H][<1]}[H]",
			"[H]{[>][<]CC([>2])[>],[<2]CC[>2],[<2][H][<]}[H]"},

		// charge spelling normalized
		{"[Fe++]", "[Fe+2]"},
		{"[O--]", "[O-2]"},

		// cis/trans markers are skipped with a warning
		{"F/C=C/F", "FC=CF"},

		// ring closing on a stochastic object
		{"C(={[>][<]=CC=[>][<]}1)CCCCCC=1", "C(={[>][<]=CC=[>][<]}=1)CCCCCC=1"},
		{"c1c{[$][$]cc[$][$]}1", "c1c{[$][$]cc[$][$]}1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseOverloadedValence(t *testing.T) {
	// parses with an error-level diagnostic, round-trips unchanged
	tests := []string{
		"C(C)(C)(C)(C)C",
		"O=n1ccccc1",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			m, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", input, err)
			}
			if got := m.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unknown symbol", "DJW"},
		{"unterminated bracket", "[C"},
		{"single ring index", "CCCCC1"},
		{"missing closing branch", "CCCC("},
		{"missing opening branch", "CCCC)"},
		{"leading branch", "((CC))"},
		{"branch in branch start", "C((C)C)"},
		{"separator outside stochastic object", "CCC,C"},
		{"stray stochastic close", "CC}CC"},
		{"missing stochastic close", "CC{CC"},
		{"stochastic object without descriptor", "{CC}"},
		{"fragment without descriptor", "{[]CC[]}"},
		{"single dollar use", "{[][$]CC[]}"},
		{"dollar needs partner inside", "{[][>]CC[$][]}"},
		{"no complementary descriptor", "{[][>]CC[>][]}"},
		{"implicit end group mid molecule", "CC{[<][>]CC[>][]}CC"},
		{"implicit end group in branch", "CC({[][$]CC[]})CC"},
		{"implicit right end group in branch", "CC({[<][>]CC[>][]})CC"},
		{"ring split across fragments", "{[$][$]C1CC[$],[$]CC1[$]}"},
		{"unclosed stochastic object", "{[$][<]CC[>][$]"},
		{"conflicting descriptor bonds", "C={[$][$]=C[$][$]}[H]"},
		{"double bond into implicit left end", "{[$][$]=CC=[$][$]}"},
		{"double bond needs end group left", "C={[$][$]=CC=[$][$]}"},
		{"double bond needs end group right", "{[$][$]=CC=[$][$]}=C"},
		{"leading ring index", "1CC"},
		{"leading bond", "=CC"},
		{"trailing bond", "CC="},
		{"two bonds to one stochastic object", "C1{[$][$]CC[$][$]}1C"},
		{"reaction arrow", "CC>CC"},
		{"bare metal atom", "CCZnCC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("error %v is not a *ParseError", err)
			}
			if !strings.Contains(err.Error(), "parsing failed on") {
				t.Errorf("error %q does not name the failed input", err)
			}
		})
	}
}

func TestParseErrorTypes(t *testing.T) {
	tests := []struct {
		input string
		as    any
	}{
		{"DJW", new(*TokenizeError)},
		{"CCC,C", new(*ConstructorError)},
		{"CCCCC1", new(*ValidationError)},
		{"{[][>]CC[>][]}", new(*ValidationError)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			switch target := tt.as.(type) {
			case **TokenizeError:
				if !errors.As(err, target) {
					t.Errorf("error %v is not a *TokenizeError", err)
				}
			case **ConstructorError:
				if !errors.As(err, target) {
					t.Errorf("error %v is not a *ConstructorError", err)
				}
			case **ValidationError:
				if !errors.As(err, target) {
					t.Errorf("error %v is not a *ValidationError", err)
				}
			}
		})
	}
}

func TestParseTreeAndAccessors(t *testing.T) {
	m, err := Parse("CC{[>][<]CC[>][<]}CC")
	if err != nil {
		t.Fatal(err)
	}

	objects := m.StochasticObjects()
	if len(objects) != 1 {
		t.Fatalf("StochasticObjects() = %d, want 1", len(objects))
	}
	so := objects[0]
	if so.BondLeft() == nil || so.BondRight() == nil {
		t.Error("stochastic object should bond on both sides")
	}
	if len(so.Fragments()) != 1 {
		t.Errorf("Fragments() = %d, want 1", len(so.Fragments()))
	}
	if !m.ContainsStochasticObject() {
		t.Error("ContainsStochasticObject() = false")
	}

	tree := m.Tree()
	if !strings.HasPrefix(tree, "Molecule: CC{[>][<]CC[>][<]}CC") {
		t.Errorf("Tree() header wrong: %q", tree[:40])
	}
	for _, want := range []string{"Atom: C", "StochasticObject", "StochasticFragment", "BondDescriptorAtom"} {
		if !strings.Contains(tree, want) {
			t.Errorf("Tree() missing %q", want)
		}
	}
}

func TestWriteOptions(t *testing.T) {
	m, err := Parse("c1ccccc1")
	if err != nil {
		t.Fatal(err)
	}
	got := m.StringWith(WriteOptions{ShowAromaticBonds: true})
	if !strings.Contains(got, ":") {
		t.Errorf("ShowAromaticBonds output %q has no aromatic bond symbols", got)
	}

	m, err = Parse("{[>][<]CC[>][<]}")
	if err != nil {
		t.Fatal(err)
	}
	got = m.StringWith(WriteOptions{ShowDescriptorIndexOne: true})
	if !strings.Contains(got, "[>1]") || !strings.Contains(got, "[<1]") {
		t.Errorf("ShowDescriptorIndexOne output %q hides default indexes", got)
	}
}
