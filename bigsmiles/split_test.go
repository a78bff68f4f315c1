package bigsmiles

import (
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		// no disconnect: returned whole
		{"CCO", []string{"CCO"}},

		// plain disconnects split apart
		{"CC.CC", []string{"CC", "CC"}},
		{"C=CCBr.CCO", []string{"C=CCBr", "CCO"}},

		// ionic pairs stay together
		{"[Na+].[Cl-]", []string{"[Na+].[Cl-]"}},
		{"C=CCBr.[Na+].[I-]", []string{"[Na+].[I-]", "C=CCBr"}},

		// a ring closure bridging the disconnect keeps it whole
		{"C1.CCCCC1", []string{"C1.CCCCC1"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			parts, err := Split(m)
			if err != nil {
				t.Fatalf("Split(%q) error: %v", tt.input, err)
			}
			if len(parts) != len(tt.want) {
				t.Fatalf("Split(%q) = %d molecules, want %d", tt.input, len(parts), len(tt.want))
			}
			for i, part := range parts {
				if got := part.String(); got != tt.want[i] {
					t.Errorf("part %d = %q, want %q", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestSplitBranchDisconnect(t *testing.T) {
	// a disconnect nested in a branch can't be cut out
	m, err := Parse("CC(C.C)C")
	if err != nil {
		t.Fatal(err)
	}
	parts, err := Split(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 1 || parts[0] != m {
		t.Errorf("Split returned %d molecules, want the original back", len(parts))
	}
}
