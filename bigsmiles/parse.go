package bigsmiles

import (
	"strings"
)

// Parse parses a BigSMILES (or plain SMILES) string into a Molecule.
//
// Parsing tokenizes the text, validates and renumbers ring indexes at the
// token level, builds the tree through the construction functions, caps
// open stochastic ends with [H], applies syntax normalizations and runs
// post-construction validation. The returned molecule serializes back to
// normalized BigSMILES text through its String method.
func Parse(text string) (*Molecule, error) {
	m, err := parse(text)
	if err != nil {
		return nil, &ParseError{Input: text, Err: err}
	}
	return m, nil
}

func parse(text string) (*Molecule, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationErrorf("empty input")
	}
	if err := validateBrackets(text); err != nil {
		return nil, err
	}
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	tokens, err = fixTokenRings(tokens)
	if err != nil {
		return nil, err
	}
	m := &Molecule{input: text}
	scope, err := mapTokens(m, tokens)
	if err != nil {
		return nil, err
	}
	return finishConstruction(scope)
}

// validateBrackets rejects input with unbalanced (), {} or [] before any
// tokenization work.
func validateBrackets(text string) error {
	pairs := []struct {
		open, close string
		name        string
	}{
		{"(", ")", "branch"},
		{"{", "}", "stochastic object"},
		{"[", "]", "bracket"},
	}
	for _, p := range pairs {
		count := strings.Count(text, p.open) - strings.Count(text, p.close)
		switch {
		case count > 0:
			return validationErrorf("missing %d closing %s symbol(s) %q", count, p.name, p.close)
		case count < 0:
			return validationErrorf("missing %d opening %s symbol(s) %q", -count, p.name, p.open)
		}
	}
	return nil
}
