package bigsmiles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// DefaultBondingDescriptorIndex is assumed when a bonding descriptor is
// written without an index ("[$]" reads as "[$1]").
const DefaultBondingDescriptorIndex = 1

type tokenizer struct {
	input string
	pos   int
}

// Tokenize splits a BigSMILES string into tokens by longest-match-first
// scanning over a fixed, ordered set of lexeme classes. Whitespace is
// skipped; any other unmatched byte is a *TokenizeError carrying the
// offending substring and its column.
func Tokenize(text string) ([]Token, error) {
	t := &tokenizer{input: text}
	var tokens []Token
	for {
		tok, ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (t *tokenizer) peek() byte {
	if t.pos >= len(t.input) {
		return 0
	}
	return t.input[t.pos]
}

func (t *tokenizer) peekN(n int) byte {
	if t.pos+n >= len(t.input) {
		return 0
	}
	return t.input[t.pos+n]
}

func (t *tokenizer) rest() string {
	return t.input[t.pos:]
}

func (t *tokenizer) emit(kind TokenKind, width int) Token {
	tok := Token{Kind: kind, Value: t.input[t.pos : t.pos+width], Column: t.pos}
	t.pos += width
	return tok
}

func (t *tokenizer) next() (Token, bool, error) {
	for t.peek() == ' ' || t.peek() == '\t' {
		t.pos++
	}
	if t.pos >= len(t.input) {
		return Token{}, false, nil
	}

	ch := t.peek()
	switch ch {
	case '-', '=', '#', '$':
		return t.emit(TokenBond, 1), true, nil
	case '(':
		return t.emit(TokenBranchStart, 1), true, nil
	case ')':
		return t.emit(TokenBranchEnd, 1), true, nil
	case '/', '\\':
		return t.emit(TokenBondEZ, 1), true, nil
	case '.':
		return t.emit(TokenDisconnected, 1), true, nil
	case ',', ';':
		return t.emit(TokenStochasticSeparator, 1), true, nil
	case '{':
		return t.emit(TokenStochasticStart, 1), true, nil
	case '}':
		return t.emit(TokenStochasticEnd, 1), true, nil
	case '>':
		if t.peekN(1) == '>' {
			return t.emit(TokenRxn, 2), true, nil
		}
		return t.emit(TokenRxn, 1), true, nil
	case '%':
		if isDigit(t.peekN(1)) && isDigit(t.peekN(2)) {
			return t.emit(TokenRing2, 3), true, nil
		}
		return Token{}, false, t.errorAt("invalid ring index; '%' must be followed by two digits")
	case '[':
		return t.bracket()
	}

	if isDigit(ch) {
		return t.emit(TokenRing, 1), true, nil
	}

	for _, symbol := range chem.OrganicLongestFirst {
		if strings.HasPrefix(t.rest(), symbol) {
			return t.emit(TokenAtom, len(symbol)), true, nil
		}
	}
	for _, symbol := range chem.AromaticLongestFirst {
		if strings.HasPrefix(t.rest(), symbol) {
			return t.emit(TokenAromatic, len(symbol)), true, nil
		}
	}

	if len(t.rest()) >= 2 && chem.IsElement(t.rest()[:2]) || chem.IsElement(t.rest()[:1]) {
		return Token{}, false, t.errorAt(
			"invalid symbol; elements outside the organic subset must be written in brackets")
	}
	return Token{}, false, t.errorAt("invalid symbol (or group of symbols)")
}

// bracket scans one of the bracketed forms: "[]" (implicit end group),
// "[$1]" / "[<]" / "[>2]" (bonding descriptor), "[$1[$2]2]" (ladder
// descriptor) or a bracket atom such as "[13C@H+:1]".
func (t *tokenizer) bracket() (Token, bool, error) {
	if t.peekN(1) == ']' {
		return t.emit(TokenImplicitEndGroup, 2), true, nil
	}

	if c := t.peekN(1); c == '<' || c == '>' || c == '$' {
		if width, ok := matchLadderDescriptor(t.rest()); ok {
			return t.emit(TokenBondDescriptorLadder, width), true, nil
		}
		if width, ok := matchBondingDescriptor(t.rest()); ok {
			return t.emit(TokenBondDescriptor, width), true, nil
		}
		return Token{}, false, t.errorAt("invalid bonding descriptor")
	}

	width, err := matchBracketAtom(t.rest())
	if err != nil {
		return Token{}, false, t.errorAt(err.Error())
	}
	return t.emit(TokenAtomExtend, width), true, nil
}

func (t *tokenizer) errorAt(msg string) error {
	symbol := t.rest()
	if len(symbol) > 8 {
		symbol = symbol[:8]
	}
	return &TokenizeError{Msg: msg, Symbol: symbol, Column: t.pos}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// matchBondingDescriptor matches "[<]", "[>]", "[$]" with up to two index
// digits, returning the matched width.
func matchBondingDescriptor(s string) (int, bool) {
	// s[0] == '[' and s[1] is one of <, >, $ checked by the caller.
	i := 2
	for i < len(s) && i < 4 && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == ']' {
		return i + 1, true
	}
	return 0, false
}

// matchLadderDescriptor matches the doubly-indexed ladder form
// "[$1[$2]1]". Ladder descriptors are tokenized but not constructed.
func matchLadderDescriptor(s string) (int, bool) {
	i := 1
	if i >= len(s) || (s[i] != '<' && s[i] != '>' && s[i] != '$') {
		return 0, false
	}
	i++
	if i >= len(s) || !isDigit(s[i]) {
		return 0, false
	}
	i++
	if i >= len(s) || s[i] != '[' {
		return 0, false
	}
	i++
	if i >= len(s) || (s[i] != '<' && s[i] != '>' && s[i] != '$') {
		return 0, false
	}
	i++
	if i < len(s) && isDigit(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ']' {
		return 0, false
	}
	i++
	if i < len(s) && isDigit(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ']' {
		return 0, false
	}
	return i + 1, true
}

// AtomSpec is the decomposition of one atom lexeme. HasHydrogens
// distinguishes an explicit hydrogen count (bracket atoms, including zero)
// from implicit hydrogens computed from valence (bare organic-subset atoms).
type AtomSpec struct {
	Symbol       string
	Aromatic     bool
	Isotope      int
	Stereo       string
	Hydrogens    int
	HasHydrogens bool
	Charge       int
	Class        int
}

// TokenizeAtomSymbol decomposes one atom lexeme, either a bare symbol
// ("C", "n") or a bracket expression ("[13C@H+:1]"), into its fields.
func TokenizeAtomSymbol(symbol string) (AtomSpec, error) {
	if !strings.HasPrefix(symbol, "[") {
		if chem.IsAromaticSymbol(symbol) {
			return AtomSpec{Symbol: capitalize(symbol), Aromatic: true}, nil
		}
		if chem.IsElement(symbol) {
			return AtomSpec{Symbol: symbol}, nil
		}
		return AtomSpec{}, &TokenizeError{Msg: "issue tokenizing atom", Symbol: symbol}
	}

	width, err := matchBracketAtom(symbol)
	if err != nil || width != len(symbol) {
		return AtomSpec{}, &TokenizeError{Msg: "issue tokenizing atom", Symbol: symbol}
	}
	spec, _ := parseBracketAtom(symbol)
	return spec, nil
}

// matchBracketAtom reports the width of a bracket-atom expression starting
// at s[0] == '[', or an error describing the malformed field.
func matchBracketAtom(s string) (int, error) {
	_, width, err := scanBracketAtom(s)
	return width, err
}

func parseBracketAtom(s string) (AtomSpec, int) {
	spec, width, _ := scanBracketAtom(s)
	return spec, width
}

func scanBracketAtom(s string) (AtomSpec, int, error) {
	var spec AtomSpec
	i := 1

	start := i
	for i < len(s) && i-start < 3 && isDigit(s[i]) {
		i++
	}
	if i > start {
		spec.Isotope, _ = strconv.Atoi(s[start:i])
	}

	symbol := matchElementSymbol(s[i:])
	if symbol == "" {
		return spec, 0, fmt.Errorf("unknown element in bracket atom")
	}
	i += len(symbol)
	if chem.IsAromaticSymbol(symbol) {
		spec.Aromatic = true
		symbol = capitalize(symbol)
	}
	spec.Symbol = symbol

	if i < len(s) && s[i] == '@' {
		if i+1 < len(s) && s[i+1] == '@' {
			spec.Stereo = "@@"
			i += 2
		} else {
			spec.Stereo = "@"
			i++
		}
	}

	spec.HasHydrogens = true
	if i < len(s) && s[i] == 'H' {
		i++
		spec.Hydrogens = 1
		if i < len(s) && isDigit(s[i]) {
			spec.Hydrogens = int(s[i] - '0')
			i++
		}
	}

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		sign := s[i]
		count := 0
		for i < len(s) && s[i] == sign && count < 3 {
			count++
			i++
		}
		spec.Charge = count
		if count == 1 && i < len(s) && isDigit(s[i]) {
			spec.Charge = int(s[i] - '0')
			i++
		}
		if sign == '-' {
			spec.Charge = -spec.Charge
		}
	}

	if i < len(s) && s[i] == ':' {
		i++
		start := i
		for i < len(s) && i-start < 3 && isDigit(s[i]) {
			i++
		}
		if i == start {
			return spec, 0, fmt.Errorf("atom class ':' must be followed by digits")
		}
		spec.Class, _ = strconv.Atoi(s[start:i])
	}

	if i >= len(s) || s[i] != ']' {
		return spec, 0, fmt.Errorf("malformed bracket atom")
	}
	return spec, i + 1, nil
}

// matchElementSymbol finds the longest element symbol (aromatic lowercase
// forms included) prefixing s.
func matchElementSymbol(s string) string {
	best := ""
	for _, symbol := range chem.SymbolsLongestFirst {
		if strings.HasPrefix(s, symbol) {
			best = symbol
			break
		}
	}
	for _, symbol := range chem.AromaticLongestFirst {
		if strings.HasPrefix(s, symbol) && len(symbol) > len(best) {
			best = symbol
		}
	}
	return best
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// TokenizeBondingDescriptor decomposes a bonding-descriptor lexeme ("[$]",
// "[<2]", "[]") into its symbol and index; the index defaults to
// DefaultBondingDescriptorIndex when omitted.
func TokenizeBondingDescriptor(symbol string) (string, int) {
	symbol = strings.TrimPrefix(symbol, "[")
	symbol = strings.TrimSuffix(symbol, "]")
	if symbol == "" {
		return "", DefaultBondingDescriptorIndex
	}
	if last := symbol[len(symbol)-1]; isDigit(last) {
		index, _ := strconv.Atoi(symbol[1:])
		return symbol[:1], index
	}
	return symbol, DefaultBondingDescriptorIndex
}
