package bigsmiles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// mapper feeds tokens into the construction functions, tracking the scope
// the next symbol lands in.
type mapper struct {
	tokens []Token
	pos    int
	scope  Scope
}

func mapTokens(m *Molecule, tokens []Token) (Scope, error) {
	mp := &mapper{tokens: tokens, scope: m}
	for mp.pos < len(mp.tokens) {
		at := mp.pos
		tok := mp.next()
		if err := mp.dispatch(tok); err != nil {
			return nil, fmt.Errorf("issue with token %q (token %d): %w", tok.Value, at, err)
		}
	}
	return mp.scope, nil
}

func (mp *mapper) next() Token {
	tok := mp.tokens[mp.pos]
	mp.pos++
	return tok
}

func (mp *mapper) peek() (Token, bool) {
	if mp.pos >= len(mp.tokens) {
		return Token{}, false
	}
	return mp.tokens[mp.pos], true
}

func (mp *mapper) dispatch(tok Token) error {
	var err error
	switch tok.Kind {
	case TokenBond:
		err = mp.mapBond(tok.Value)
	case TokenDisconnected:
		err = mp.mapBond(chem.BondDisconnect)
	case TokenBondDescriptor, TokenImplicitEndGroup:
		if mp.atEmptyRoot() {
			return constructorErrorf("bonding descriptor can't be the first symbol")
		}
		err = mp.mapBondDescriptor(tok)
	case TokenAtom, TokenAromatic, TokenAtomExtend:
		err = mp.mapAtom(tok)
	case TokenBranchStart:
		if mp.atEmptyRoot() {
			return constructorErrorf("molecule can't start with a branch symbol")
		}
		if br, ok := mp.scope.(*Branch); ok && len(br.nodes) == 0 {
			return constructorErrorf("branch can't be the first thing within a branch")
		}
		mp.scope, err = openBranch(mp.scope)
	case TokenBranchEnd:
		mp.scope, err = closeBranch(mp.scope)
	case TokenRing, TokenRing2:
		if mp.atEmptyRoot() {
			return constructorErrorf("ring index can't be the first symbol")
		}
		mp.scope, err = addRing(mp.scope, ringIndex(tok), "")
	case TokenStochasticStart:
		err = mp.mapStochasticStart()
	case TokenStochasticEnd:
		err = constructorErrorf("stochastic object must end with a bonding descriptor directly before '}'")
	case TokenStochasticSeparator:
		mp.scope, err = closeOpenStochasticFragment(mp.scope)
	case TokenRxn:
		err = constructorErrorf("reaction symbol detected; parse reactions with the reaction package")
	case TokenBondEZ:
		log.Warningf("cis/trans bond symbol %q is not supported and was skipped", tok.Value)
	case TokenBondDescriptorLadder:
		log.Warningf("ladder bonding descriptor %q is not supported and was skipped", tok.Value)
	default:
		err = constructorErrorf("unexpected token %q", tok.Value)
	}
	return err
}

func (mp *mapper) mapAtom(tok Token) error {
	spec, err := TokenizeAtomSymbol(tok.Value)
	if err != nil {
		return err
	}
	c, cerr := asContainer(mp.scope)
	if cerr != nil {
		return cerr
	}
	switch mp.scope.(type) {
	case *Molecule, *StochasticFragment:
		if len(c.nodeList()) == 0 {
			mp.scope, err = addAtom(mp.scope, spec)
			return err
		}
	}
	bondSymbol := ""
	if tok.Kind == TokenAromatic {
		if prior, perr := priorEndpoint(c, true); perr == nil && endpointAromatic(prior) {
			bondSymbol = chem.BondAromatic
		}
	}
	mp.scope, err = addBondAtomPair(mp.scope, bondSymbol, spec)
	return err
}

func (mp *mapper) mapBond(bondSymbol string) error {
	if mp.atEmptyRoot() {
		return constructorErrorf("bond can't be the first symbol")
	}
	tok, ok := mp.peek()
	if !ok {
		return constructorErrorf("bond can't be the last symbol")
	}
	mp.next()
	var err error
	switch tok.Kind {
	case TokenAtom, TokenAromatic, TokenAtomExtend:
		var spec AtomSpec
		spec, err = TokenizeAtomSymbol(tok.Value)
		if err != nil {
			return err
		}
		mp.scope, err = addBondAtomPair(mp.scope, bondSymbol, spec)
	case TokenBondDescriptor, TokenImplicitEndGroup:
		symbol, index := TokenizeBondingDescriptor(tok.Value)
		mp.scope, err = addBondBondingDescriptorPair(mp.scope, bondSymbol, symbol, index)
	case TokenStochasticStart:
		descriptor, ok := mp.peek()
		if !ok || (descriptor.Kind != TokenBondDescriptor && descriptor.Kind != TokenImplicitEndGroup) {
			return constructorErrorf("stochastic object must begin with a bonding descriptor after '{'")
		}
		mp.next()
		symbol, index := TokenizeBondingDescriptor(descriptor.Value)
		mp.scope, err = openStochasticObjectFragmentWithBond(mp.scope, bondSymbol, symbol, index)
	case TokenRing, TokenRing2:
		mp.scope, err = addRing(mp.scope, ringIndex(tok), bondSymbol)
	default:
		err = constructorErrorf("bond can't be followed by %q", tok.Value)
	}
	return err
}

func (mp *mapper) mapBondDescriptor(tok Token) error {
	symbol, index := TokenizeBondingDescriptor(tok.Value)
	if next, ok := mp.peek(); ok && next.Kind == TokenStochasticEnd {
		mp.next()
		so, err := closeStochasticFragment(mp.scope)
		if err != nil {
			return err
		}
		mp.scope, err = closeStochasticObject(so, symbol, index)
		return err
	}
	if sf, ok := mp.scope.(*StochasticFragment); ok && len(sf.nodes) == 0 {
		var err error
		mp.scope, err = addBondingDescriptorAtom(mp.scope, symbol, index)
		return err
	}
	var err error
	mp.scope, err = addBondBondingDescriptorPair(mp.scope, "", symbol, index)
	return err
}

func (mp *mapper) mapStochasticStart() error {
	descriptor, ok := mp.peek()
	if !ok || (descriptor.Kind != TokenBondDescriptor && descriptor.Kind != TokenImplicitEndGroup) {
		return constructorErrorf("stochastic object must begin with a bonding descriptor after '{'")
	}
	mp.next()
	symbol, index := TokenizeBondingDescriptor(descriptor.Value)
	var err error
	if mp.atEmptyRoot() {
		mp.scope, err = openStochasticObjectFragment(mp.scope, symbol, index)
	} else {
		mp.scope, err = openStochasticObjectFragmentWithBond(mp.scope, "", symbol, index)
	}
	return err
}

// atEmptyRoot reports whether the mapper is still at the beginning of the
// root molecule.
func (mp *mapper) atEmptyRoot() bool {
	m, ok := mp.scope.(*Molecule)
	return ok && len(m.nodes) == 0
}

// ringIndex extracts the numeric ring id from a ring token ("7" or "%12").
func ringIndex(tok Token) int {
	value := strings.TrimPrefix(tok.Value, "%")
	n, _ := strconv.Atoi(value)
	return n
}
