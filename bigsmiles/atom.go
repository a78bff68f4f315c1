package bigsmiles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dhamidi/bigsmiles/chem"
)

// Atom is a single atom in the parse tree. Hydrogens carries an explicit
// hydrogen count from a bracket expression; when HasHydrogens is false the
// hydrogen count is implicit and computed from the remaining valence.
type Atom struct {
	ID           int
	Symbol       string
	Isotope      int // 0 means unspecified
	Stereo       string
	Hydrogens    int
	HasHydrogens bool
	Charge       int
	Class        int // 0 means unspecified
	Aromatic     bool
	Organic      bool

	valence          int
	possibleValences []int
	defaultValence   bool
	valenceWarned    bool

	bonds  []*Bond
	parent nodeContainer
}

func newAtom(id int, spec AtomSpec, parent nodeContainer) *Atom {
	a := &Atom{
		ID:           id,
		Symbol:       spec.Symbol,
		Isotope:      spec.Isotope,
		Stereo:       spec.Stereo,
		Hydrogens:    spec.Hydrogens,
		HasHydrogens: spec.HasHydrogens,
		Charge:       spec.Charge,
		Class:        spec.Class,
		Aromatic:     spec.Aromatic,
		Organic:      chem.IsOrganic(spec.Symbol),
		parent:       parent,
	}
	a.possibleValences = chem.Valences(a.Symbol)
	if len(a.possibleValences) > 0 {
		a.valence = a.possibleValences[0]
	}
	a.defaultValence = true
	return a
}

func (a *Atom) node()                 {}
func (a *Atom) endpointLabel() string { return a.String() }

// Bonds lists the bonds formed so far, ring closures included.
func (a *Atom) Bonds() []*Bond { return a.bonds }

// Valence is the valence currently assumed for the atom. It starts at the
// element's lowest common valence and escalates as bonds demand.
func (a *Atom) Valence() int { return a.valence }

// BondCapacity is the total bonding capacity: valence plus charge.
func (a *Atom) BondCapacity() float64 {
	return float64(a.valence + a.Charge)
}

// NumberOfBonds sums the orders of formed bonds plus any explicit
// hydrogens. Implicit hydrogens are not counted.
func (a *Atom) NumberOfBonds() float64 {
	n := 0.0
	for _, b := range a.bonds {
		n += b.Order()
	}
	if a.HasHydrogens {
		n += float64(a.Hydrogens)
	}
	return n
}

// BondsAvailable is the bonding capacity not yet consumed, floored at zero.
func (a *Atom) BondsAvailable() float64 {
	avail := a.BondCapacity() - a.NumberOfBonds()
	if avail < 0 {
		return 0
	}
	return avail
}

// ImplicitHydrogens is the hydrogen count implied by the open valence;
// zero when hydrogens were written explicitly.
func (a *Atom) ImplicitHydrogens() float64 {
	if a.HasHydrogens {
		return 0
	}
	return a.BondsAvailable()
}

// FullValence reports whether every valence slot is accounted for by a
// bond, an implicit hydrogen or the charge.
func (a *Atom) FullValence() bool {
	slack := float64(a.valence) - a.NumberOfBonds() - a.ImplicitHydrogens()
	if a.Charge < 0 {
		slack -= float64(-a.Charge)
	} else {
		slack -= float64(a.Charge)
	}
	return slack == 0
}

// RingIDs lists the ring closure indexes attached to this atom, unsorted.
func (a *Atom) RingIDs() []int {
	var ids []int
	for _, b := range a.bonds {
		if b.RingID != 0 {
			ids = append(ids, b.RingID)
		}
	}
	return ids
}

func (a *Atom) addBond(bond *Bond) {
	a.bonds = append(a.bonds, bond)
	if a.NumberOfBonds() > a.BondCapacity() {
		if !a.increaseValence(a.NumberOfBonds() - a.BondCapacity()) {
			log.Errorf("too many bonds on atom: %s", a.String())
		}
	}
}

func (a *Atom) removeBond(bond *Bond) {
	for i, b := range a.bonds {
		if b == bond {
			a.bonds = append(a.bonds[:i], a.bonds[i+1:]...)
			return
		}
	}
}

// increaseValence steps the valence up through the element's allowed
// values until at least request additional capacity is available. Atoms
// with an explicitly set valence never escalate.
func (a *Atom) increaseValence(request float64) bool {
	if !a.defaultValence {
		return false
	}
	for _, v := range a.possibleValences {
		if v > a.valence {
			old := a.valence
			a.valence = v
			if a.BondsAvailable() < request {
				a.valence = old
				continue
			}
			return true
		}
	}
	return false
}

func (a *Atom) Root() *Molecule {
	if a.parent == nil {
		return nil
	}
	return a.parent.Root()
}

func (a *Atom) String() string {
	return nodeString(a, WriteOptions{})
}

func (a *Atom) write(sb *strings.Builder, opts WriteOptions) {
	var text strings.Builder
	bracket := a.Symbol == "H"

	if a.Isotope != 0 {
		text.WriteString(strconv.Itoa(a.Isotope))
		bracket = true
	}

	if a.Aromatic {
		text.WriteString(strings.ToLower(a.Symbol))
	} else {
		text.WriteString(a.Symbol)
	}

	if a.Stereo != "" {
		text.WriteString(a.Stereo)
		bracket = true
	}

	if a.HasHydrogens {
		if a.Hydrogens == 1 {
			text.WriteString("H")
		} else if a.Hydrogens > 1 {
			text.WriteString("H" + strconv.Itoa(a.Hydrogens))
		}
		bracket = true
	} else if opts.ShowHydrogens {
		if h := int(a.ImplicitHydrogens()); h == 1 {
			text.WriteString("H")
			bracket = true
		} else if h > 1 {
			text.WriteString("H" + strconv.Itoa(h))
			bracket = true
		}
	}

	if a.Charge != 0 {
		magnitude := a.Charge
		if magnitude > 0 {
			text.WriteString("+")
		} else {
			text.WriteString("-")
			magnitude = -magnitude
		}
		if magnitude > 1 {
			text.WriteString(strconv.Itoa(magnitude))
		}
		bracket = true
	}

	if a.Class != 0 && !opts.HideAtomClass {
		text.WriteString(":" + strconv.Itoa(a.Class))
	}

	if bracket {
		sb.WriteString("[" + text.String() + "]")
	} else {
		sb.WriteString(text.String())
	}

	a.writeRings(sb, opts)

	if !a.FullValence() && !a.valenceWarned {
		a.valenceWarned = true
		log.Warningf("incomplete valence detected on atom: %s", text.String())
	}
}

// writeRings appends ring closure indexes in numerical order. The bond
// symbol of a non-aromatic ring bond is shown on the opening atom only,
// unless the molecule contains a stochastic object or the option asks for
// both sides.
func (a *Atom) writeRings(sb *strings.Builder, opts WriteOptions) {
	var rings []*Bond
	for _, b := range a.bonds {
		if b.RingID != 0 {
			rings = append(rings, b)
		}
	}
	if len(rings) == 0 {
		return
	}
	sort.Slice(rings, func(i, j int) bool { return rings[i].RingID < rings[j].RingID })

	root := a.Root()
	for _, bond := range rings {
		// Aromatic ring bonds never show their symbol at the ring index.
		if bond.Symbol != chem.BondAromatic {
			closing := bond.Atom2 == Endpoint(a)
			bothSides := opts.ShowRingBondOnBothAtoms ||
				(root != nil && root.ContainsStochasticObject())
			if !closing || bothSides {
				sb.WriteString(bond.Symbol)
			}
		}
		if bond.RingID > 9 {
			sb.WriteString("%")
		}
		sb.WriteString(strconv.Itoa(bond.RingID))
	}
}
