package reco

import (
	"errors"

	"github.com/katalvlaran/pseudotop/cluster"
	"github.com/katalvlaran/pseudotop/event"
	"github.com/katalvlaran/pseudotop/fmom"
)

// Sentinel errors for Params validation.
var (
	// ErrBadCone indicates a non-positive clustering cone radius.
	ErrBadCone = errors.New("reco: cone radius must be > 0")
	// ErrBadThreshold indicates a negative pT or pseudorapidity cut.
	ErrBadThreshold = errors.New("reco: pt and eta cuts must be >= 0")
	// ErrBadMass indicates a non-positive reference mass.
	ErrBadMass = errors.New("reco: reference masses must be > 0")
)

// DressedLepton is a lepton four-momentum dressed with nearby photons.
// Charge and PDGID are copied from the highest-pT charged-lepton
// constituent; photons contribute only to the momentum sum.
type DressedLepton struct {
	P4           fmom.Vec
	Charge       float64
	PDGID        int
	Area         float64
	Constituents []cluster.Input
}

// Jet is a hadronic jet. HeavyFlavor is set when a ghost heavy hadron
// clustered into it, in which case PDGID holds the b sentinel code.
type Jet struct {
	P4           fmom.Vec
	PDGID        int
	Area         float64
	HeavyFlavor  bool
	Constituents []cluster.Input
}

// Result holds the per-event output collections. All slices are freshly
// allocated per Run call; ownership transfers to the caller.
type Result struct {
	// Neutrinos are the stable prompt neutrinos, sorted by descending pT.
	Neutrinos []event.Particle
	// Leptons are the dressed leptons in clustering output order.
	Leptons []DressedLepton
	// Jets are the hadronic jets in clustering output order.
	Jets []Jet
	// PseudoTop is the reconstructed decay tree: empty, or exactly ten
	// particles in the fixed layout [0]=t, [1]=t̄, [2]=W+, [3]=b,
	// [4,5]=W+ children, [6]=W−, [7]=b̄, [8,9]=W− children.
	PseudoTop []event.PseudoParticle
}

// absPDG returns the absolute value of a PDG type code.
func absPDG(code int) int {
	if code < 0 {
		return -code
	}

	return code
}
