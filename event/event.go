package event

import "github.com/katalvlaran/pseudotop/fmom"

// Status codes of the generator record.
const (
	// StatusFinal marks a stable final-state particle.
	StatusFinal = 1
	// StatusDecayed marks an intermediate particle that decayed further.
	StatusDecayed = 3
	// StatusBeam marks a particle coming directly from the incident beam.
	StatusBeam = 4
)

// PDG type codes used by the reconstruction.
const (
	PDGDown     = 1
	PDGUp       = 2
	PDGBottom   = 5
	PDGTop      = 6
	PDGElectron = 11
	PDGNuE      = 12
	PDGMuon     = 13
	PDGNuMu     = 14
	PDGNuTau    = 16
	PDGPhoton   = 22
	PDGW        = 24
)

// IsChargedLeptonCode reports whether absID is an electron or muon code.
func IsChargedLeptonCode(absID int) bool {
	return absID == PDGElectron || absID == PDGMuon
}

// IsNeutrinoCode reports whether absID is a neutrino code.
func IsNeutrinoCode(absID int) bool {
	return absID == PDGNuE || absID == PDGNuMu || absID == PDGNuTau
}

// Particle is one entry of a generator record. It is immutable: the
// reconstruction core only reads it.
//
// Mothers holds indices into the generator Collection the particle belongs
// to (the full record, also for particles observed through a final-state
// view). An empty Mothers slice marks an orphan.
type Particle struct {
	P4      fmom.Vec
	Charge  float64
	PDGID   int
	Status  int
	Mothers []int
}

// Collection is an immutable particle arena addressed by index.
type Collection []Particle

// DaughterIndex inverts the Mothers relation: out[i] lists, in increasing
// order, the indices of particles that name i as a mother.
//
// Complexity: O(n + links) time and memory.
func (c Collection) DaughterIndex() [][]int {
	out := make([][]int, len(c))
	for i := range c {
		for _, m := range c[i].Mothers {
			if m < 0 || m >= len(c) {
				continue
			}
			out[m] = append(out[m], i)
		}
	}

	return out
}

// StableSubset returns the final-state view of a generator record: copies of
// all StatusFinal particles, in record order, with Mothers still indexing the
// original record.
func StableSubset(gen Collection) Collection {
	var out Collection
	for i := range gen {
		if gen[i].Status != StatusFinal {
			continue
		}
		out = append(out, gen[i])
	}

	return out
}

// Event is the per-event input snapshot.
//
// Gen is the full generator record; FinalState is its stable subset (or any
// host-supplied equivalent view). Mother indices of both collections refer
// into Gen.
type Event struct {
	Gen        Collection
	FinalState Collection
}

// PseudoParticle is a synthetic particle of the reconstructed decay tree.
//
// Mothers and Daughters are indices into the owning output collection; they
// are filled in one linking pass after all particles of a completed topology
// exist and are never mutated afterwards.
type PseudoParticle struct {
	P4        fmom.Vec
	Charge    float64
	PDGID     int
	Status    int
	Mothers   []int
	Daughters []int
}
