package cluster

import (
	"math"
	"sort"

	"github.com/katalvlaran/pseudotop/fmom"
)

// AntiKT is the reference sequential-recombination implementation of the
// anti-kt algorithm.
//
// Pairwise distance: d_ij = min(1/kt_i², 1/kt_j²) · ΔR²_ij / R².
// Beam distance:     d_iB = 1/kt_i².
// The smallest distance wins each round; a beam win finalizes the jet, a
// pair win merges the two protojets with E-scheme addition. Ties resolve
// first-seen-wins over the scan order, so the algorithm is deterministic.
//
// The 1/kt² weighting makes hard particles absorb soft ones: an input with
// near-zero pT (a ghost) joins whatever hard jet lies within R of it and
// shifts that jet's momentum only by its own negligible scale.
type AntiKT struct{}

// protojet is an intermediate cluster during recombination.
type protojet struct {
	p4           fmom.Vec
	constituents []Input
}

// Cluster implements Clusterer.
//
// Complexity: O(n³) time, O(n²) effective work per round over n inputs.
func (AntiKT) Cluster(inputs []Input, opts Options) ([]Jet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	active := make([]protojet, 0, len(inputs))
	for _, in := range inputs {
		active = append(active, protojet{p4: in.P4, constituents: []Input{in}})
	}

	r2 := opts.R * opts.R
	var done []protojet
	for len(active) > 0 {
		best := math.Inf(1)
		bestI, bestJ := -1, -1 // bestJ < 0 marks a beam merge

		for i := range active {
			if d := beamDist(active[i].p4); d < best {
				best, bestI, bestJ = d, i, -1
			}
			for j := i + 1; j < len(active); j++ {
				if d := pairDist(active[i].p4, active[j].p4, r2); d < best {
					best, bestI, bestJ = d, i, j
				}
			}
		}

		if bestJ < 0 {
			done = append(done, active[bestI])
			active = append(active[:bestI], active[bestI+1:]...)

			continue
		}

		merged := protojet{
			p4:           active[bestI].p4.Add(active[bestJ].p4),
			constituents: append(active[bestI].constituents, active[bestJ].constituents...),
		}
		active[bestI] = merged
		active = append(active[:bestJ], active[bestJ+1:]...)
	}

	jets := make([]Jet, 0, len(done))
	for _, pj := range done {
		if pj.p4.Pt() < opts.MinPt {
			continue
		}
		cons := make([]Input, len(pj.constituents))
		copy(cons, pj.constituents)
		sort.SliceStable(cons, func(a, b int) bool {
			return cons[a].P4.Pt() > cons[b].P4.Pt()
		})
		jets = append(jets, Jet{P4: pj.p4, Constituents: cons})
	}
	sort.SliceStable(jets, func(a, b int) bool {
		return jets[a].P4.Pt() > jets[b].P4.Pt()
	})

	return jets, nil
}

// beamDist returns 1/kt²; +Inf for a zero-pT protojet, which then merges
// with the beam last.
func beamDist(v fmom.Vec) float64 {
	pt := v.Pt()
	if pt == 0 {
		return math.Inf(1)
	}

	return 1 / (pt * pt)
}

// pairDist returns min(1/kt_i², 1/kt_j²)·ΔR²/R².
func pairDist(a, b fmom.Vec, r2 float64) float64 {
	return math.Min(beamDist(a), beamDist(b)) * a.DeltaR2(b) / r2
}
