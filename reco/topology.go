package reco

import (
	"math"

	"github.com/katalvlaran/pseudotop/event"
	"github.com/katalvlaran/pseudotop/fmom"
)

// noImprovement is the best-so-far sentinel of the combinatorial searches.
// A search that never beats it (strict less-than) found no viable
// combination and aborts the topology.
const noImprovement = 1e9

// massProximity scores a combined four-momentum against a reference mass.
func massProximity(v fmom.Vec, target float64) float64 {
	return math.Abs(v.M() - target)
}

// bestPair scans candidate pairs drawn from idx and keeps the first strict
// minimum of cost. ordered selects all a≠b ordered pairs; otherwise only
// a<b pairs by list position are visited.
func bestPair(idx []int, ordered bool, cost func(a, b int) float64) (selA, selB int, sum float64, ok bool) {
	selA, selB, sum = -1, -1, noImprovement
	for ii, a := range idx {
		for jj, b := range idx {
			if ordered {
				if jj == ii {
					continue
				}
			} else if jj <= ii {
				continue
			}
			if c := cost(a, b); c < sum {
				selA, selB, sum = a, b, c
			}
		}
	}

	return selA, selB, sum, sum < noImprovement
}

// decayTree is the completed topology before flattening. The W+ side is
// always the top side, so the fixed output layout and the charge-conjugate
// pairing fall out of construction rather than bookkeeping.
type decayTree struct {
	wPlus, wMinus fmom.Vec
	b, bbar       fmom.Vec
	wPlusKids     [2]event.PseudoParticle
	wMinusKids    [2]event.PseudoParticle
}

// reconstruct selects the decay channel by object counts and, on success,
// returns the flattened ten-particle collection. Any abort returns nil.
func reconstruct(leptons []DressedLepton, neutrinos []event.Particle, jets []Jet, bIdx, lIdx []int, p Params) []event.PseudoParticle {
	if len(bIdx) < 2 {
		return nil
	}

	var tree *decayTree
	switch {
	case len(leptons) == 2 && len(neutrinos) >= 2:
		tree = dilepton(leptons, neutrinos, jets, bIdx, p)
	case len(leptons) == 1 && len(neutrinos) >= 1:
		tree = semileptonic(leptons[0], neutrinos, jets, bIdx, lIdx, p)
	}
	if tree == nil {
		return nil
	}

	return tree.flatten()
}

// dilepton assigns two opposite-sign dressed leptons and two distinct
// neutrinos to the W bosons, then two distinct heavy-flavor jets to the
// tops, minimizing the mass-proximity sums.
func dilepton(leptons []DressedLepton, neutrinos []event.Particle, jets []Jet, bIdx []int, p Params) *decayTree {
	lp, ln := leptons[0], leptons[1]
	if lp.Charge*ln.Charge > 0 {
		return nil
	}
	if lp.Charge < 0 {
		lp, ln = ln, lp
	}

	nuIdx := make([]int, len(neutrinos))
	for i := range nuIdx {
		nuIdx[i] = i
	}
	selN1, selN2, _, ok := bestPair(nuIdx, true, func(a, b int) float64 {
		return massProximity(lp.P4.Add(neutrinos[a].P4), p.WMass) +
			massProximity(ln.P4.Add(neutrinos[b].P4), p.WMass)
	})
	if !ok {
		return nil
	}

	nu1, nu2 := neutrinos[selN1], neutrinos[selN2]
	wPlus := lp.P4.Add(nu1.P4)
	wMinus := ln.P4.Add(nu2.P4)

	selB1, selB2, ok := topPair(wPlus, wMinus, jets, bIdx, p)
	if !ok {
		return nil
	}

	return &decayTree{
		wPlus:  wPlus,
		wMinus: wMinus,
		b:      jets[selB1].P4,
		bbar:   jets[selB2].P4,
		wPlusKids: [2]event.PseudoParticle{
			pseudo(lp.P4, lp.Charge, lp.PDGID, event.StatusFinal),
			pseudo(nu1.P4, 0, nu1.PDGID, event.StatusFinal),
		},
		wMinusKids: [2]event.PseudoParticle{
			pseudo(ln.P4, ln.Charge, ln.PDGID, event.StatusFinal),
			pseudo(nu2.P4, 0, nu2.PDGID, event.StatusFinal),
		},
	}
}

// semileptonic assigns the lepton plus one neutrino to the leptonic W and
// one unordered pair of untagged jets to the hadronic W, then two distinct
// heavy-flavor jets to the tops. Type codes on the hadronic side mirror the
// lepton's charge sign.
func semileptonic(lep DressedLepton, neutrinos []event.Particle, jets []Jet, bIdx, lIdx []int, p Params) *decayTree {
	best := noImprovement
	selNu, selJ1, selJ2 := -1, -1, -1
	for i := range neutrinos {
		dmLep := massProximity(lep.P4.Add(neutrinos[i].P4), p.WMass)
		a, b, dmHad, ok := bestPair(lIdx, false, func(x, y int) float64 {
			return massProximity(jets[x].P4.Add(jets[y].P4), p.WMass)
		})
		if !ok {
			continue
		}
		if dmLep+dmHad < best {
			best = dmLep + dmHad
			selNu, selJ1, selJ2 = i, a, b
		}
	}
	if selNu < 0 {
		return nil
	}

	nu := neutrinos[selNu]
	wLep := lep.P4.Add(nu.P4)
	wHad := jets[selJ1].P4.Add(jets[selJ2].P4)

	selBLep, selBHad, ok := topPair(wLep, wHad, jets, bIdx, p)
	if !ok {
		return nil
	}

	q := 1
	if lep.Charge < 0 {
		q = -1
	}
	lepKids := [2]event.PseudoParticle{
		pseudo(lep.P4, lep.Charge, lep.PDGID, event.StatusFinal),
		pseudo(nu.P4, 0, nu.PDGID, event.StatusFinal),
	}
	// W(-q) → up-type(-2q) + down-type(q), charge-conjugated against the
	// observed lepton.
	hadKids := [2]event.PseudoParticle{
		pseudo(jets[selJ1].P4, quarkCharge(-2*q), -2*q, event.StatusFinal),
		pseudo(jets[selJ2].P4, quarkCharge(q), q, event.StatusFinal),
	}

	if q > 0 {
		return &decayTree{
			wPlus:      wLep,
			wMinus:     wHad,
			b:          jets[selBLep].P4,
			bbar:       jets[selBHad].P4,
			wPlusKids:  lepKids,
			wMinusKids: hadKids,
		}
	}

	return &decayTree{
		wPlus:      wHad,
		wMinus:     wLep,
		b:          jets[selBHad].P4,
		bbar:       jets[selBLep].P4,
		wPlusKids:  hadKids,
		wMinusKids: lepKids,
	}
}

// topPair runs the shared top assignment: ordered pairs of distinct
// heavy-flavor jets, the first paired with w1 and the second with w2.
func topPair(w1, w2 fmom.Vec, jets []Jet, bIdx []int, p Params) (int, int, bool) {
	selA, selB, _, ok := bestPair(bIdx, true, func(a, b int) float64 {
		return massProximity(w1.Add(jets[a].P4), p.TopMass) +
			massProximity(w2.Add(jets[b].P4), p.TopMass)
	})

	return selA, selB, ok
}

// pseudo builds an unlinked PseudoParticle.
func pseudo(p4 fmom.Vec, charge float64, pdgID, status int) event.PseudoParticle {
	return event.PseudoParticle{P4: p4, Charge: charge, PDGID: pdgID, Status: status}
}

// quarkCharge returns the electric charge of a light-quark proxy code
// (±1 down-type, ±2 up-type).
func quarkCharge(pdgID int) float64 {
	switch pdgID {
	case event.PDGUp:
		return 2.0 / 3.0
	case -event.PDGUp:
		return -2.0 / 3.0
	case event.PDGDown:
		return -1.0 / 3.0
	case -event.PDGDown:
		return 1.0 / 3.0
	default:
		return 0
	}
}

// flatten lays the tree out in the fixed ten-slot schema and wires the
// bidirectional parent/child index links. Linking happens only here, once
// all ten particles exist; no partial tree is ever emitted.
func (t *decayTree) flatten() []event.PseudoParticle {
	out := []event.PseudoParticle{
		pseudo(t.wPlus.Add(t.b), 2.0 / 3.0, event.PDGTop, event.StatusDecayed),       // 0: t
		pseudo(t.wMinus.Add(t.bbar), -2.0 / 3.0, -event.PDGTop, event.StatusDecayed), // 1: t̄
		pseudo(t.wPlus, 1, event.PDGW, event.StatusDecayed),                          // 2: W+
		pseudo(t.b, -1.0 / 3.0, event.PDGBottom, event.StatusFinal),                  // 3: b
		t.wPlusKids[0],  // 4
		t.wPlusKids[1],  // 5
		pseudo(t.wMinus, -1, -event.PDGW, event.StatusDecayed),     // 6: W−
		pseudo(t.bbar, 1.0 / 3.0, -event.PDGBottom, event.StatusFinal), // 7: b̄
		t.wMinusKids[0], // 8
		t.wMinusKids[1], // 9
	}

	link(out, 0, 2)
	link(out, 0, 3)
	link(out, 2, 4)
	link(out, 2, 5)
	link(out, 1, 6)
	link(out, 1, 7)
	link(out, 6, 8)
	link(out, 6, 9)

	return out
}

// link records one parent/child relation as collection-relative indices.
func link(coll []event.PseudoParticle, parent, child int) {
	coll[parent].Daughters = append(coll[parent].Daughters, child)
	coll[child].Mothers = append(coll[child].Mothers, parent)
}
