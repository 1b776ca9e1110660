package reco

import (
	"sort"

	"github.com/katalvlaran/pseudotop/event"
)

// classification is the outcome of the final-state partition pass.
type classification struct {
	// neutrinos are copies of the prompt stable neutrinos, pT-sorted.
	neutrinos []event.Particle
	// leptonIdx indexes the prompt lepton/photon candidates in FinalState.
	leptonIdx []int
}

// classifyFinalState partitions stable final-state particles into neutrinos
// and lepton/photon candidates; everything else stays for jet building.
//
// Skips, in order: non-final status, orphans (no recorded mother), particles
// whose first mother has the incident-beam status (incomplete history
// records), and anything descended from a hadron.
//
// Complexity: O(n·depth) over the final state, depth bounded by the decay
// chain length.
func classifyFinalState(ev event.Event) classification {
	var out classification
	for i := range ev.FinalState {
		p := &ev.FinalState[i]
		if p.Status != event.StatusFinal {
			continue
		}
		if len(p.Mothers) == 0 {
			continue
		}
		if m := p.Mothers[0]; m >= 0 && m < len(ev.Gen) && ev.Gen[m].Status == event.StatusBeam {
			continue
		}
		if fromHadron(ev.Gen, p.Mothers) {
			continue
		}

		absID := absPDG(p.PDGID)
		switch {
		case event.IsChargedLeptonCode(absID) || absID == event.PDGPhoton:
			out.leptonIdx = append(out.leptonIdx, i)
		case event.IsNeutrinoCode(absID):
			out.neutrinos = append(out.neutrinos, *p)
		}
	}

	// Presentational ordering; the combinatorics below scan all pairs anyway.
	sort.SliceStable(out.neutrinos, func(a, b int) bool {
		return out.neutrinos[a].P4.Pt() > out.neutrinos[b].P4.Pt()
	})

	return out
}

// fromHadron reports whether any ancestor reachable through mothers carries
// a composite type code (|PDG| > 100). Ancestors that are themselves
// orphans (the incident beam) are skipped without inspection.
func fromHadron(gen event.Collection, mothers []int) bool {
	for _, m := range mothers {
		if m < 0 || m >= len(gen) {
			continue
		}
		mom := &gen[m]
		if len(mom.Mothers) == 0 {
			continue
		}
		if absPDG(mom.PDGID) > 100 {
			return true
		}
		if fromHadron(gen, mom.Mothers) {
			return true
		}
	}

	return false
}
