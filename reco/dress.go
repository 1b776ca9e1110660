package reco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pseudotop/cluster"
	"github.com/katalvlaran/pseudotop/event"
)

// dressLeptons clusters the lepton/photon candidates with the dressing cone
// and builds DressedLepton objects. Every constituent of an accepted
// cluster — photons included — lands in the returned used set so jet
// building excludes it.
//
// A cluster survives only if |η| stays within the lepton bound and at least
// one constituent is a charged lepton; the highest-pT such constituent
// donates charge and type code (strict-greater comparison, first seen wins
// on an exact tie). Pure-photon clusters are dropped.
func dressLeptons(fs event.Collection, lepIdx []int, p Params, clu cluster.Clusterer) ([]DressedLepton, map[int]bool, error) {
	inputs := make([]cluster.Input, 0, len(lepIdx))
	for _, idx := range lepIdx {
		if !fs[idx].P4.Valid() {
			continue
		}
		inputs = append(inputs, cluster.Input{
			P4:    fs[idx].P4,
			Label: cluster.Label{Source: cluster.SourceFinalState, Index: idx},
		})
	}

	jets, err := clu.Cluster(inputs, cluster.Options{R: p.LeptonConeR, MinPt: p.LeptonMinPt})
	if err != nil {
		return nil, nil, fmt.Errorf("reco: lepton dressing: %w", err)
	}

	var leptons []DressedLepton
	used := make(map[int]bool)
	for _, jet := range jets {
		if math.Abs(jet.P4.Eta()) > p.LeptonMaxEta {
			continue
		}

		donor := -1
		for _, c := range jet.Constituents {
			idx := c.Label.Index
			if !event.IsChargedLeptonCode(absPDG(fs[idx].PDGID)) {
				continue
			}
			if donor < 0 || fs[idx].P4.Pt() > fs[donor].P4.Pt() {
				donor = idx
			}
		}
		if donor < 0 {
			continue // pure-photon cluster
		}

		leptons = append(leptons, DressedLepton{
			P4:           jet.P4,
			Charge:       fs[donor].Charge,
			PDGID:        fs[donor].PDGID,
			Area:         jet.Area,
			Constituents: jet.Constituents,
		})
		for _, c := range jet.Constituents {
			used[c.Label.Index] = true
		}
	}

	return leptons, used, nil
}
