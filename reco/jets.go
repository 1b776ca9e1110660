package reco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pseudotop/cluster"
	"github.com/katalvlaran/pseudotop/event"
)

// ghostScale is the target momentum magnitude of a ghost hadron: small
// enough to leave jet kinematics untouched, large enough to stay finite.
const ghostScale = 1e-20

// buildJets clusters the remaining stable hadronic activity plus
// ghost-rescaled heavy hadrons and partitions the surviving jets into
// heavy-flavor-tagged and untagged index lists, preserving clustering
// output order.
//
// heavyIdx must be sorted ascending (hadron.Scan order) so ghost inputs are
// appended deterministically; heavySet is its membership view.
func buildJets(ev event.Event, heavyIdx []int, heavySet map[int]bool, used map[int]bool, p Params, clu cluster.Clusterer) ([]Jet, []int, []int, error) {
	inputs := make([]cluster.Input, 0, len(ev.FinalState)+len(heavyIdx))
	for i := range ev.FinalState {
		fp := &ev.FinalState[i]
		if fp.Status != event.StatusFinal {
			continue
		}
		if !fp.P4.Valid() {
			continue
		}
		if event.IsNeutrinoCode(absPDG(fp.PDGID)) {
			continue
		}
		if used[i] {
			continue
		}
		inputs = append(inputs, cluster.Input{
			P4:    fp.P4,
			Label: cluster.Label{Source: cluster.SourceFinalState, Index: i},
		})
	}

	for _, gi := range heavyIdx {
		gp := &ev.Gen[gi]
		if !gp.P4.Valid() {
			continue
		}
		inputs = append(inputs, cluster.Input{
			P4:    gp.P4.Scale(ghostScale / gp.P4.P()),
			Label: cluster.Label{Source: cluster.SourceGhost, Index: gi},
		})
	}

	clustered, err := clu.Cluster(inputs, cluster.Options{R: p.JetConeR, MinPt: p.JetMinPt})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reco: jet building: %w", err)
	}

	var (
		jets       []Jet
		bIdx, lIdx []int
	)
	for _, cj := range clustered {
		if math.Abs(cj.P4.Eta()) > p.JetMaxEta {
			continue
		}

		tagged := false
		for _, c := range cj.Constituents {
			if c.Label.Source == cluster.SourceGhost && heavySet[c.Label.Index] {
				tagged = true

				break
			}
		}

		jet := Jet{P4: cj.P4, Area: cj.Area, HeavyFlavor: tagged, Constituents: cj.Constituents}
		if tagged {
			jet.PDGID = event.PDGBottom
			bIdx = append(bIdx, len(jets))
		} else {
			lIdx = append(lIdx, len(jets))
		}
		jets = append(jets, jet)
	}

	return jets, bIdx, lIdx, nil
}
