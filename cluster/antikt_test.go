// File: cluster/antikt_test.go
package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pseudotop/cluster"
	"github.com/katalvlaran/pseudotop/fmom"
)

func labeled(pt, eta, phi float64, idx int) cluster.Input {
	return cluster.Input{
		P4:    fmom.FromPtEtaPhiM(pt, eta, phi, 0),
		Label: cluster.Label{Source: cluster.SourceFinalState, Index: idx},
	}
}

// TestAntiKT_BadOptions surfaces the option sentinels.
func TestAntiKT_BadOptions(t *testing.T) {
	var akt cluster.AntiKT

	_, err := akt.Cluster(nil, cluster.Options{R: 0, MinPt: 0})
	assert.ErrorIs(t, err, cluster.ErrBadRadius)

	_, err = akt.Cluster(nil, cluster.Options{R: 0.4, MinPt: -1})
	assert.ErrorIs(t, err, cluster.ErrBadMinPt)
}

// TestAntiKT_SingleParticle clusters one input into one jet carrying it.
func TestAntiKT_SingleParticle(t *testing.T) {
	var akt cluster.AntiKT

	jets, err := akt.Cluster([]cluster.Input{labeled(50, 0.3, 1.0, 7)}, cluster.Options{R: 0.4})
	require.NoError(t, err)
	require.Len(t, jets, 1)
	assert.Equal(t, 7, jets[0].Constituents[0].Label.Index)
	assert.InDelta(t, 50.0, jets[0].P4.Pt(), 1e-9)
}

// TestAntiKT_MergeWithinCone merges two particles separated by ΔR < R into
// one jet and keeps two distant particles apart.
func TestAntiKT_MergeWithinCone(t *testing.T) {
	var akt cluster.AntiKT

	inputs := []cluster.Input{
		labeled(60, 0, 0, 0),
		labeled(10, 0.2, 0, 1),   // ΔR=0.2 from the hard one: merges
		labeled(40, 2.0, 2.5, 2), // far away: own jet
	}
	jets, err := akt.Cluster(inputs, cluster.Options{R: 0.4})
	require.NoError(t, err)
	require.Len(t, jets, 2)

	// Output is pT-sorted; the merged jet leads.
	assert.Len(t, jets[0].Constituents, 2)
	assert.Len(t, jets[1].Constituents, 1)
	assert.Equal(t, 2, jets[1].Constituents[0].Label.Index)

	// Constituents are pT-sorted within the jet.
	assert.Equal(t, 0, jets[0].Constituents[0].Label.Index)
	assert.Equal(t, 1, jets[0].Constituents[1].Label.Index)
}

// TestAntiKT_MinPtThreshold drops jets below the threshold.
func TestAntiKT_MinPtThreshold(t *testing.T) {
	var akt cluster.AntiKT

	inputs := []cluster.Input{
		labeled(50, 0, 0, 0),
		labeled(5, 1.5, 3.0, 1),
	}
	jets, err := akt.Cluster(inputs, cluster.Options{R: 0.4, MinPt: 30})
	require.NoError(t, err)
	require.Len(t, jets, 1)
	assert.Equal(t, 0, jets[0].Constituents[0].Label.Index)
}

// TestAntiKT_GhostDoesNotBiasJet verifies the ghost contract: a near-zero-pT
// input within the cone joins the hard jet without visibly moving its
// momentum, and an isolated ghost never survives the threshold.
func TestAntiKT_GhostDoesNotBiasJet(t *testing.T) {
	var akt cluster.AntiKT

	hard := labeled(80, 0.1, -0.5, 0)
	ghost := cluster.Input{
		P4:    fmom.FromPtEtaPhiM(80, 0.2, -0.5, 0).Scale(1e-20 / fmom.FromPtEtaPhiM(80, 0.2, -0.5, 0).P()),
		Label: cluster.Label{Source: cluster.SourceGhost, Index: 42},
	}
	lonely := cluster.Input{
		P4:    fmom.FromPtEtaPhiM(80, -2.0, 2.0, 0).Scale(1e-20 / fmom.FromPtEtaPhiM(80, -2.0, 2.0, 0).P()),
		Label: cluster.Label{Source: cluster.SourceGhost, Index: 43},
	}

	jets, err := akt.Cluster([]cluster.Input{hard, ghost, lonely}, cluster.Options{R: 0.4, MinPt: 30})
	require.NoError(t, err)
	require.Len(t, jets, 1)

	require.Len(t, jets[0].Constituents, 2)
	assert.Equal(t, cluster.SourceGhost, jets[0].Constituents[1].Label.Source)
	assert.Equal(t, 42, jets[0].Constituents[1].Label.Index)
	assert.InDelta(t, 80.0, jets[0].P4.Pt(), 1e-9)
}

// TestAntiKT_Deterministic runs the same input twice and demands identical
// output.
func TestAntiKT_Deterministic(t *testing.T) {
	var akt cluster.AntiKT

	inputs := []cluster.Input{
		labeled(35, 0.4, 0.1, 0),
		labeled(35, 0.4, 0.5, 1),
		labeled(35, -1.0, 2.0, 2),
		labeled(12, 0.45, 0.12, 3),
	}
	a, err := akt.Cluster(inputs, cluster.Options{R: 0.4, MinPt: 10})
	require.NoError(t, err)
	b, err := akt.Cluster(inputs, cluster.Options{R: 0.4, MinPt: 10})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestAntiKT_EmptyInput yields no jets and no error.
func TestAntiKT_EmptyInput(t *testing.T) {
	var akt cluster.AntiKT

	jets, err := akt.Cluster(nil, cluster.Options{R: 0.4})
	require.NoError(t, err)
	assert.Empty(t, jets)
}

var sinkJets []cluster.Jet

// BenchmarkAntiKT_Cluster exercises the naive O(n³) loop at a typical
// final-state multiplicity.
func BenchmarkAntiKT_Cluster(b *testing.B) {
	var akt cluster.AntiKT

	inputs := make([]cluster.Input, 0, 64)
	for i := 0; i < 64; i++ {
		eta := -2.0 + 4.0*float64(i)/64.0
		phi := math.Mod(float64(i)*0.7, 2*math.Pi) - math.Pi
		inputs = append(inputs, labeled(5+float64(i%17), eta, phi, i))
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		jets, err := akt.Cluster(inputs, cluster.Options{R: 0.4, MinPt: 10})
		if err != nil {
			b.Fatal(err)
		}
		sinkJets = jets
	}
}
