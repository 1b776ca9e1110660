// File: hadron/hadron_test.go
package hadron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pseudotop/event"
	"github.com/katalvlaran/pseudotop/hadron"
)

// TestIsHeavyHadronCode_DigitRules walks the classifier over representative
// PDG codes of each branch of the digit decomposition.
func TestIsHeavyHadronCode_DigitRules(t *testing.T) {
	cases := []struct {
		name string
		code int
		want bool
	}{
		{"B0 meson", 511, true},
		{"B+ meson", 521, true},
		{"negative code classifies by absolute value", -511, true},
		{"Bs meson", 531, true},
		{"excited B meson code", 513, true},
		{"Lambda_b baryon", 5122, true},
		{"Sigma_b baryon", 5222, true},
		{"D0 meson is charm, not bottom", 421, false},
		{"pion", 211, false},
		{"proton", 2212, false},
		{"b quark is fundamental", 5, false},
		{"gluon", 21, false},
		{"MC internal code", 92, false},
		{"bb diquark (nq3=0)", 5101, false},
		{"nucleus", 1000050110, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, hadron.IsHeavyHadronCode(tc.code),
			"%s (code %d)", tc.name, tc.code)
	}
}

// TestIsHeavyHadron_SiblingVeto reproduces the B*→B0γ chain: the excited
// parent must not be tagged because its daughter is itself a B hadron.
func TestIsHeavyHadron_SiblingVeto(t *testing.T) {
	gen := event.Collection{
		{PDGID: 513, Status: event.StatusDecayed},                    // 0: B* parent
		{PDGID: 511, Status: event.StatusDecayed, Mothers: []int{0}}, // 1: B0 daughter
		{PDGID: 22, Status: event.StatusFinal, Mothers: []int{0}},    // 2: photon
		{PDGID: 211, Status: event.StatusFinal, Mothers: []int{1}},   // 3: pion from B0
	}
	daughters := gen.DaughterIndex()

	assert.False(t, hadron.IsHeavyHadron(gen, daughters, 0), "excited parent must be vetoed")
	assert.True(t, hadron.IsHeavyHadron(gen, daughters, 1), "ground state must be tagged")
}

// TestScan_SkipsFinalAndVetoed covers the one-pass index collection: only
// non-final, non-vetoed heavy hadrons appear, in increasing order.
func TestScan_SkipsFinalAndVetoed(t *testing.T) {
	gen := event.Collection{
		{PDGID: 513, Status: event.StatusDecayed},                     // 0: vetoed excited state
		{PDGID: 511, Status: event.StatusDecayed, Mothers: []int{0}},  // 1: tagged
		{PDGID: 211, Status: event.StatusFinal, Mothers: []int{1}},    // 2: not a heavy hadron
		{PDGID: 5122, Status: event.StatusDecayed},                    // 3: tagged baryon
		{PDGID: 521, Status: event.StatusFinal},                       // 4: final-status, skipped
	}

	assert.Equal(t, []int{1, 3}, hadron.Scan(gen))
}

// TestScan_EmptyRecord returns nil on an empty collection.
func TestScan_EmptyRecord(t *testing.T) {
	assert.Nil(t, hadron.Scan(nil))
}
