package hadron

import "github.com/katalvlaran/pseudotop/event"

const (
	// heavyQuark is the quark-content digit identifying the b family.
	heavyQuark = 5
	// nucleusFloor is the lowest PDG code of the ±10LZZZAAAI nuclear form.
	nucleusFloor = 1000000000
	// fundamentalCeil is the highest code of fundamental particles and
	// generator internals.
	fundamentalCeil = 100
)

// IsHeavyHadronCode reports whether pdgID denotes a hadron containing a
// b quark. The decision reads the quark-content digits of the absolute
// 7-digit composite code ±n nr nL nq1 nq2 nq3 nJ.
func IsHeavyHadronCode(pdgID int) bool {
	code := pdgID
	if code < 0 {
		code = -code
	}
	if code <= fundamentalCeil {
		return false // fundamental particles and MC internals
	}
	if code >= nucleusFloor {
		return false // nuclei
	}

	nq3 := (code / 10) % 10
	nq2 := (code / 100) % 10
	nq1 := (code / 1000) % 10

	switch {
	case nq3 == 0:
		return false // diquarks
	case nq1 == 0 && nq2 == heavyQuark:
		return true // B mesons
	case nq1 == heavyQuark:
		return true // B baryons
	default:
		return false
	}
}

// IsHeavyHadron reports whether particle i of gen is a taggable heavy
// hadron: its own code must classify, and none of its direct daughters may
// classify too. daughters must be gen.DaughterIndex() (passed in so callers
// scanning a whole record invert the mother links once).
func IsHeavyHadron(gen event.Collection, daughters [][]int, i int) bool {
	if !IsHeavyHadronCode(gen[i].PDGID) {
		return false
	}

	// Excited states decay promptly into a ground state of the same family;
	// keep only the last heavy hadron of the chain.
	for _, d := range daughters[i] {
		if IsHeavyHadronCode(gen[d].PDGID) {
			return false
		}
	}

	return true
}

// Scan returns the indices of all taggable heavy hadrons among the
// non-final particles of gen, in increasing order.
func Scan(gen event.Collection) []int {
	daughters := gen.DaughterIndex()

	var out []int
	for i := range gen {
		if gen[i].Status == event.StatusFinal {
			continue
		}
		if IsHeavyHadron(gen, daughters, i) {
			out = append(out, i)
		}
	}

	return out
}
