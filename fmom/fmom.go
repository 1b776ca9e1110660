package fmom

import "math"

// Vec is a Lorentz four-momentum in Cartesian components.
// The zero value is the null vector.
type Vec struct {
	Px, Py, Pz, E float64
}

// FromPtEtaPhiM builds a four-momentum from transverse momentum pt,
// pseudorapidity eta, azimuth phi and invariant mass m.
func FromPtEtaPhiM(pt, eta, phi, m float64) Vec {
	px := pt * math.Cos(phi)
	py := pt * math.Sin(phi)
	pz := pt * math.Sinh(eta)
	p2 := px*px + py*py + pz*pz

	return Vec{Px: px, Py: py, Pz: pz, E: math.Sqrt(p2 + m*m)}
}

// Add returns the E-scheme sum v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{Px: v.Px + w.Px, Py: v.Py + w.Py, Pz: v.Pz + w.Pz, E: v.E + w.E}
}

// Scale returns v with all four components multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{Px: v.Px * s, Py: v.Py * s, Pz: v.Pz * s, E: v.E * s}
}

// Pt returns the transverse momentum sqrt(Px²+Py²).
func (v Vec) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

// P returns the magnitude of the spatial momentum.
func (v Vec) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// Eta returns the pseudorapidity asinh(Pz/Pt).
// A vector exactly on the beam axis yields ±Inf.
func (v Vec) Eta() float64 {
	pt := v.Pt()
	if pt == 0 {
		if v.Pz >= 0 {
			return math.Inf(1)
		}

		return math.Inf(-1)
	}

	return math.Asinh(v.Pz / pt)
}

// Phi returns the azimuthal angle in (-π, π].
func (v Vec) Phi() float64 {
	return math.Atan2(v.Py, v.Px)
}

// M returns the invariant mass sqrt(E²−|p|²).
// Negative m² (floating-point noise) reports as 0.
func (v Vec) M() float64 {
	m2 := v.E*v.E - (v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
	if m2 <= 0 {
		return 0
	}

	return math.Sqrt(m2)
}

// Valid reports whether v is usable as clustering input: every component is
// finite and the transverse momentum is strictly positive.
func (v Vec) Valid() bool {
	pt := v.Pt()
	if math.IsNaN(pt) || math.IsInf(pt, 0) || pt <= 0 {
		return false
	}

	return !math.IsNaN(v.Pz) && !math.IsInf(v.Pz, 0) &&
		!math.IsNaN(v.E) && !math.IsInf(v.E, 0)
}

// DeltaR2 returns the squared angular distance Δη²+Δφ² between v and w,
// with Δφ wrapped into (-π, π].
func (v Vec) DeltaR2(w Vec) float64 {
	deta := v.Eta() - w.Eta()
	dphi := wrapPhi(v.Phi() - w.Phi())

	return deta*deta + dphi*dphi
}

// wrapPhi maps an angle difference into (-π, π].
func wrapPhi(dphi float64) float64 {
	for dphi > math.Pi {
		dphi -= 2 * math.Pi
	}
	for dphi <= -math.Pi {
		dphi += 2 * math.Pi
	}

	return dphi
}
