package reco

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pseudotop/cluster"
)

// Params is the physics configuration of a Reconstructor, fixed at
// construction. YAML tags match the upstream producer's parameter names so
// host configuration files map one to one (see the config package).
type Params struct {
	// LeptonMinPt is the minimum pT of a dressed-lepton cluster.
	LeptonMinPt float64 `yaml:"leptonMinPt"`
	// LeptonMaxEta bounds |η| of a dressed-lepton cluster.
	LeptonMaxEta float64 `yaml:"leptonMaxEta"`
	// LeptonConeR is the lepton-dressing cone radius.
	LeptonConeR float64 `yaml:"leptonConeSize"`
	// JetMinPt is the minimum pT of a hadronic jet.
	JetMinPt float64 `yaml:"jetMinPt"`
	// JetMaxEta bounds |η| of a hadronic jet.
	JetMaxEta float64 `yaml:"jetMaxEta"`
	// JetConeR is the hadronic-jet cone radius.
	JetConeR float64 `yaml:"jetConeSize"`
	// WMass is the nominal W-boson mass of the pairing objective.
	WMass float64 `yaml:"wMass"`
	// TopMass is the nominal top-quark mass of the pairing objective.
	TopMass float64 `yaml:"tMass"`
}

// DefaultParams returns the standard pseudo-top working point:
// leptons pT ≥ 20 within |η| ≤ 2.4 dressed with a 0.1 cone, jets pT ≥ 30
// within |η| ≤ 2.4 with a 0.4 cone, mW = 80.4, mt = 172.5.
func DefaultParams() Params {
	return Params{
		LeptonMinPt:  20,
		LeptonMaxEta: 2.4,
		LeptonConeR:  0.1,
		JetMinPt:     30,
		JetMaxEta:    2.4,
		JetConeR:     0.4,
		WMass:        80.4,
		TopMass:      172.5,
	}
}

// Validate checks p against the package sentinels.
func (p Params) Validate() error {
	if p.LeptonConeR <= 0 || p.JetConeR <= 0 {
		return ErrBadCone
	}
	if p.LeptonMinPt < 0 || p.JetMinPt < 0 || p.LeptonMaxEta < 0 || p.JetMaxEta < 0 {
		return ErrBadThreshold
	}
	if p.WMass <= 0 || p.TopMass <= 0 {
		return ErrBadMass
	}

	return nil
}

// Option wires collaborators into a Reconstructor.
type Option func(*Reconstructor)

// WithClusterer replaces the default anti-kt engine. A nil value is ignored.
func WithClusterer(c cluster.Clusterer) Option {
	return func(r *Reconstructor) {
		if c != nil {
			r.clusterer = c
		}
	}
}

// WithLogger attaches a logger for per-stage debug counts. A nil value is
// ignored; the default is a no-op logger.
func WithLogger(lg *zap.Logger) Option {
	return func(r *Reconstructor) {
		if lg != nil {
			r.log = lg
		}
	}
}
