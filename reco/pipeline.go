package reco

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pseudotop/cluster"
	"github.com/katalvlaran/pseudotop/event"
	"github.com/katalvlaran/pseudotop/hadron"
)

// Reconstructor runs the pseudo-top reconstruction pipeline. It is
// immutable after New and safe for concurrent Run calls.
type Reconstructor struct {
	p         Params
	clusterer cluster.Clusterer
	log       *zap.Logger
}

// New validates p and builds a Reconstructor. The default engine is the
// reference anti-kt clusterer and the default logger is a no-op.
func New(p Params, opts ...Option) (*Reconstructor, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r := &Reconstructor{
		p:         p,
		clusterer: cluster.AntiKT{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Run reconstructs one event. All output slices are freshly allocated; ev
// is read-only and no reference to it survives the call.
//
// The only error source is a failing pluggable clusterer; every per-event
// anomaly (orphans, degenerate momenta, no viable channel or combination)
// degrades to smaller or empty output collections by design.
func (r *Reconstructor) Run(ev event.Event) (Result, error) {
	heavyIdx := hadron.Scan(ev.Gen)
	heavySet := make(map[int]bool, len(heavyIdx))
	for _, i := range heavyIdx {
		heavySet[i] = true
	}

	cls := classifyFinalState(ev)
	r.log.Debug("classified final state",
		zap.Int("neutrinos", len(cls.neutrinos)),
		zap.Int("leptonCandidates", len(cls.leptonIdx)),
		zap.Int("heavyHadrons", len(heavyIdx)))

	leptons, used, err := dressLeptons(ev.FinalState, cls.leptonIdx, r.p, r.clusterer)
	if err != nil {
		return Result{}, err
	}

	jets, bIdx, lIdx, err := buildJets(ev, heavyIdx, heavySet, used, r.p, r.clusterer)
	if err != nil {
		return Result{}, err
	}
	r.log.Debug("built objects",
		zap.Int("dressedLeptons", len(leptons)),
		zap.Int("jets", len(jets)),
		zap.Int("bTagged", len(bIdx)))

	pseudoTop := reconstruct(leptons, cls.neutrinos, jets, bIdx, lIdx, r.p)
	r.log.Debug("assembled topology", zap.Int("pseudoParticles", len(pseudoTop)))

	return Result{
		Neutrinos: cls.neutrinos,
		Leptons:   leptons,
		Jets:      jets,
		PseudoTop: pseudoTop,
	}, nil
}
