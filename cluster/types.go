package cluster

import (
	"errors"

	"github.com/katalvlaran/pseudotop/fmom"
)

// Sentinel errors for clustering options.
var (
	// ErrBadRadius indicates a cone radius that is not strictly positive.
	ErrBadRadius = errors.New("cluster: cone radius must be > 0")
	// ErrBadMinPt indicates a negative minimum transverse momentum.
	ErrBadMinPt = errors.New("cluster: minimum pt must be >= 0")
)

// Source identifies the collection an Input label refers into.
type Source int

const (
	// SourceFinalState labels an index into the final-state collection.
	SourceFinalState Source = iota
	// SourceGhost labels an index into the generator record, carried by a
	// ghost-rescaled heavy hadron.
	SourceGhost
)

// Label is the opaque back-reference attached to each clustering input.
// Keeping the source explicit means a ghost's generator index can never be
// mistaken for a final-state index.
type Label struct {
	Source Source
	Index  int
}

// Input is a labeled four-momentum handed to a Clusterer.
type Input struct {
	P4    fmom.Vec
	Label Label
}

// Jet is one clustered output: the E-scheme sum of its constituents, the
// catchment area when the engine computes one (0 otherwise), and the
// constituents themselves sorted by descending pT.
type Jet struct {
	P4           fmom.Vec
	Area         float64
	Constituents []Input
}

// Options parameterizes one clustering pass.
type Options struct {
	// R is the cone radius of the clustering metric.
	R float64
	// MinPt drops output jets with transverse momentum below this threshold.
	MinPt float64
}

// Validate checks the options against the sentinel errors above.
func (o Options) Validate() error {
	if o.R <= 0 {
		return ErrBadRadius
	}
	if o.MinPt < 0 {
		return ErrBadMinPt
	}

	return nil
}

// Clusterer is the pluggable jet-clustering engine contract.
//
// Implementations must return jets sorted by descending pT, each with its
// constituents sorted by descending pT, and must treat the input slice as
// read-only.
type Clusterer interface {
	Cluster(inputs []Input, opts Options) ([]Jet, error)
}
