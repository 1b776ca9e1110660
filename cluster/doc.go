// Package cluster defines the jet-clustering boundary of the reconstruction
// and ships a reference anti-kt implementation.
//
// What:
//
//   - Input — a labeled four-momentum handed to the clusterer; the Label
//     carries an opaque back-reference (source collection + index) so jet
//     constituents can be mapped back to their origin.
//   - Jet — a clustered four-momentum with its pT-ordered constituents.
//   - Clusterer — the pluggable engine contract: cluster these labeled
//     four-vectors with cone radius R, return labeled jets above MinPt.
//   - AntiKT — a reference sequential-recombination implementation of the
//     anti-kt algorithm (E-scheme, beam-distance termination).
//
// Why:
//
//   - The reconstruction pipeline runs two clustering passes (lepton
//     dressing with a small cone, hadronic jets with a large one) through
//     this one interface; hosts with a production clustering engine plug it
//     in, everyone else uses AntiKT.
//
// Determinism:
//
//   - All ties (pairwise distances, pT ordering) resolve first-seen-wins,
//     so identical input always yields identical output.
//
// Complexity: AntiKT is the naive O(n³) formulation — adequate for
// final-state multiplicities, not tuned for pileup-scale inputs.
//
// Errors:
//
//   - ErrBadRadius — cone radius not strictly positive.
//   - ErrBadMinPt — negative minimum transverse momentum.
package cluster
