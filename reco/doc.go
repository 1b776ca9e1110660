// Package reco reconstructs a pseudo top-quark-pair decay topology from
// generator-level particles.
//
// What:
//
//   - Reconstructor — the per-event pipeline: final-state classification,
//     lepton dressing, hadronic jet building with heavy-flavor ghost
//     tagging, and combinatorial W/top assignment.
//   - Params — the physics configuration (cuts, cone radii, reference
//     masses), fixed at construction.
//   - Result — the four per-event output collections: neutrinos, dressed
//     leptons, jets, and the pseudo-top decay tree (exactly 0 or 10
//     particles).
//
// Pipeline:
//
//  1. Scan the generator record for taggable heavy hadrons (hadron.Scan).
//  2. Partition stable final-state particles into neutrinos, lepton/photon
//     candidates and hadronic remainder; drop orphans, beam-derived
//     particles and hadron-descended leptons.
//  3. Cluster lepton/photon candidates with a small cone; each surviving
//     cluster takes identity from its leading charged lepton. Constituents
//     used here are excluded from jet building.
//  4. Cluster the hadronic remainder plus ghost-rescaled heavy hadrons with
//     the jet cone; a jet is heavy-flavor tagged iff a ghost constituent's
//     generator index is in the heavy-hadron set.
//  5. Pick the dilepton or semileptonic channel by object counts and
//     minimize |m−mW|+|m−mW| then |m−mt|+|m−mt| over candidate pairs;
//     assemble the fixed ten-particle decay tree with bidirectional index
//     links.
//
// Determinism: every minimization uses strict less-than with a large
// sentinel, first minimum wins; neutrinos and clustering outputs are
// pT-sorted with stable sorts. Identical input yields identical output.
//
// Failure semantics: per-event anomalies (orphans, non-finite momenta, no
// viable channel, no viable combination) degrade to smaller or empty output
// collections and are never surfaced as errors. The only error sources are
// invalid Params at construction and a failing pluggable clusterer.
//
// Concurrency: a Reconstructor is immutable after New and safe for
// concurrent Run calls; no state crosses events.
package reco
