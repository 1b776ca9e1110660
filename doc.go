// Package pseudotop reconstructs a simplified ("pseudo") top-quark-pair
// decay topology from generator-level final-state particles.
//
// What it does, per event:
//
//   - Partitions stable particles into prompt neutrinos, lepton/photon
//     candidates and hadronic activity, walking the generator history to
//     drop hadron-derived leptons and incomplete records.
//   - Dresses leptons: clusters each charged lepton with its radiated
//     photons (small-cone anti-kt) into a single detector-like object.
//   - Builds hadronic jets (large-cone anti-kt) and tags them as
//     heavy-flavor by clustering near-zero-momentum "ghost" B hadrons
//     alongside the visible particles.
//   - Assigns leptons, neutrinos and jets combinatorially to W-boson and
//     top-quark hypotheses (dilepton or semileptonic channel), minimizing
//     the distance of the candidate invariant masses to the nominal W and
//     top masses, and emits the resulting ten-particle decay tree with
//     explicit parent/child links.
//
// Everything is organized under flat subpackages:
//
//	fmom/    — Lorentz four-momentum arithmetic
//	event/   — particle data model: immutable input arena, output particles
//	hadron/  — heavy-flavor (B hadron) PDG classification
//	cluster/ — jet-clustering interface + reference anti-kt engine
//	reco/    — the reconstruction pipeline itself
//	config/  — YAML parameter loading for host frameworks
//
// Design values:
//
//   - Deterministic: strict-minimum combinatorics, stable sorts, no
//     randomness — identical input yields bit-identical output.
//   - Per-event anomalies are outcomes, not errors: an event with no
//     reconstructable topology completes with empty topology output.
//   - Reentrant: a Reconstructor is immutable after construction and safe
//     for concurrent use; no state crosses events.
//
//	go get github.com/katalvlaran/pseudotop
package pseudotop
