// Package event defines the particle data model shared by every
// reconstruction stage.
//
// What:
//
//   - Particle — an immutable generator-record entry: four-momentum, charge,
//     PDG type code, status code and mother indices.
//   - Collection — a particle arena addressed by index; mother/daughter
//     relations are collection-relative indices, never pointers.
//   - Event — the per-event input snapshot: the full generator record plus
//     the stable final-state view of it.
//   - PseudoParticle — a synthetic output particle of the reconstructed decay
//     tree, with bidirectional Mothers/Daughters index links.
//
// Ownership:
//
//   - Inputs are read-only snapshots owned by the caller; the reconstruction
//     core only reads them and never retains references across events.
//   - PseudoParticles are owned by the output collection; their links are
//     indices into that same collection and are resolved only once the
//     collection is complete.
//
// Errors: none — the package is pure data.
package event
