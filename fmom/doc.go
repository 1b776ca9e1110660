// Package fmom provides minimal Lorentz four-momentum arithmetic for
// event reconstruction.
//
// What:
//
//   - Vec — a four-momentum in Cartesian (Px, Py, Pz, E) representation.
//   - Kinematic accessors: Pt, P, Eta, Phi, M.
//   - Composition: Add (E-scheme recombination) and Scale.
//   - FromPtEtaPhiM — construction from collider-native coordinates.
//
// Why:
//
//   - Jet clustering, lepton dressing and mass-proximity scoring all reduce
//     to sums and invariant masses of four-vectors; keeping the math in one
//     leaf package keeps every consumer allocation-free and table-free.
//
// Conventions:
//
//   - Pseudorapidity Eta = asinh(Pz/Pt); ±Inf on the beam axis.
//   - M clamps small negative m² (floating-point noise on nearly light-like
//     sums) to zero, so invariant masses are always finite and comparable.
//
// Complexity: every operation is O(1) and purely functional.
package fmom
