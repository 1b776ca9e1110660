// Package hadron classifies generator particles as heavy-flavor (b) hadrons
// from their PDG type codes.
//
// What:
//
//   - IsHeavyHadronCode — pure digit classifier over the 7-digit PDG
//     composite code (±n nr nL nq1 nq2 nq3 nJ): accepts B mesons (nq1=0,
//     nq2=5) and B baryons (nq1=5), rejects fundamentals, nuclei and
//     diquarks.
//   - IsHeavyHadron — adds the excited-state veto: a hadron is not tagged
//     when one of its direct daughters is itself a heavy hadron (B*→Bγ tags
//     the B, not the B*).
//   - Scan — one pass over a generator record collecting the indices of all
//     taggable non-final hadrons, in increasing order.
//
// Why:
//
//   - The set of heavy-hadron indices seeds ghost-based jet flavor tagging;
//     the veto prevents double counting a decay chain within one flavor
//     family.
//
// Complexity: IsHeavyHadronCode is O(1); Scan is O(n + links).
// Errors: none — pure predicates over immutable input.
package hadron
