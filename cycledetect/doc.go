// Package cycledetect implements three interchangeable incremental cycle
// detectors over a fixed-size directed simple graph. All
// three satisfy the same Detector contract and MUST agree on the
// accept/reject verdict for any sequence of Connect/Disconnect/BulkConnect
// calls (tested in agreement_test.go):
//
//   - KahnDetector maintains a total topological order and falls back to a
//     from-scratch Kahn's-algorithm recompute on an ordering violation.
//   - DFSDetector keeps no ordering; it runs a full forward search from
//     the candidate edge's target on every Connect.
//   - PseudoTopoDetector implements the Bender et al. two-phase level
//     structure, amortizing detection cost via a δ-bounded backward probe.
//
// Connect(s, t) either inserts the edge and returns true, or leaves the
// detector's state byte-for-byte unchanged and returns false — refusal is
// a first-class return value, never an error.
package cycledetect
