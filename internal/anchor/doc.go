// Package anchor defines the fingerprint anchoring capability.
//
// The capability is specified by its interface contract only; both the HTTP
// ledger gateway client and the deterministic simulated ledger satisfy it,
// so pipeline correctness holds independent of which implementation is
// wired in.
package anchor
