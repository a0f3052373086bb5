// Package verifier implements the verification query engine: it derives an
// authenticity event from the stored (or absent) media record and appends it
// to the append-only verification log before returning it.
package verifier
