// Package fingerprint computes the deterministic content digests used as the
// dedup and lookup key throughout the ingestion pipeline.
package fingerprint
