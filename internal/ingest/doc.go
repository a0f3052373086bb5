// Package ingest implements the ingestion pipeline: fingerprint, dedup,
// analyze, anchor, persist.
//
// The store's atomic TryCreate is the only serialization point. The winning
// creator owns pipeline completion for its fingerprint, which bounds
// external-call concurrency to one outstanding analyzer/anchor pair per
// unique fingerprint. Losing callers return the best-known record state
// immediately rather than blocking on the winner.
package ingest
