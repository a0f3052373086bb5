// Package mediastore persists media records and verification events in
// SQLite and exposes the keyed-store operations the ingestion pipeline
// depends on.
//
// The fingerprint column is the primary key of media_records; TryCreate uses
// an atomic conflict-free insert so concurrent ingestions of identical
// content converge on a single record with a single winning creator. Verdict
// and anchor fills are monotonic updates guarded at the SQL level, which
// keeps retries idempotent. The verification_events table is append-only.
//
// Treat this package as the single source of truth for record semantics;
// schema changes go in schema.sql with a schemaVersion bump.
package mediastore
