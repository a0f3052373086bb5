// Package services defines shared utilities consumed by the ingestion
// pipeline and external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp request correlation IDs, content
//     fingerprints, and component names for logging and tracing.
//   - Structured error markers plus the Wrap helper and the HTTPStatus
//     mapping that translate pipeline failures into consistent API
//     responses.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across components.
package services
