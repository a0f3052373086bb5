// Package analyzer defines the authenticity analyzer capability and its
// implementations.
//
// The Client implementation wraps an OpenRouter-compatible chat completion
// API, driving it with a deepfake-detection prompt and validating the
// response against the verdict schema. Responses that complete but do not
// match the schema degrade to a lenient verdict; transport and API failures
// surface as errors so the ingestion pipeline can record its documented
// fallback. Simulated provides a deterministic local implementation for
// offline operation and tests.
package analyzer
