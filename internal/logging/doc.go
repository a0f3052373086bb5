// Package logging builds the slog loggers used by the daemon and CLI.
//
// It parses levels and formats from configuration, fans output out to stdout
// and the daemon log file, and provides context helpers that stamp request
// correlation IDs and content fingerprints onto log records.
package logging
