// Package server hosts the HTTP API and the daemon lifecycle, including the
// single-instance lock and runtime status reporting.
package server
