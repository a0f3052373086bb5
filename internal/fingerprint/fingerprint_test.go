package fingerprint_test

import (
	"strings"
	"testing"

	"guardian/internal/fingerprint"
)

func TestSumMatchesKnownVector(t *testing.T) {
	// sha256("hello world")
	const want = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	got := fingerprint.Sum([]byte("hello world"))
	if got != want {
		t.Fatalf("Sum mismatch: got %s want %s", got, want)
	}
}

func TestSumEmptyInput(t *testing.T) {
	const want = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := fingerprint.Sum(nil); got != want {
		t.Fatalf("Sum(nil) = %s, want %s", got, want)
	}
}

func TestFromReaderMatchesSum(t *testing.T) {
	payload := []byte("guardian test payload")
	fromReader, err := fingerprint.FromReader(strings.NewReader(string(payload)))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}
	if want := fingerprint.Sum(payload); fromReader != want {
		t.Fatalf("FromReader = %s, want %s", fromReader, want)
	}
}

func TestNormalize(t *testing.T) {
	raw := "  B94D27B9934D3E08A52E52D7DA7DABFAC484EFE37A5380EE9088F7ACE2EFCDE9 "
	normalized := fingerprint.Normalize(raw)
	if !fingerprint.Valid(normalized) {
		t.Fatalf("expected normalized fingerprint to be valid, got %q", normalized)
	}
}

func TestValidRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"abc123",
		strings.Repeat("g", fingerprint.Size),
		strings.Repeat("a", fingerprint.Size-1),
		strings.Repeat("a", fingerprint.Size+1),
	}
	for _, input := range cases {
		if fingerprint.Valid(input) {
			t.Errorf("Valid(%q) = true, want false", input)
		}
	}
	if !fingerprint.Valid(strings.Repeat("a", fingerprint.Size)) {
		t.Error("expected 64 hex chars to be valid")
	}
}
