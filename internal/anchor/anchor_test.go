package anchor_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guardian/internal/anchor"
	"guardian/internal/config"
)

func TestSimulatedReferenceFormat(t *testing.T) {
	fixed := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	sim := anchor.NewSimulatedWithClock(func() time.Time { return fixed })

	fp := strings.Repeat("ab", 32)
	reference, err := sim.AnchorFingerprint(context.Background(), fp)
	if err != nil {
		t.Fatalf("AnchorFingerprint failed: %v", err)
	}
	want := fmt.Sprintf("poly_tx_%s_%d", fp[:16], fixed.Unix())
	if reference != want {
		t.Fatalf("reference = %s, want %s", reference, want)
	}
}

func TestSimulatedRejectsShortFingerprint(t *testing.T) {
	sim := anchor.NewSimulated()
	if _, err := sim.AnchorFingerprint(context.Background(), "short"); err == nil {
		t.Fatal("expected error for short fingerprint")
	}
}

func TestSimulatedHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim := anchor.NewSimulated()
	if _, err := sim.AnchorFingerprint(ctx, strings.Repeat("a", 64)); err == nil {
		t.Fatal("expected context error")
	}
}

func TestClientAnchorsFingerprint(t *testing.T) {
	fp := strings.Repeat("cd", 32)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var req struct {
			Fingerprint string `json:"fingerprint"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Fingerprint != fp {
			t.Errorf("fingerprint = %s", req.Fingerprint)
		}
		json.NewEncoder(w).Encode(map[string]string{"reference": "ledger_tx_123"})
	}))
	defer server.Close()

	client := anchor.NewClient(config.Anchor{Endpoint: server.URL, TimeoutSeconds: 5})
	reference, err := client.AnchorFingerprint(context.Background(), fp)
	if err != nil {
		t.Fatalf("AnchorFingerprint failed: %v", err)
	}
	if reference != "ledger_tx_123" {
		t.Fatalf("reference = %s", reference)
	}
}

func TestClientSurfacesLedgerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "ledger unavailable"})
	}))
	defer server.Close()

	client := anchor.NewClient(config.Anchor{Endpoint: server.URL})
	if _, err := client.AnchorFingerprint(context.Background(), strings.Repeat("a", 64)); err == nil {
		t.Fatal("expected ledger error")
	} else if !strings.Contains(err.Error(), "ledger unavailable") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientRejectsEmptyReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := anchor.NewClient(config.Anchor{Endpoint: server.URL})
	if _, err := client.AnchorFingerprint(context.Background(), strings.Repeat("a", 64)); err == nil {
		t.Fatal("expected error for empty reference")
	}
}

func TestNewFromConfigSelectsSimulated(t *testing.T) {
	if _, ok := anchor.NewFromConfig(config.Anchor{}).(*anchor.Simulated); !ok {
		t.Fatal("expected simulated anchor for empty endpoint")
	}
	if _, ok := anchor.NewFromConfig(config.Anchor{Endpoint: "http://example.com"}).(*anchor.Client); !ok {
		t.Fatal("expected http client anchor for configured endpoint")
	}
}
