package verifier_test

import (
	"context"
	"strings"
	"testing"

	"guardian/internal/mediastore"
	"guardian/internal/testsupport"
	"guardian/internal/verifier"
)

func TestVerifyUnknownFingerprint(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	fp := strings.Repeat("0", 64)
	event, err := engine.Verify(context.Background(), fp)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if event.IsAuthentic {
		t.Fatal("unknown fingerprint must not be authentic")
	}
	if event.ConfidenceScore != 0 {
		t.Fatalf("confidence = %v", event.ConfidenceScore)
	}
	if event.Details.Error != mediastore.NotFoundMarker {
		t.Fatalf("details error = %q", event.Details.Error)
	}
	if event.Anchored {
		t.Fatal("unknown fingerprint cannot be anchored")
	}
}

func TestVerifyPendingRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	record := testsupport.NewRecord(t, store, "pending.jpg", []byte("pending content"))

	event, err := engine.Verify(context.Background(), record.Fingerprint)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if event.IsAuthentic {
		t.Fatal("record without verdict must not be authentic")
	}
	if event.ConfidenceScore != 0.5 {
		t.Fatalf("confidence = %v", event.ConfidenceScore)
	}
	if event.Details.Verdict != nil || event.Details.Error != "" {
		t.Fatalf("details = %#v", event.Details)
	}
}

func TestVerifyVerifiedRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	ctx := context.Background()
	record := testsupport.NewRecord(t, store, "clean.jpg", []byte("clean content"))
	verdict := &mediastore.Verdict{
		IsDeepfake:      false,
		ConfidenceScore: 0.88,
		RiskLevel:       mediastore.RiskLow,
		AnalysisSummary: "no manipulation detected",
	}
	if err := store.FillAnalysis(ctx, record.Fingerprint, verdict, mediastore.StatusVerified); err != nil {
		t.Fatalf("FillAnalysis failed: %v", err)
	}
	if err := store.FillAnchor(ctx, record.Fingerprint, "poly_tx_test"); err != nil {
		t.Fatalf("FillAnchor failed: %v", err)
	}

	event, err := engine.Verify(ctx, record.Fingerprint)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !event.IsAuthentic {
		t.Fatal("expected authentic result")
	}
	if event.ConfidenceScore != 0.88 {
		t.Fatalf("confidence = %v", event.ConfidenceScore)
	}
	if !event.Anchored {
		t.Fatal("expected anchored result")
	}
	if event.Details.Verdict == nil || event.Details.Verdict.AnalysisSummary != "no manipulation detected" {
		t.Fatalf("details = %#v", event.Details)
	}
}

func TestVerifyDeepfakeRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	ctx := context.Background()
	record := testsupport.NewRecord(t, store, "fake.mp4", []byte("fabricated content"))
	verdict := &mediastore.Verdict{
		IsDeepfake:      true,
		ConfidenceScore: 0.95,
		RiskLevel:       mediastore.RiskHigh,
	}
	if err := store.FillAnalysis(ctx, record.Fingerprint, verdict, mediastore.StatusVerified); err != nil {
		t.Fatalf("FillAnalysis failed: %v", err)
	}

	event, err := engine.Verify(ctx, record.Fingerprint)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if event.IsAuthentic {
		t.Fatal("deepfake record must not verify as authentic")
	}
	if event.ConfidenceScore != 0.95 {
		t.Fatalf("confidence = %v", event.ConfidenceScore)
	}
}

func TestVerifyAppendsEventPerCall(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	ctx := context.Background()
	fp := strings.Repeat("f", 64)
	const queries = 4
	seen := map[string]struct{}{}
	for i := 0; i < queries; i++ {
		event, err := engine.Verify(ctx, fp)
		if err != nil {
			t.Fatalf("Verify %d failed: %v", i, err)
		}
		if _, dup := seen[event.EventID]; dup {
			t.Fatalf("duplicate event id %s", event.EventID)
		}
		seen[event.EventID] = struct{}{}
	}

	events, err := store.ListVerifications(ctx, 100)
	if err != nil {
		t.Fatalf("ListVerifications failed: %v", err)
	}
	if len(events) != queries {
		t.Fatalf("expected %d logged events, got %d", queries, len(events))
	}
}

func TestVerifyDoesNotMutateRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	ctx := context.Background()
	record := testsupport.NewRecord(t, store, "stable.jpg", []byte("stable content"))

	if _, err := engine.Verify(ctx, record.Fingerprint); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	after, err := store.GetByFingerprint(ctx, record.Fingerprint)
	if err != nil {
		t.Fatalf("GetByFingerprint failed: %v", err)
	}
	if after.Status != mediastore.StatusPending || after.Verdict != nil {
		t.Fatalf("verification mutated the record: %#v", after)
	}
}

func TestVerifyNormalizesFingerprint(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	engine := verifier.NewEngine(store, nil)

	record := testsupport.NewRecord(t, store, "cased.jpg", []byte("cased content"))

	event, err := engine.Verify(context.Background(), "  "+strings.ToUpper(record.Fingerprint)+" ")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if event.Fingerprint != record.Fingerprint {
		t.Fatalf("fingerprint = %s", event.Fingerprint)
	}
	if event.Details.Error != "" {
		t.Fatal("expected record to be found after normalization")
	}
}
