package api_test

import (
	"testing"
	"time"

	"guardian/internal/api"
	"guardian/internal/mediastore"
)

func TestFromMediaRecord(t *testing.T) {
	ingested := time.Date(2026, time.January, 5, 12, 30, 0, 0, time.UTC)
	record := &mediastore.MediaRecord{
		ID:              "rec-1",
		Fingerprint:     "abc",
		Filename:        "clip.mp4",
		FileSize:        4096,
		MediaKind:       "video/mp4",
		Status:          mediastore.StatusVerified,
		AnchorReference: "poly_tx_abc",
		Verdict: &mediastore.Verdict{
			IsDeepfake:      false,
			ConfidenceScore: 0.91,
			RiskLevel:       mediastore.RiskLow,
		},
		IngestedAt: ingested,
	}

	dto := api.FromMediaRecord(record)
	if dto.ID != "rec-1" || dto.Status != "verified" {
		t.Fatalf("dto = %#v", dto)
	}
	if dto.IngestedAt != "2026-01-05T12:30:00.000Z" {
		t.Fatalf("ingestedAt = %s", dto.IngestedAt)
	}
	if dto.Verdict == nil || dto.Verdict.RiskLevel != "low" {
		t.Fatalf("verdict = %#v", dto.Verdict)
	}
	if dto.Verdict.DetectedArtifacts == nil {
		t.Fatal("artifacts should serialize as empty array, not null")
	}
	if dto.UpdatedAt != "" {
		t.Fatalf("zero time should map to empty string, got %q", dto.UpdatedAt)
	}
}

func TestFromMediaRecordWithoutVerdict(t *testing.T) {
	dto := api.FromMediaRecord(&mediastore.MediaRecord{
		ID:     "rec-2",
		Status: mediastore.StatusPending,
	})
	if dto.Verdict != nil {
		t.Fatal("pending record should have no verdict")
	}
	if dto.AnchorReference != "" {
		t.Fatal("unanchored record should have empty reference")
	}
}

func TestFromVerificationEvent(t *testing.T) {
	checked := time.Date(2026, time.February, 1, 8, 0, 0, 0, time.UTC)
	event := &mediastore.VerificationEvent{
		EventID:         "evt-1",
		Fingerprint:     "abc",
		CheckedAt:       checked,
		IsAuthentic:     true,
		ConfidenceScore: 0.88,
		Anchored:        true,
		Details: mediastore.EventDetails{
			Verdict: &mediastore.Verdict{ConfidenceScore: 0.88, RiskLevel: mediastore.RiskLow},
		},
	}

	dto := api.FromVerificationEvent(event)
	if !dto.IsAuthentic || !dto.Anchored {
		t.Fatalf("dto = %#v", dto)
	}
	if dto.CheckedAt != "2026-02-01T08:00:00.000Z" {
		t.Fatalf("checkedAt = %s", dto.CheckedAt)
	}
	if dto.Details.Verdict == nil {
		t.Fatal("expected verdict details")
	}
}

func TestFromVerificationEventNotFound(t *testing.T) {
	dto := api.FromVerificationEvent(&mediastore.VerificationEvent{
		EventID:     "evt-2",
		Fingerprint: "missing",
		Details:     mediastore.EventDetails{Error: mediastore.NotFoundMarker},
	})
	if dto.Details.Error != mediastore.NotFoundMarker {
		t.Fatalf("details = %#v", dto.Details)
	}
	if dto.Details.Verdict != nil {
		t.Fatal("not-found event should carry no verdict")
	}
}
