package api

import (
	"time"

	"guardian/internal/mediastore"
)

// FromMediaRecord converts an internal media record into its transport form.
func FromMediaRecord(record *mediastore.MediaRecord) MediaRecord {
	if record == nil {
		return MediaRecord{}
	}
	return MediaRecord{
		ID:              record.ID,
		Fingerprint:     record.Fingerprint,
		Filename:        record.Filename,
		FileSize:        record.FileSize,
		MediaKind:       record.MediaKind,
		Status:          string(record.Status),
		AnchorReference: record.AnchorReference,
		Verdict:         fromVerdict(record.Verdict),
		IngestedAt:      formatTime(record.IngestedAt),
		UpdatedAt:       formatTime(record.UpdatedAt),
	}
}

// FromMediaRecords converts a slice of internal media records.
func FromMediaRecords(records []*mediastore.MediaRecord) []MediaRecord {
	out := make([]MediaRecord, 0, len(records))
	for _, record := range records {
		out = append(out, FromMediaRecord(record))
	}
	return out
}

// FromVerificationEvent converts an internal event into its transport form.
func FromVerificationEvent(event *mediastore.VerificationEvent) VerificationEvent {
	if event == nil {
		return VerificationEvent{}
	}
	return VerificationEvent{
		EventID:         event.EventID,
		Fingerprint:     event.Fingerprint,
		CheckedAt:       formatTime(event.CheckedAt),
		IsAuthentic:     event.IsAuthentic,
		ConfidenceScore: event.ConfidenceScore,
		Details: EventDetails{
			Verdict: fromVerdict(event.Details.Verdict),
			Error:   event.Details.Error,
		},
		Anchored: event.Anchored,
	}
}

// FromVerificationEvents converts a slice of internal events.
func FromVerificationEvents(events []*mediastore.VerificationEvent) []VerificationEvent {
	out := make([]VerificationEvent, 0, len(events))
	for _, event := range events {
		out = append(out, FromVerificationEvent(event))
	}
	return out
}

// FromStatusCheck converts an internal status check into its transport form.
func FromStatusCheck(check *mediastore.StatusCheck) StatusCheck {
	if check == nil {
		return StatusCheck{}
	}
	return StatusCheck{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  formatTime(check.Timestamp),
	}
}

// FromStatusChecks converts a slice of internal status checks.
func FromStatusChecks(checks []*mediastore.StatusCheck) []StatusCheck {
	out := make([]StatusCheck, 0, len(checks))
	for _, check := range checks {
		out = append(out, FromStatusCheck(check))
	}
	return out
}

func fromVerdict(verdict *mediastore.Verdict) *Verdict {
	if verdict == nil {
		return nil
	}
	artifacts := verdict.DetectedArtifacts
	if artifacts == nil {
		artifacts = []string{}
	}
	return &Verdict{
		IsDeepfake:        verdict.IsDeepfake,
		ConfidenceScore:   verdict.ConfidenceScore,
		DetectedArtifacts: artifacts,
		RiskLevel:         string(verdict.RiskLevel),
		AnalysisSummary:   verdict.AnalysisSummary,
	}
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(dateTimeFormat)
}
