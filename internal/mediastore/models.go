package mediastore

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a media record.
type Status string

const (
	StatusPending        Status = "pending"
	StatusVerified       Status = "verified"
	StatusAnalysisFailed Status = "analysis_failed"
)

var statusSet = map[Status]struct{}{
	StatusPending:        {},
	StatusVerified:       {},
	StatusAnalysisFailed: {},
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// RiskLevel grades the severity of detected manipulation.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown"
)

// NormalizeRiskLevel maps arbitrary analyzer output onto a known risk tier.
func NormalizeRiskLevel(value string) RiskLevel {
	switch RiskLevel(strings.ToLower(strings.TrimSpace(value))) {
	case RiskLow:
		return RiskLow
	case RiskMedium:
		return RiskMedium
	case RiskHigh:
		return RiskHigh
	default:
		return RiskUnknown
	}
}

// Verdict is the structured authenticity assessment for one media record.
type Verdict struct {
	IsDeepfake        bool      `json:"is_deepfake"`
	ConfidenceScore   float64   `json:"confidence_score"`
	DetectedArtifacts []string  `json:"detected_artifacts"`
	RiskLevel         RiskLevel `json:"risk_level"`
	AnalysisSummary   string    `json:"analysis_summary"`
}

// MediaRecord is the durable record of one uniquely-fingerprinted ingestion.
// Exactly one record exists per fingerprint, ever. Metadata fields are
// immutable after creation; AnchorReference, Verdict, and Status are filled
// monotonically as the pipeline completes.
type MediaRecord struct {
	ID              string
	Fingerprint     string
	Filename        string
	FileSize        int64
	MediaKind       string
	Status          Status
	AnchorReference string
	Verdict         *Verdict
	IngestedAt      time.Time
	UpdatedAt       time.Time
}

// Anchored reports whether the fingerprint has been committed to the ledger.
func (r *MediaRecord) Anchored() bool {
	return r != nil && r.AnchorReference != ""
}

// VerificationEvent is an immutable log entry produced by each verification
// query. Events are never deduplicated; every query is logged.
type VerificationEvent struct {
	EventID         string
	Fingerprint     string
	CheckedAt       time.Time
	IsAuthentic     bool
	ConfidenceScore float64
	Details         EventDetails
	Anchored        bool
}

// EventDetails carries the analysis context copied into an event at query
// time. Exactly one of Verdict or Error is populated, except for records
// still pending analysis where both are empty.
type EventDetails struct {
	Verdict *Verdict `json:"verdict,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// NotFoundMarker is the detail recorded when verifying an unknown fingerprint.
const NotFoundMarker = "file not found in anchor records"

// StatusCheck is a lightweight client liveness record kept for compatibility
// with older deployments.
type StatusCheck struct {
	ID         string
	ClientName string
	Timestamp  time.Time
}
