package analyzer

import (
	"context"
	"fmt"

	"guardian/internal/mediastore"
)

// Simulated is a deterministic analyzer for offline operation and tests. It
// derives a stable verdict from the content fingerprint so repeated
// ingestions of the same content always agree.
type Simulated struct{}

var _ Analyzer = Simulated{}

// Analyze returns a deterministic authentic verdict for the request.
func (Simulated) Analyze(ctx context.Context, req Request) (*mediastore.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	confidence := simulatedConfidence(req.Fingerprint)
	return &mediastore.Verdict{
		IsDeepfake:        false,
		ConfidenceScore:   confidence,
		DetectedArtifacts: []string{},
		RiskLevel:         mediastore.RiskLow,
		AnalysisSummary: fmt.Sprintf("simulated analysis of %s (%s): no manipulation indicators",
			req.Filename, req.MediaKind),
	}, nil
}

// simulatedConfidence maps a fingerprint onto [0.80, 0.96) so output looks
// plausible without being constant.
func simulatedConfidence(fingerprint string) float64 {
	var sum int
	for _, r := range fingerprint {
		sum += int(r)
	}
	return 0.80 + float64(sum%16)/100
}
