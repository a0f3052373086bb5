package anchor

import (
	"context"

	"guardian/internal/config"
)

// Anchor durably timestamps a content fingerprint on a ledger and returns an
// opaque reference. The ingestion pipeline invokes it at most once per
// unique fingerprint; a failure leaves the media record without a reference
// and is not fatal to ingestion.
type Anchor interface {
	AnchorFingerprint(ctx context.Context, fingerprint string) (string, error)
}

// NewFromConfig selects the ledger implementation: the HTTP client when an
// endpoint is configured, otherwise the simulated ledger.
func NewFromConfig(cfg config.Anchor) Anchor {
	if cfg.Endpoint == "" {
		return NewSimulated()
	}
	return NewClient(cfg)
}
