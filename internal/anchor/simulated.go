package anchor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Simulated is a deterministic stand-in for the ledger. References carry the
// fingerprint prefix and anchoring time so they remain recognizable in
// stored records without any network dependency.
type Simulated struct {
	now func() time.Time
}

var _ Anchor = (*Simulated)(nil)

// NewSimulated returns a simulated ledger using wall-clock time.
func NewSimulated() *Simulated {
	return &Simulated{now: time.Now}
}

// NewSimulatedWithClock returns a simulated ledger with an injected clock.
func NewSimulatedWithClock(now func() time.Time) *Simulated {
	if now == nil {
		now = time.Now
	}
	return &Simulated{now: now}
}

// AnchorFingerprint returns a reference of the form
// poly_tx_<fingerprint[:16]>_<unix>.
func (s *Simulated) AnchorFingerprint(ctx context.Context, fingerprint string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(fingerprint) < 16 {
		return "", errors.New("anchor: fingerprint too short")
	}
	return fmt.Sprintf("poly_tx_%s_%d", fingerprint[:16], s.now().UTC().Unix()), nil
}
