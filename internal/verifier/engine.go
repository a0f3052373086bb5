package verifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guardian/internal/fingerprint"
	"guardian/internal/logging"
	"guardian/internal/mediastore"
	"guardian/internal/services"
)

// Engine derives verification events from stored media records and appends
// them to the verification log.
type Engine struct {
	store  *mediastore.Store
	logger *slog.Logger
}

// NewEngine constructs a verification query engine.
func NewEngine(store *mediastore.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		store:  store,
		logger: logger.With(slog.String(logging.FieldComponent, "verifier")),
	}
}

// Verify looks up the media record for a fingerprint, derives a verification
// event, appends it to the log, and returns it. Every call is logged, even
// for identical fingerprints and record states; a verification query is an
// audit-relevant access, not a cacheable computation. An unknown fingerprint
// is a data state, not an error.
func (e *Engine) Verify(ctx context.Context, fp string) (*mediastore.VerificationEvent, error) {
	fp = fingerprint.Normalize(fp)
	ctx = services.WithFingerprint(ctx, fp)
	log := logging.WithContext(ctx, e.logger)

	record, err := e.store.GetByFingerprint(ctx, fp)
	if err != nil {
		return nil, services.Wrap(services.ErrUnavailable, "verifier", "lookup record", "", err)
	}

	event := deriveEvent(fp, record)
	if err := e.store.AppendVerification(ctx, event); err != nil {
		return nil, services.Wrap(services.ErrUnavailable, "verifier", "append event", "", err)
	}

	log.Info("verification recorded",
		slog.Bool("is_authentic", event.IsAuthentic),
		slog.Bool("anchored", event.Anchored),
		slog.Bool("known", record != nil),
	)
	return event, nil
}

// deriveEvent maps a record (or its absence) onto an immutable event. A
// missing verdict counts as not-yet-authenticated: is_authentic stays false
// until analysis confirms the content is not a deepfake.
func deriveEvent(fp string, record *mediastore.MediaRecord) *mediastore.VerificationEvent {
	event := &mediastore.VerificationEvent{
		EventID:     uuid.NewString(),
		Fingerprint: fp,
		CheckedAt:   time.Now().UTC(),
	}

	if record == nil {
		event.Details = mediastore.EventDetails{Error: mediastore.NotFoundMarker}
		return event
	}

	event.Anchored = record.Anchored()
	if record.Verdict == nil {
		event.ConfidenceScore = 0.5
		return event
	}

	event.IsAuthentic = !record.Verdict.IsDeepfake
	event.ConfidenceScore = record.Verdict.ConfidenceScore
	event.Details = mediastore.EventDetails{Verdict: record.Verdict}
	return event
}
