package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guardian/internal/analyzer"
	"guardian/internal/anchor"
	"guardian/internal/config"
	"guardian/internal/fingerprint"
	"guardian/internal/logging"
	"guardian/internal/mediastore"
	"guardian/internal/notifications"
	"guardian/internal/services"
)

// Request is one ingestion submission.
type Request struct {
	Content   []byte
	Filename  string
	MediaKind string
}

// Service coordinates fingerprinting, dedup, analysis, anchoring, and record
// persistence as one pipeline.
type Service struct {
	store    *mediastore.Store
	analyzer analyzer.Analyzer
	anchor   anchor.Anchor
	notifier notifications.Service
	logger   *slog.Logger

	failClosed     bool
	analyzeTimeout time.Duration
	anchorTimeout  time.Duration
}

// NewService constructs the ingestion pipeline from its capabilities.
func NewService(
	cfg *config.Config,
	store *mediastore.Store,
	az analyzer.Analyzer,
	an anchor.Anchor,
	notifier notifications.Service,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	if notifier == nil {
		notifier = notifications.NewService(&config.Config{})
	}
	analyzeTimeout := time.Duration(cfg.Analyzer.TimeoutSeconds) * time.Second
	if analyzeTimeout <= 0 {
		analyzeTimeout = 60 * time.Second
	}
	anchorTimeout := time.Duration(cfg.Anchor.TimeoutSeconds) * time.Second
	if anchorTimeout <= 0 {
		anchorTimeout = 15 * time.Second
	}
	return &Service{
		store:          store,
		analyzer:       az,
		anchor:         an,
		notifier:       notifier,
		logger:         logger.With(slog.String(logging.FieldComponent, "ingest")),
		failClosed:     cfg.Analyzer.FailClosed,
		analyzeTimeout: analyzeTimeout,
		anchorTimeout:  anchorTimeout,
	}
}

// Ingest runs the pipeline for one submission. Repeated or concurrent
// submissions of identical content converge on a single media record; the
// analyzer and the ledger are invoked at most once per unique fingerprint.
// A failed analysis degrades the record instead of failing the request.
func (s *Service) Ingest(ctx context.Context, req Request) (*mediastore.MediaRecord, error) {
	if !SupportedMediaKind(req.MediaKind) {
		return nil, services.Wrap(services.ErrValidation, "ingest", "validate",
			fmt.Sprintf("unsupported media kind %q", req.MediaKind), nil)
	}
	if len(req.Content) == 0 {
		return nil, services.Wrap(services.ErrValidation, "ingest", "validate", "empty file", nil)
	}

	fp := fingerprint.Sum(req.Content)
	ctx = services.WithFingerprint(ctx, fp)
	log := logging.WithContext(ctx, s.logger)

	pending := &mediastore.MediaRecord{
		ID:          uuid.NewString(),
		Fingerprint: fp,
		Filename:    req.Filename,
		FileSize:    int64(len(req.Content)),
		MediaKind:   NormalizeMediaKind(req.MediaKind),
		Status:      mediastore.StatusPending,
		IngestedAt:  time.Now().UTC(),
	}

	record, created, err := s.store.TryCreate(ctx, pending)
	if err != nil {
		return nil, services.Wrap(services.ErrUnavailable, "ingest", "create record", "", err)
	}
	if !created {
		// Dedup fast path, and the resolution path for lost creation races.
		// The record may still be pending while the winning creator finishes;
		// callers needing the completed result re-query.
		log.Debug("duplicate submission", slog.String("status", string(record.Status)))
		return record, nil
	}

	// This call owns pipeline completion for the fingerprint.
	verdict, status := s.runAnalysis(ctx, log, req, fp)
	if err := s.store.FillAnalysis(ctx, fp, verdict, status); err != nil {
		return nil, services.Wrap(services.ErrUnavailable, "ingest", "persist analysis", "", err)
	}

	if reference := s.runAnchor(ctx, log, fp); reference != "" {
		if err := s.store.FillAnchor(ctx, fp, reference); err != nil {
			return nil, services.Wrap(services.ErrUnavailable, "ingest", "persist anchor", "", err)
		}
	}

	final, err := s.store.GetByFingerprint(ctx, fp)
	if err != nil {
		return nil, services.Wrap(services.ErrUnavailable, "ingest", "reload record", "", err)
	}
	if final == nil {
		return nil, services.Wrap(services.ErrUnavailable, "ingest", "reload record", "record missing after fill", nil)
	}

	if err := s.notifier.NotifyIngestCompleted(ctx, final.Filename, final.Fingerprint, string(final.Status)); err != nil {
		log.Warn("ingest notification failed", slog.String("error", err.Error()))
	}
	log.Info("ingestion complete",
		slog.String("status", string(final.Status)),
		slog.Bool("anchored", final.Anchored()),
	)
	return final, nil
}

func (s *Service) runAnalysis(ctx context.Context, log *slog.Logger, req Request, fp string) (*mediastore.Verdict, mediastore.Status) {
	analyzeCtx, cancel := context.WithTimeout(ctx, s.analyzeTimeout)
	defer cancel()

	verdict, err := s.analyzer.Analyze(analyzeCtx, analyzer.Request{
		Filename:    req.Filename,
		MediaKind:   NormalizeMediaKind(req.MediaKind),
		FileSize:    int64(len(req.Content)),
		Fingerprint: fp,
	})
	if err == nil && verdict != nil {
		return verdict, mediastore.StatusVerified
	}

	if err == nil {
		err = errors.New("analyzer returned no verdict")
	}
	log.Warn("analysis failed, recording fallback verdict", slog.String("error", err.Error()))
	if notifyErr := s.notifier.NotifyAnalysisFailed(ctx, req.Filename, err.Error()); notifyErr != nil {
		log.Warn("analysis-failure notification failed", slog.String("error", notifyErr.Error()))
	}
	reason := fmt.Sprintf("analysis failed: %v", err)
	return analyzer.FallbackVerdict(reason, s.failClosed), mediastore.StatusAnalysisFailed
}

func (s *Service) runAnchor(ctx context.Context, log *slog.Logger, fp string) string {
	anchorCtx, cancel := context.WithTimeout(ctx, s.anchorTimeout)
	defer cancel()

	reference, err := s.anchor.AnchorFingerprint(anchorCtx, fp)
	if err != nil {
		// Not fatal; the record simply stays unanchored.
		log.Warn("anchoring failed", slog.String("error", err.Error()))
		return ""
	}
	return reference
}
