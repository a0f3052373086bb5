package mediastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Page size caps for the list endpoints.
const (
	MaxMediaPageSize        = 100
	MaxVerificationPageSize = 1000
	MaxStatusCheckPageSize  = 1000
)

// AppendVerification appends an event to the verification log. The log is
// append-only; events are never rewritten even when the underlying media
// record later changes.
func (s *Store) AppendVerification(ctx context.Context, event *VerificationEvent) error {
	if event == nil {
		return errors.New("event is nil")
	}
	if event.EventID == "" {
		return errors.New("event id is required")
	}

	detailsJSON, err := json.Marshal(event.Details)
	if err != nil {
		return fmt.Errorf("marshal event details: %w", err)
	}
	checkedAt := event.CheckedAt
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO verification_events (
            event_id, fingerprint, checked_at, is_authentic,
            confidence_score, details_json, anchored
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.EventID,
		event.Fingerprint,
		checkedAt.Format(time.RFC3339Nano),
		boolToInt(event.IsAuthentic),
		event.ConfidenceScore,
		string(detailsJSON),
		boolToInt(event.Anchored),
	)
	if err != nil {
		return fmt.Errorf("append verification event: %w", err)
	}
	return nil
}

// ListVerifications returns up to limit verification events, most recent
// first. Each call re-reads current state; it is not a live stream.
func (s *Store) ListVerifications(ctx context.Context, limit int) ([]*VerificationEvent, error) {
	if limit <= 0 || limit > MaxVerificationPageSize {
		limit = MaxVerificationPageSize
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT event_id, fingerprint, checked_at, is_authentic, confidence_score, details_json, anchored
         FROM verification_events ORDER BY seq DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list verification events: %w", err)
	}
	defer rows.Close()

	var events []*VerificationEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// CreateStatusCheck records a client liveness ping.
func (s *Store) CreateStatusCheck(ctx context.Context, check *StatusCheck) error {
	if check == nil {
		return errors.New("status check is nil")
	}
	timestamp := check.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES (?, ?, ?)`,
		check.ID,
		check.ClientName,
		timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns up to limit status checks, oldest first.
func (s *Store) ListStatusChecks(ctx context.Context, limit int) ([]*StatusCheck, error) {
	if limit <= 0 || limit > MaxStatusCheckPageSize {
		limit = MaxStatusCheckPageSize
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, client_name, created_at FROM status_checks ORDER BY created_at LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	var checks []*StatusCheck
	for rows.Next() {
		var check StatusCheck
		var createdAt string
		if err := rows.Scan(&check.ID, &check.ClientName, &createdAt); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		check.Timestamp = parseTimestamp(createdAt)
		checks = append(checks, &check)
	}
	return checks, rows.Err()
}
