package mediastore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const recordColumns = `id, fingerprint, filename, file_size, media_kind, status,
    anchor_reference, verdict_json, ingested_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*MediaRecord, error) {
	var (
		record      MediaRecord
		anchorRef   sql.NullString
		verdictJSON sql.NullString
		ingestedAt  string
		updatedAt   string
	)
	err := row.Scan(
		&record.ID,
		&record.Fingerprint,
		&record.Filename,
		&record.FileSize,
		&record.MediaKind,
		&record.Status,
		&anchorRef,
		&verdictJSON,
		&ingestedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.AnchorReference = anchorRef.String
	record.IngestedAt = parseTimestamp(ingestedAt)
	record.UpdatedAt = parseTimestamp(updatedAt)

	if verdictJSON.Valid && verdictJSON.String != "" {
		var verdict Verdict
		if err := json.Unmarshal([]byte(verdictJSON.String), &verdict); err != nil {
			return nil, fmt.Errorf("unmarshal verdict: %w", err)
		}
		record.Verdict = &verdict
	}
	return &record, nil
}

func scanEvent(row rowScanner) (*VerificationEvent, error) {
	var (
		event       VerificationEvent
		checkedAt   string
		isAuthentic int
		anchored    int
		detailsJSON string
	)
	err := row.Scan(
		&event.EventID,
		&event.Fingerprint,
		&checkedAt,
		&isAuthentic,
		&event.ConfidenceScore,
		&detailsJSON,
		&anchored,
	)
	if err != nil {
		return nil, fmt.Errorf("scan verification event: %w", err)
	}

	event.CheckedAt = parseTimestamp(checkedAt)
	event.IsAuthentic = isAuthentic != 0
	event.Anchored = anchored != 0
	if detailsJSON != "" {
		if err := json.Unmarshal([]byte(detailsJSON), &event.Details); err != nil {
			return nil, fmt.Errorf("unmarshal event details: %w", err)
		}
	}
	return &event, nil
}

func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts.UTC()
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC()
	}
	return time.Time{}
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
