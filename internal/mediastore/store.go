package mediastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"guardian/internal/config"
)

// Store manages media record and verification event persistence backed by
// SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the database and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// TryCreate atomically inserts a media record if no record exists for its
// fingerprint. It returns the record now present in the store and whether
// this call created it. The insert relies on the fingerprint primary key, so
// concurrent callers across processes observe exactly one winner.
func (s *Store) TryCreate(ctx context.Context, record *MediaRecord) (*MediaRecord, bool, error) {
	if record == nil {
		return nil, false, errors.New("record is nil")
	}
	if record.Fingerprint == "" {
		return nil, false, errors.New("fingerprint is required")
	}

	now := time.Now().UTC()
	ingestedAt := record.IngestedAt
	if ingestedAt.IsZero() {
		ingestedAt = now
	}
	status := record.Status
	if status == "" {
		status = StatusPending
	}

	verdictJSON, err := marshalVerdict(record.Verdict)
	if err != nil {
		return nil, false, err
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO media_records (
            id, fingerprint, filename, file_size, media_kind, status,
            anchor_reference, verdict_json, ingested_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(fingerprint) DO NOTHING`,
		record.ID,
		record.Fingerprint,
		record.Filename,
		record.FileSize,
		record.MediaKind,
		status,
		nullableString(record.AnchorReference),
		verdictJSON,
		ingestedAt.Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert media record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("rows affected: %w", err)
	}

	stored, err := s.GetByFingerprint(ctx, record.Fingerprint)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, fmt.Errorf("media record vanished after insert: %s", record.Fingerprint)
	}
	return stored, affected > 0, nil
}

// GetByFingerprint fetches a media record by its fingerprint. A missing
// record returns nil without error.
func (s *Store) GetByFingerprint(ctx context.Context, fp string) (*MediaRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM media_records WHERE fingerprint = ?`, fp)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get media record: %w", err)
	}
	return record, nil
}

// FillAnalysis records the analyzer outcome for a fingerprint. The fill is
// monotonic: a record whose verdict is already set is left untouched, so
// retries and duplicate pipeline completions are idempotent no-ops.
func (s *Store) FillAnalysis(ctx context.Context, fp string, verdict *Verdict, status Status) error {
	if verdict == nil {
		return errors.New("verdict is nil")
	}
	verdictJSON, err := marshalVerdict(verdict)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(
		ctx,
		`UPDATE media_records
         SET verdict_json = ?, status = ?, updated_at = ?
         WHERE fingerprint = ? AND verdict_json IS NULL`,
		verdictJSON,
		status,
		time.Now().UTC().Format(time.RFC3339Nano),
		fp,
	)
	if err != nil {
		return fmt.Errorf("fill analysis: %w", err)
	}
	return nil
}

// FillAnchor records the ledger reference for a fingerprint. Monotonic like
// FillAnalysis: an existing reference is never overwritten.
func (s *Store) FillAnchor(ctx context.Context, fp, reference string) error {
	if reference == "" {
		return errors.New("anchor reference is empty")
	}
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE media_records
         SET anchor_reference = ?, updated_at = ?
         WHERE fingerprint = ? AND anchor_reference IS NULL`,
		reference,
		time.Now().UTC().Format(time.RFC3339Nano),
		fp,
	)
	if err != nil {
		return fmt.Errorf("fill anchor: %w", err)
	}
	return nil
}

// ListRecent returns up to limit media records, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*MediaRecord, error) {
	if limit <= 0 || limit > MaxMediaPageSize {
		limit = MaxMediaPageSize
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+recordColumns+` FROM media_records ORDER BY ingested_at DESC, fingerprint LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list media records: %w", err)
	}
	defer rows.Close()

	var records []*MediaRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Stats returns a count of media records grouped by status.
func (s *Store) Stats(ctx context.Context) (map[Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM media_records GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("media record stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

func marshalVerdict(verdict *Verdict) (any, error) {
	if verdict == nil {
		return nil, nil
	}
	data, err := json.Marshal(verdict)
	if err != nil {
		return nil, fmt.Errorf("marshal verdict: %w", err)
	}
	return string(data), nil
}
