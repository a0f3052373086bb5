package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"guardian/internal/config"
	"guardian/internal/fingerprint"
	"guardian/internal/mediastore"
)

// MustOpenStore opens a mediastore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *mediastore.Store {
	t.Helper()

	store, err := mediastore.Open(cfg)
	if err != nil {
		t.Fatalf("mediastore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewRecord inserts a pending media record for tests and returns it.
func NewRecord(t testing.TB, store *mediastore.Store, filename string, content []byte) *mediastore.MediaRecord {
	t.Helper()

	record := &mediastore.MediaRecord{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint.Sum(content),
		Filename:    filename,
		FileSize:    int64(len(content)),
		MediaKind:   "image/jpeg",
		Status:      mediastore.StatusPending,
		IngestedAt:  time.Now().UTC(),
	}
	created, ok, err := store.TryCreate(context.Background(), record)
	if err != nil {
		t.Fatalf("store.TryCreate: %v", err)
	}
	if !ok {
		t.Fatalf("record for %s already exists", filename)
	}
	return created
}
