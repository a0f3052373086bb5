package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guardian/internal/config"
	"guardian/internal/notifications"
)

type captured struct {
	title    string
	tags     string
	priority string
	body     string
}

func newCaptureServer(t *testing.T, sink *[]captured) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*sink = append(*sink, captured{
			title:    r.Header.Get("Title"),
			tags:     r.Header.Get("Tags"),
			priority: r.Header.Get("Priority"),
			body:     string(body),
		})
	}))
}

func ntfyConfig(topic string) *config.Config {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = topic
	return &cfg
}

func TestNotifyIngestCompleted(t *testing.T) {
	var received []captured
	server := newCaptureServer(t, &received)
	defer server.Close()

	svc := notifications.NewService(ntfyConfig(server.URL))
	err := svc.NotifyIngestCompleted(context.Background(), "clip.mp4",
		strings.Repeat("a", 64), "verified")
	if err != nil {
		t.Fatalf("NotifyIngestCompleted failed: %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(received))
	}
	got := received[0]
	if got.title != "Guardian - Ingested" {
		t.Fatalf("title = %q", got.title)
	}
	if !strings.Contains(got.body, "clip.mp4") || !strings.Contains(got.body, "verified") {
		t.Fatalf("body = %q", got.body)
	}
	if !strings.Contains(got.body, strings.Repeat("a", 12)) || strings.Contains(got.body, strings.Repeat("a", 13)) {
		t.Fatalf("expected truncated fingerprint in body %q", got.body)
	}
}

func TestNotifyAnalysisFailedSetsPriority(t *testing.T) {
	var received []captured
	server := newCaptureServer(t, &received)
	defer server.Close()

	svc := notifications.NewService(ntfyConfig(server.URL))
	if err := svc.NotifyAnalysisFailed(context.Background(), "fake.png", "model timeout"); err != nil {
		t.Fatalf("NotifyAnalysisFailed failed: %v", err)
	}

	if len(received) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(received))
	}
	if received[0].priority != "high" {
		t.Fatalf("priority = %q", received[0].priority)
	}
	if !strings.Contains(received[0].body, "model timeout") {
		t.Fatalf("body = %q", received[0].body)
	}
}

func TestNotifyIngestRespectsToggle(t *testing.T) {
	var received []captured
	server := newCaptureServer(t, &received)
	defer server.Close()

	cfg := ntfyConfig(server.URL)
	cfg.Notifications.Ingest = false
	svc := notifications.NewService(cfg)
	if err := svc.NotifyIngestCompleted(context.Background(), "quiet.jpg", "fp", "verified"); err != nil {
		t.Fatalf("NotifyIngestCompleted failed: %v", err)
	}
	if len(received) != 0 {
		t.Fatalf("expected no notifications, got %d", len(received))
	}
}

func TestNotifyErrorSkipsNil(t *testing.T) {
	var received []captured
	server := newCaptureServer(t, &received)
	defer server.Close()

	svc := notifications.NewService(ntfyConfig(server.URL))
	if err := svc.NotifyError(context.Background(), nil, "ingest"); err != nil {
		t.Fatalf("NotifyError failed: %v", err)
	}
	if len(received) != 0 {
		t.Fatal("nil error should not notify")
	}
	if err := svc.NotifyError(context.Background(), errors.New("boom"), "ingest"); err != nil {
		t.Fatalf("NotifyError failed: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(received))
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic rejected", http.StatusForbidden)
	}))
	defer server.Close()

	svc := notifications.NewService(ntfyConfig(server.URL))
	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error from rejecting server")
	}
}

func TestEmptyTopicIsNoop(t *testing.T) {
	svc := notifications.NewService(ntfyConfig(""))
	if err := svc.TestNotification(context.Background()); err != nil {
		t.Fatalf("noop TestNotification errored: %v", err)
	}
	if err := svc.NotifyIngestCompleted(context.Background(), "f", "fp", "verified"); err != nil {
		t.Fatalf("noop NotifyIngestCompleted errored: %v", err)
	}
}
