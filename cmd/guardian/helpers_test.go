package main

import (
	"strings"
	"testing"
)

func TestFormatStatusLabel(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"verified", "Verified"},
		{"analysis_failed", "Analysis Failed"},
		{"pending", "Pending"},
		{"", "-"},
	}
	for _, tc := range cases {
		if got := formatStatusLabel(tc.input); got != tc.want {
			t.Errorf("formatStatusLabel(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Fatalf("truncate short = %q", got)
	}
	long := strings.Repeat("x", 50)
	got := truncate(long, 10)
	if len(got) != 10 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate long = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tc := range cases {
		if got := formatBytes(tc.input); got != tc.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestShortFingerprint(t *testing.T) {
	fp := strings.Repeat("ab", 32)
	if got := shortFingerprint(fp); got != fp[:16] {
		t.Fatalf("shortFingerprint = %q", got)
	}
	if got := shortFingerprint("tiny"); got != "tiny" {
		t.Fatalf("shortFingerprint(tiny) = %q", got)
	}
}

func TestRenderTablePadsRows(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"1"}},
		nil,
	)
	if out == "" {
		t.Fatal("expected rendered table")
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "1") {
		t.Fatalf("table output missing cells: %q", out)
	}
}

func TestRenderTableClipsWideCells(t *testing.T) {
	wide := strings.Repeat("x", tableColumnMaxWidth+20)
	out := renderTable(
		[]string{"Note"},
		[][]string{{wide}},
		nil,
	)
	if strings.Contains(out, wide) {
		t.Fatalf("cell was not clipped: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("x", tableColumnMaxWidth)) {
		t.Fatalf("clipped cell missing: %q", out)
	}
}

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Daemon", statusOK, "pid 42", false)
	if !strings.Contains(line, "Daemon:") || !strings.Contains(line, "[OK] pid 42") {
		t.Fatalf("line = %q", line)
	}
	colored := renderStatusLine("Daemon", statusError, "", true)
	if !strings.Contains(colored, ansiRed) {
		t.Fatalf("expected color codes in %q", colored)
	}
}
