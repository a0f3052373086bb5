package analyzer_test

import (
	"strings"
	"testing"

	"guardian/internal/analyzer"
)

type decodeTarget struct {
	Value string `json:"value"`
}

func TestDecodeModelJSONDirect(t *testing.T) {
	var target decodeTarget
	if err := analyzer.DecodeModelJSON(`{"value": "direct"}`, &target); err != nil {
		t.Fatalf("DecodeModelJSON failed: %v", err)
	}
	if target.Value != "direct" {
		t.Fatalf("value = %q", target.Value)
	}
}

func TestDecodeModelJSONFenced(t *testing.T) {
	var target decodeTarget
	payload := "```json\n{\"value\": \"fenced\"}\n```"
	if err := analyzer.DecodeModelJSON(payload, &target); err != nil {
		t.Fatalf("DecodeModelJSON failed: %v", err)
	}
	if target.Value != "fenced" {
		t.Fatalf("value = %q", target.Value)
	}
}

func TestDecodeModelJSONProseWrapped(t *testing.T) {
	var target decodeTarget
	payload := `Here is the analysis you asked for: {"value": "wrapped"} Hope that helps!`
	if err := analyzer.DecodeModelJSON(payload, &target); err != nil {
		t.Fatalf("DecodeModelJSON failed: %v", err)
	}
	if target.Value != "wrapped" {
		t.Fatalf("value = %q", target.Value)
	}
}

func TestDecodeModelJSONRejectsGarbage(t *testing.T) {
	var target decodeTarget
	if err := analyzer.DecodeModelJSON("not json at all", &target); err == nil {
		t.Fatal("expected decode error")
	}
	if err := analyzer.DecodeModelJSON("", &target); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDecodeModelJSONErrorTruncatesSnippet(t *testing.T) {
	var target decodeTarget
	err := analyzer.DecodeModelJSON(strings.Repeat("x", 2000), &target)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if len(err.Error()) > 600 {
		t.Fatalf("error message too long: %d chars", len(err.Error()))
	}
}
