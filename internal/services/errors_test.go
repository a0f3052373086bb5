package services_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"guardian/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("disk full")
	err := services.Wrap(services.ErrUnavailable, "mediastore", "insert", "write failed", cause)

	if !errors.Is(err, services.ErrUnavailable) {
		t.Fatal("expected marker to survive wrapping")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to survive wrapping")
	}
	for _, fragment := range []string{"mediastore", "insert", "write failed", "disk full"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q missing %q", err.Error(), fragment)
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "ingest", "validate", "empty file", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatal("expected validation marker")
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := services.Wrap(nil, "worker", "run", "", errors.New("boom"))
	if !errors.Is(err, services.ErrTransient) {
		t.Fatal("expected transient marker default")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{services.Wrap(services.ErrValidation, "a", "b", "", nil), http.StatusBadRequest},
		{services.Wrap(services.ErrNotFound, "a", "b", "", nil), http.StatusNotFound},
		{services.Wrap(services.ErrUnavailable, "a", "b", "", nil), http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := services.HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
