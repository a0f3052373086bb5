package ingest

import "strings"

// allowedMediaKinds is the allow-list of declared media kinds accepted at the
// ingestion boundary.
var allowedMediaKinds = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"video/mp4":  {},
	"video/avi":  {},
	"video/mov":  {},
	"video/webm": {},
	"audio/mp3":  {},
	"audio/wav":  {},
	"audio/ogg":  {},
	"audio/m4a":  {},
}

// NormalizeMediaKind lowercases a declared media kind and strips any
// parameters (e.g. "; charset=...").
func NormalizeMediaKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if idx := strings.Index(kind, ";"); idx >= 0 {
		kind = strings.TrimSpace(kind[:idx])
	}
	return kind
}

// SupportedMediaKind reports whether the declared kind is on the allow-list.
func SupportedMediaKind(kind string) bool {
	_, ok := allowedMediaKinds[NormalizeMediaKind(kind)]
	return ok
}

// SupportedMediaKinds returns the allow-list for presentation.
func SupportedMediaKinds() []string {
	kinds := make([]string, 0, len(allowedMediaKinds))
	for kind := range allowedMediaKinds {
		kinds = append(kinds, kind)
	}
	return kinds
}
