package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Verdict describes an authenticity assessment in a transport-friendly format.
type Verdict struct {
	IsDeepfake        bool     `json:"isDeepfake"`
	ConfidenceScore   float64  `json:"confidenceScore"`
	DetectedArtifacts []string `json:"detectedArtifacts"`
	RiskLevel         string   `json:"riskLevel"`
	AnalysisSummary   string   `json:"analysisSummary"`
}

// MediaRecord describes an ingested file in a transport-friendly format.
type MediaRecord struct {
	ID              string   `json:"id"`
	Fingerprint     string   `json:"fingerprint"`
	Filename        string   `json:"filename"`
	FileSize        int64    `json:"fileSize"`
	MediaKind       string   `json:"mediaKind"`
	Status          string   `json:"status"`
	AnchorReference string   `json:"anchorReference,omitempty"`
	Verdict         *Verdict `json:"verdict,omitempty"`
	IngestedAt      string   `json:"ingestedAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

// EventDetails carries the analysis context captured by a verification event.
type EventDetails struct {
	Verdict *Verdict `json:"verdict,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// VerificationEvent describes one verification query result.
type VerificationEvent struct {
	EventID         string       `json:"eventId"`
	Fingerprint     string       `json:"fingerprint"`
	CheckedAt       string       `json:"checkedAt,omitempty"`
	IsAuthentic     bool         `json:"isAuthentic"`
	ConfidenceScore float64      `json:"confidenceScore"`
	Details         EventDetails `json:"details"`
	Anchored        bool         `json:"anchored"`
}

// StatusCheck describes a client liveness record.
type StatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// MediaListResponse wraps the media list endpoint payload.
type MediaListResponse struct {
	Records []MediaRecord `json:"records"`
}

// VerificationListResponse wraps the verification list endpoint payload.
type VerificationListResponse struct {
	Events []VerificationEvent `json:"events"`
}

// StatusCheckListResponse wraps the status check list endpoint payload.
type StatusCheckListResponse struct {
	Checks []StatusCheck `json:"checks"`
}

// DiskUsage reports storage headroom for the data directory.
type DiskUsage struct {
	TotalBytes uint64 `json:"totalBytes"`
	FreeBytes  uint64 `json:"freeBytes"`
}

// DaemonStatus aggregates runtime information for the status endpoint.
type DaemonStatus struct {
	Running      bool           `json:"running"`
	PID          int            `json:"pid"`
	DatabasePath string         `json:"databasePath"`
	LockFilePath string         `json:"lockFilePath"`
	RecordCounts map[string]int `json:"recordCounts"`
	Disk         *DiskUsage     `json:"disk,omitempty"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
