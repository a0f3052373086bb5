package anchor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"guardian/internal/config"
)

const defaultTimeout = 15 * time.Second

// Client anchors fingerprints against a remote ledger gateway.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Anchor = (*Client)(nil)

// ClientOption customizes the client.
type ClientOption func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a ledger client from configuration.
func NewClient(cfg config.Anchor, opts ...ClientOption) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type anchorRequest struct {
	Fingerprint string `json:"fingerprint"`
}

type anchorResponse struct {
	Reference string `json:"reference"`
	Error     string `json:"error"`
}

// AnchorFingerprint posts the fingerprint to the ledger gateway and returns
// the opaque transaction reference.
func (c *Client) AnchorFingerprint(ctx context.Context, fingerprint string) (string, error) {
	if c.endpoint == "" {
		return "", errors.New("anchor: endpoint required")
	}
	encoded, err := json.Marshal(anchorRequest{Fingerprint: fingerprint})
	if err != nil {
		return "", fmt.Errorf("anchor request: encode body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("anchor request: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("anchor request: http error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("anchor request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("anchor request: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed anchorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("anchor request: decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("anchor request: ledger error: %s", parsed.Error)
	}
	if strings.TrimSpace(parsed.Reference) == "" {
		return "", errors.New("anchor request: empty reference")
	}
	return parsed.Reference, nil
}
