package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"guardian/internal/api"
)

// apiClient talks to the guardian daemon's HTTP API.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(address, token string) *apiClient {
	base := address
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &apiClient{
		baseURL: strings.TrimRight(base, "/"),
		token:   token,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

func (c *apiClient) Upload(path, mediaKind string) (*api.MediaRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	if mediaKind != "" {
		header.Set("Content-Type", mediaKind)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("prepare upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize upload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var record api.MediaRecord
	if err := c.do(req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *apiClient) Verify(fp string) (*api.VerificationEvent, error) {
	var event api.VerificationEvent
	if err := c.postJSON("/api/verify/"+url.PathEscape(fp), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *apiClient) Media(limit int) ([]api.MediaRecord, error) {
	var resp api.MediaListResponse
	if err := c.getJSON("/api/media"+limitQuery(limit), &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

func (c *apiClient) Verifications(limit int) ([]api.VerificationEvent, error) {
	var resp api.VerificationListResponse
	if err := c.getJSON("/api/verifications"+limitQuery(limit), &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *apiClient) DaemonStatus() (*api.DaemonStatus, error) {
	var status api.DaemonStatus
	if err := c.getJSON("/api/daemon", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *apiClient) CreateStatusCheck(clientName string) (*api.StatusCheck, error) {
	payload := map[string]string{"clientName": clientName}
	var check api.StatusCheck
	if err := c.postJSON("/api/status", payload, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

func (c *apiClient) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *apiClient) postJSON(path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *apiClient) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return wrapDialError(err, c.baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr api.ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if jsonErr := json.Unmarshal(data, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return errors.New("daemon returned " + strconv.Itoa(resp.StatusCode))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func limitQuery(limit int) string {
	if limit <= 0 {
		return ""
	}
	return "?limit=" + strconv.Itoa(limit)
}

func wrapDialError(err error, address string) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("connect to daemon: %s refused the connection; start the daemon with `guardiand`", address)
	}
	return fmt.Errorf("connect to daemon: %w", err)
}
