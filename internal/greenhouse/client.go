package greenhouse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// DefaultBoardsBaseURL serves the public read API (offices, job detail).
	DefaultBoardsBaseURL = "https://boards-api.greenhouse.io"
	// DefaultHarvestBaseURL serves the authenticated write API (applications).
	DefaultHarvestBaseURL = "https://harvest.greenhouse.io"
)

// APIError is any non-2xx answer from Greenhouse, carrying the upstream
// status and body so callers can decide how to treat it (404 = job not
// found, 401 = bad token/key, anything else = generic upstream failure).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("greenhouse: upstream status %d: %s", e.StatusCode, body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// StatusOf returns the upstream status code carried by err, or 0 when err
// is not an upstream API error.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client talks to the Greenhouse Job Board and Harvest APIs. The injected
// http.Client carries the bounded per-request timeout. There are no
// automatic retries; callers re-invoke (e.g. via refresh=true) to retry.
type Client struct {
	boardsBaseURL  string
	harvestBaseURL string
	httpClient     *http.Client
}

// NewClient builds a client against the given base URLs. Empty URLs fall
// back to the public Greenhouse endpoints; a nil http.Client falls back to
// http.DefaultClient.
func NewClient(boardsBaseURL, harvestBaseURL string, httpClient *http.Client) *Client {
	if boardsBaseURL == "" {
		boardsBaseURL = DefaultBoardsBaseURL
	}
	if harvestBaseURL == "" {
		harvestBaseURL = DefaultHarvestBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		boardsBaseURL:  strings.TrimRight(boardsBaseURL, "/"),
		harvestBaseURL: strings.TrimRight(harvestBaseURL, "/"),
		httpClient:     httpClient,
	}
}

// ListOffices fetches the full office → department → job tree for a board.
func (c *Client) ListOffices(ctx context.Context, token string) ([]Office, error) {
	url := fmt.Sprintf("%s/v1/boards/%s/offices", c.boardsBaseURL, token)
	var parsed officesResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	return parsed.Offices, nil
}

// GetJobDetail fetches one job including free-text content and screening
// questions, which the offices tree does not carry.
func (c *Client) GetJobDetail(ctx context.Context, token string, jobID int64) (*JobDetail, error) {
	url := fmt.Sprintf("%s/v1/boards/%s/jobs/%d?questions=true", c.boardsBaseURL, token, jobID)
	var parsed JobDetail
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, fmt.Errorf("job detail %d: %w", jobID, err)
	}
	return &parsed, nil
}

// SubmitApplication forwards an application to the Harvest write API using
// HTTP Basic auth built from the API key (key as username, empty password).
// Non-2xx answers come back as *APIError so the caller can proxy the
// upstream status and body.
func (c *Client) SubmitApplication(ctx context.Context, apiKey string, jobID int64, fields map[string]any) (*ApplicationResult, error) {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["job_id"] = jobID

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode application: %w", err)
	}

	url := c.harvestBaseURL + "/v1/applications"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create application request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send application: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read application response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return &ApplicationResult{StatusCode: resp.StatusCode, Body: respBody}, nil
}

// getJSON performs a GET against the read API and decodes the 2xx body
// into out. Non-2xx answers become *APIError.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
