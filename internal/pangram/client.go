// Package pangram is the HTTP client for the external AI text detection API.
package pangram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultAPIURL = "https://text.api.pangramlabs.com"

// Client calls the detection API.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient constructs a Client. The API key is mandatory.
func NewClient(apiKey, apiURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("PANGRAM_API_KEY is required")
	}
	if strings.TrimSpace(apiURL) == "" {
		apiURL = defaultAPIURL
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("PANGRAM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		apiURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type detectRequest struct {
	Text string `json:"text"`
	// RequestID correlates the stored request_json with server-side logs.
	RequestID string `json:"request_id"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Detection bundles the parsed response with the exact bytes sent and
// received, which are persisted verbatim for replay and audit.
type Detection struct {
	Response    DetectionResponse
	RawRequest  json.RawMessage
	RawResponse json.RawMessage
}

// Detect submits text for classification.
func (c *Client) Detect(ctx context.Context, text string) (Detection, error) {
	payload, err := json.Marshal(detectRequest{
		Text:      text,
		RequestID: uuid.NewString(),
	})
	if err != nil {
		return Detection{}, fmt.Errorf("marshal detect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return Detection{}, fmt.Errorf("build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Detection{}, fmt.Errorf("call detection API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Detection{}, fmt.Errorf("read detection response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e apiError
		if err := json.Unmarshal(body, &e); err == nil {
			msg := e.Error
			if msg == "" {
				msg = e.Message
			}
			if msg != "" {
				return Detection{}, fmt.Errorf("detection API status %d: %s", resp.StatusCode, msg)
			}
		}
		return Detection{}, fmt.Errorf("detection API status %d", resp.StatusCode)
	}

	parsed, err := ParseResponse(body)
	if err != nil {
		return Detection{}, err
	}

	return Detection{
		Response:    parsed,
		RawRequest:  json.RawMessage(payload),
		RawResponse: json.RawMessage(body),
	}, nil
}
