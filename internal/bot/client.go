package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the TeaTally backend on behalf of the bot gateway,
// authenticating with the shared API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a backend client for the bot gateway.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the backend's error envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// RegisterUser creates or refreshes the backend user for a Telegram identity.
func (c *Client) RegisterUser(ctx context.Context, telegramID int64, username, fullName string) error {
	payload := map[string]interface{}{
		"telegram_id": telegramID,
		"username":    username,
		"full_name":   fullName,
	}
	return c.post(ctx, "/api/telegram/register", payload, nil)
}

type issueLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueLink requests a purpose-scoped auth link for a Telegram user and
// returns its URL and expiry.
func (c *Client) IssueLink(ctx context.Context, telegramID int64, purpose string, linkContext map[string]string) (string, time.Time, error) {
	payload := map[string]interface{}{
		"telegram_id": telegramID,
		"purpose":     purpose,
	}
	if len(linkContext) > 0 {
		payload["context"] = linkContext
	}

	var resp issueLinkResponse
	if err := c.post(ctx, "/api/auth/link", payload, &resp); err != nil {
		return "", time.Time{}, err
	}
	return resp.URL, resp.ExpiresAt, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != nil {
			return envelope.Error
		}
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
