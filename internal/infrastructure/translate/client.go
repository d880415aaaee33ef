package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labelscan/backend/internal/domain"
)

// Client handles communication with a LibreTranslate-compatible endpoint
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// translateRequest is the /translate request body
type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// translateResponse is the /translate response body
type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// NewClient creates a new translation client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Translate translates text into targetLang, auto-detecting the source
// language.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "auto",
		Target: targetLang,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/translate", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslateAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTranslateAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d, body: %s", domain.ErrTranslateAPIFailure, resp.StatusCode, string(body))
	}

	var translated translateResponse
	if err := json.Unmarshal(body, &translated); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrTranslateAPIFailure, err)
	}

	if translated.Error != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrTranslateAPIFailure, translated.Error)
	}

	return translated.TranslatedText, nil
}
