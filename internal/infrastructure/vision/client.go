package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/labelscan/backend/internal/domain"
)

// Client handles communication with the Cloud Vision images:annotate API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	debug      bool
}

// annotateRequest is the images:annotate request body
type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"` // base64-encoded image bytes
}

type feature struct {
	Type string `json:"type"`
}

// annotateResponse is the images:annotate response body
type annotateResponse struct {
	Responses []imageResponse `json:"responses"`
}

type imageResponse struct {
	TextAnnotations []textAnnotation `json:"textAnnotations"`
	Error           *apiError        `json:"error"`
}

type textAnnotation struct {
	Description string `json:"description"`
	Locale      string `json:"locale,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient creates a new Vision API client. The httpClient is expected
// to carry authentication (OAuth transport) unless an API key is set.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// DetectText submits the image bytes for TEXT_DETECTION and returns the
// first (full-page) text annotation, or "" when no text is found.
func (c *Client) DetectText(ctx context.Context, image []byte) (string, error) {
	reqBody := annotateRequest{
		Requests: []imageRequest{
			{
				Image:    imageContent{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []feature{{Type: "TEXT_DETECTION"}},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/images:annotate", c.baseURL)
	if c.apiKey != "" {
		reqURL = fmt.Sprintf("%s?key=%s", reqURL, c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
	}

	if c.debug {
		log.Printf("[VISION] Status: %d, Body: %s", resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d, body: %s", domain.ErrVisionAPIFailure, resp.StatusCode, string(body))
	}

	var annotated annotateResponse
	if err := json.Unmarshal(body, &annotated); err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrVisionAPIFailure, err)
	}

	if len(annotated.Responses) == 0 {
		return "", nil
	}

	first := annotated.Responses[0]
	if first.Error != nil {
		return "", fmt.Errorf("%w: %s (code %d)", domain.ErrVisionAPIFailure, first.Error.Message, first.Error.Code)
	}

	if len(first.TextAnnotations) == 0 {
		return "", nil
	}

	// The first annotation is the full-page text; the remainder are
	// per-word boxes.
	return first.TextAnnotations[0].Description, nil
}
