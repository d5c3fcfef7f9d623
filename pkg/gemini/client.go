package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config configures a Client.
type Config struct {
	APIKey      string
	Model       string
	APIURL      string
	Timeout     time.Duration
	Temperature float64
	HTTPClient  *http.Client
}

// Client is the Gemini Generative Language API client.
// It performs exactly one HTTP round trip per call and never retries.
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewClient creates a new Gemini API client. Zero-valued fields take their defaults.
// An empty API key is accepted; calls then fail with ErrMissingAPIKey.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		apiKey:      cfg.APIKey,
		apiURL:      cfg.APIURL,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		httpClient:  httpClient,
	}
}

// SetAPIURL overrides the API base URL.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a content generation request to the Gemini API.
func (c *Client) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.apiURL, c.model)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, newError(KindMalformedRequest, 0, fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, newError(KindMalformedRequest, 0, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", mimeTypeJSON)
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(fmt.Errorf("failed to call gemini API: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		kind := classifyStatus(resp.StatusCode, raw)
		return nil, newError(kind, resp.StatusCode, fmt.Errorf("gemini API error: %s", string(raw)))
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, newError(KindTimeout, resp.StatusCode, err)
		}
		return nil, newError(KindModel, resp.StatusCode, fmt.Errorf("failed to decode gemini response: %w", err))
	}

	return &result, nil
}

// GenerateJSON runs a schema-constrained generation for prompt and decodes the result into out.
// The decoded value is only guaranteed to match the schema's shape.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, schema *Schema, out any) error {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		Contents: []Content{
			{
				Role:  roleUser,
				Parts: []Part{{Text: prompt}},
			},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      c.temperature,
			ResponseMimeType: mimeTypeJSON,
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return err
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return newError(KindModel, 0, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
	}

	text := resp.Text()
	if text == "" {
		return newError(KindModel, 0, errors.New("empty response from model"))
	}

	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), out); err != nil {
		return newError(KindModel, 0, fmt.Errorf("failed to decode structured output: %w", err))
	}
	return nil
}
