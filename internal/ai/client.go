package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// Config holds OpenAI configuration parameters.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	// Structured requests schema-constrained output so the model reply is
	// already shaped like a verdict. Free-text parsing stays available for
	// backends that ignore response_format.
	Structured bool
}

// Client implements the Judge interface against the OpenAI API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	structured  bool
}

// NewClient constructs a Client if the supplied configuration is valid.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = "gpt-4.1"
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = 0.2
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 150
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient:  &http.Client{},
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		temperature: temp,
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
		structured:  cfg.Structured,
	}, nil
}

// Enabled reports whether the client can make outbound calls.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Review asks the backend for an approval verdict on one product. The call
// is bounded by the configured timeout; exactly one request is issued and
// never retried.
func (c *Client) Review(ctx context.Context, productName, salesPage string) (Verdict, error) {
	if c == nil || !c.Enabled() {
		return Verdict{}, ErrDisabled
	}

	body, err := json.Marshal(c.buildPayload(productName, salesPage))
	if err != nil {
		return Verdict{}, newError(KindGeneric, "marshal request", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Verdict{}, newError(KindGeneric, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return Verdict{}, newError(KindTimeout, "openai request", err)
		}
		return Verdict{}, newError(KindUnavailable, "openai request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil && isTimeout(ctx, err) {
			return Verdict{}, newError(KindTimeout, "read response", err)
		}
		return Verdict{}, newError(KindUnavailable, "openai request", fmt.Errorf("status %d: %v", resp.StatusCode, apiErr))
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		// The deadline also bounds body reads: a stall after the headers
		// arrive is still a timeout, not a decode problem.
		if isTimeout(ctx, err) {
			return Verdict{}, newError(KindTimeout, "read response", err)
		}
		return Verdict{}, newError(KindGeneric, "decode response", err)
	}
	if len(decoded.Choices) == 0 {
		return Verdict{}, newError(KindGeneric, "decode response", errors.New("empty choices"))
	}

	return ParseContent(decoded.Choices[0].Message.Content)
}

func (c *Client) buildPayload(productName, salesPage string) map[string]any {
	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": BuildPrompt(productName, salesPage)},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}
	if c.structured {
		payload["response_format"] = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "review_decision",
				"strict": true,
				"schema": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"decision": map[string]any{
							"type": "string",
							"enum": []string{"approve", "reject"},
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required":             []string{"decision", "explanation"},
					"additionalProperties": false,
				},
			},
		}
	}
	return payload
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
