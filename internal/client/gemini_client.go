package client

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

	"go.uber.org/zap"

	"idea-copilot-api/internal/metrics"
)

// ErrGeminiNotConfigured is returned when no API key is set
var ErrGeminiNotConfigured = errors.New("gemini api key not configured")

// GenerateResult carries the model output plus call accounting
type GenerateResult struct {
	Text           string
	Model          string
	TokensUsed     int
	ResponseTimeMs int
}

// GeminiClient defines the interface for the generative-AI endpoint
type GeminiClient interface {
	GenerateContent(ctx context.Context, prompt string) (*GenerateResult, error)
}

// geminiClient implements GeminiClient over the Gemini REST API
type geminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(baseURL, apiKey, model string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) GeminiClient {
	return &geminiClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// GenerateContent sends one prompt and returns the first candidate's text
func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (*GenerateResult, error) {
	if c.apiKey == "" {
		return nil, ErrGeminiNotConfigured
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		// api key is a query parameter; record the endpoint without it
		endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
		c.metrics.RecordExternalAPICall(endpoint, "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("gemini request failed",
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("gemini returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", payload),
		)
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	c.logger.Info("gemini call completed",
		zap.Duration("duration", duration),
		zap.Int("tokens", parsed.UsageMetadata.TotalTokenCount),
	)
	return &GenerateResult{
		Text:           sb.String(),
		Model:          c.model,
		TokensUsed:     parsed.UsageMetadata.TotalTokenCount,
		ResponseTimeMs: int(duration.Milliseconds()),
	}, nil
}

// StripCodeFences removes markdown code fences around a JSON payload.
// Gemini wraps structured answers in ```json blocks more often than not.
func StripCodeFences(text string) string {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(text)
}
