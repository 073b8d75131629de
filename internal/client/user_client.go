package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"idea-copilot-api/internal/metrics"
)

// ErrUserNotFound is returned when the directory has no user for the query
var ErrUserNotFound = errors.New("user not found")

// UserDirectory resolves users against the auth service.
// Sharing works on emails while everything internal keys on user IDs.
type UserDirectory interface {
	LookupByEmail(ctx context.Context, email string) (uuid.UUID, error)
	GetEmail(ctx context.Context, userID uuid.UUID) (string, error)
}

// userDirectoryClient implements UserDirectory over the auth service REST API
type userDirectoryClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewUserDirectoryClient creates a new user directory client
func NewUserDirectoryClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) UserDirectory {
	return &userDirectoryClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

type userRecord struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// LookupByEmail resolves an email address to a user ID
func (c *userDirectoryClient) LookupByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	endpoint := fmt.Sprintf("%s/api/internal/users/by-email?email=%s", c.baseURL, url.QueryEscape(email))

	record, err := c.fetchUser(ctx, endpoint)
	if err != nil {
		return uuid.Nil, err
	}
	return record.ID, nil
}

// GetEmail resolves a user ID back to an email address
func (c *userDirectoryClient) GetEmail(ctx context.Context, userID uuid.UUID) (string, error) {
	endpoint := fmt.Sprintf("%s/api/internal/users/%s", c.baseURL, userID.String())

	record, err := c.fetchUser(ctx, endpoint)
	if err != nil {
		return "", err
	}
	return record.Email, nil
}

func (c *userDirectoryClient) fetchUser(ctx context.Context, endpoint string) (*userRecord, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(endpoint, "GET", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("user directory request failed",
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return nil, fmt.Errorf("user directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("user directory returned non-success status",
			zap.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("user directory returned status %d", resp.StatusCode)
	}

	var record userRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode user record: %w", err)
	}
	return &record, nil
}
