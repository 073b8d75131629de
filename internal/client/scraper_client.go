package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"idea-copilot-api/internal/metrics"
)

// scrapedContentLimit caps how much page text is carried into analysis
const scrapedContentLimit = 2000

// ScrapedPage is the readable digest of one competitor page
type ScrapedPage struct {
	URL     string
	Domain  string
	Title   string
	Excerpt string
	Content string
}

// ScraperClient fetches a page and extracts its readable content
type ScraperClient interface {
	Scrape(ctx context.Context, pageURL string) (*ScrapedPage, error)
}

// scraperClient implements ScraperClient with readability extraction and
// bluemonday sanitization
type scraperClient struct {
	httpClient *http.Client
	userAgent  string
	sanitizer  *bluemonday.Policy
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewScraperClient creates a new scraper client
func NewScraperClient(timeout time.Duration, userAgent string, logger *zap.Logger, m *metrics.Metrics) ScraperClient {
	return &scraperClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
		metrics:   m,
	}
}

// Scrape fetches a page with a browser User-Agent, runs readability over the
// HTML and strips every remaining tag from the result
func (c *scraperClient) Scrape(ctx context.Context, pageURL string) (*ScrapedPage, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(pageURL, "GET", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Warn("scrape request failed",
			zap.String("url", pageURL),
			zap.Error(err))
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to extract content: %w", err)
	}

	title := article.Title
	if title == "" {
		title = parsed.Host
	}
	content := strings.TrimSpace(c.sanitizer.Sanitize(article.Content))
	content = strings.Join(strings.Fields(content), " ")
	if len(content) > scrapedContentLimit {
		content = content[:scrapedContentLimit]
	}

	return &ScrapedPage{
		URL:     pageURL,
		Domain:  parsed.Host,
		Title:   title,
		Excerpt: article.Excerpt,
		Content: content,
	}, nil
}
