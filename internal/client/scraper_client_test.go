package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const scraperTestUserAgent = "Mozilla/5.0 (compatible; IdeaCopilotBot/1.0)"

func newTestScraper(timeout time.Duration) ScraperClient {
	return NewScraperClient(timeout, scraperTestUserAgent, zap.NewNop(), nil)
}

func TestScraperClient_ExtractsReadableContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, scraperTestUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>MealMaster - Weekly Meal Planning</title></head>
<body>
<nav><a href="/pricing">Pricing</a><a href="/login">Login</a></nav>
<article>
<h1>Plan a week of meals in minutes</h1>
<p>MealMaster builds a personalized weekly meal plan from your pantry,
your diet and your schedule. Recipes adjust to the servings you need
and the grocery list writes itself.</p>
<p>Over 40,000 households plan their dinners with MealMaster every week.</p>
<script>trackVisit("landing");</script>
</article>
</body>
</html>`)
	}))
	defer server.Close()

	page, err := newTestScraper(5*time.Second).Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, server.URL, page.URL)
	assert.Contains(t, page.Title, "MealMaster")
	assert.Contains(t, page.Content, "personalized weekly meal plan")
	assert.NotContains(t, page.Content, "<p>", "sanitizer should strip every tag")
	assert.NotContains(t, page.Content, "trackVisit", "scripts must not leak into content")

	host := strings.TrimPrefix(server.URL, "http://")
	assert.Equal(t, host, page.Domain)
}

func TestScraperClient_TruncatesLongContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><head><title>Long Page</title></head><body><article>`)
		for i := 0; i < 200; i++ {
			fmt.Fprintf(w, "<p>Paragraph %d keeps going on about the product positioning and roadmap in great detail.</p>", i)
		}
		fmt.Fprint(w, `</article></body></html>`)
	}))
	defer server.Close()

	page, err := newTestScraper(5*time.Second).Scrape(context.Background(), server.URL)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(page.Content), scrapedContentLimit)
}

func TestScraperClient_FallsBackToHostTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body><article><p>A page that never bothered to set a title but still has enough body text for extraction to succeed on it.</p></article></body></html>`)
	}))
	defer server.Close()

	page, err := newTestScraper(5*time.Second).Scrape(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, page.Domain, page.Title)
}

func TestScraperClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "실패: 404 응답",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: "status 404",
		},
		{
			name: "실패: 서버 오류",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: "status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := newTestScraper(5*time.Second).Scrape(context.Background(), server.URL)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScraperClient_RejectsUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL
	server.Close()

	_, err := newTestScraper(time.Second).Scrape(context.Background(), target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch failed")
}
