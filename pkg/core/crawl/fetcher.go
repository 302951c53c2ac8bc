// Package crawl fetches a Naver Finance detail page and extracts the quote
// fields from it. Extraction is best effort: the page is only loosely
// structured, so several independent strategies each contribute the fields
// they can find.
package crawl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"stock_analyst/pkg/models"
)

const (
	quoteURL  = "https://finance.naver.com/item/main.naver?code=%s"
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	fetchTimeout = 10 * time.Second
)

// Crawler fetches and extracts one stock's quote page.
type Crawler struct {
	client    *http.Client
	extractor *Extractor
	log       *zap.Logger
}

func NewCrawler(log *zap.Logger) *Crawler {
	return &Crawler{
		client:    &http.Client{Timeout: fetchTimeout},
		extractor: NewExtractor(log),
		log:       log,
	}
}

// GetQuote downloads the detail page for a six-digit code and runs the
// extraction strategies over it. It returns an error only when the fetch or
// the HTML decode itself fails; missing fields are not errors.
func (c *Crawler) GetQuote(ctx context.Context, code string) (*models.Quote, error) {
	html, err := c.fetchHTML(ctx, fmt.Sprintf(quoteURL, code))
	if err != nil {
		return nil, fmt.Errorf("finance page fetch failed: %w", err)
	}

	quote, err := c.extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	c.log.Debug("quote extracted",
		zap.String("code", code),
		zap.Int("fields", quote.Len()))
	return quote, nil
}

func (c *Crawler) fetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("finance page returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
