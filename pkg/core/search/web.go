package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	searchURL = "https://finance.naver.com/search/searchList.naver?keyword=%s"
	verifyURL = "https://finance.naver.com/item/main.naver?code=%s"
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	searchTimeout = 10 * time.Second
	verifyTimeout = 5 * time.Second
)

var reCode = regexp.MustCompile(`code=(\d{6})`)

// WebResolver looks a name up on the Naver Finance search page. Three
// patterns are tried in order: result rows whose name cell contains the
// query, detail links whose text contains the query, and finally the first
// detail link verified against the detail page content.
type WebResolver struct {
	client *http.Client
	verify *http.Client
	log    *zap.Logger
}

func NewWebResolver(log *zap.Logger) *WebResolver {
	return &WebResolver{
		client: &http.Client{Timeout: searchTimeout},
		verify: &http.Client{Timeout: verifyTimeout},
		log:    log,
	}
}

// Resolve returns the six-digit code for a name, or false when the search
// page yields no acceptable candidate.
func (r *WebResolver) Resolve(ctx context.Context, name string) (string, bool) {
	body, err := r.get(ctx, r.client, fmt.Sprintf(searchURL, url.QueryEscape(name)))
	if err != nil {
		r.log.Debug("search page fetch failed", zap.String("query", name), zap.Error(err))
		return "", false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", false
	}

	if code, ok := r.matchResultRows(doc, name); ok {
		return code, true
	}
	if code, ok := r.matchLinkText(doc, name); ok {
		return code, true
	}
	return r.verifyFirstLink(ctx, doc, name)
}

// matchResultRows scans two-cell result rows whose first cell contains the
// query and pulls the code out of the cell's detail link.
func (r *WebResolver) matchResultRows(doc *goquery.Document, name string) (string, bool) {
	var code string
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return true
		}
		if !strings.Contains(strings.TrimSpace(cells.Eq(0).Text()), name) {
			return true
		}
		href, _ := cells.Eq(0).Find(`a[href*="code="]`).First().Attr("href")
		if m := reCode.FindStringSubmatch(href); m != nil {
			code = m[1]
			return false
		}
		return true
	})
	return code, code != ""
}

// matchLinkText scans every detail link for text containing the query.
func (r *WebResolver) matchLinkText(doc *goquery.Document, name string) (string, bool) {
	lower := strings.ToLower(name)
	var code string
	doc.Find(`a[href*="code="]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(strings.TrimSpace(link.Text())), lower) {
			return true
		}
		href, _ := link.Attr("href")
		if m := reCode.FindStringSubmatch(href); m != nil {
			code = m[1]
			return false
		}
		return true
	})
	return code, code != ""
}

// verifyFirstLink takes the first detail link as a last resort, accepted
// only when the detail page itself mentions the query.
func (r *WebResolver) verifyFirstLink(ctx context.Context, doc *goquery.Document, name string) (string, bool) {
	href, _ := doc.Find(`a[href*="code="]`).First().Attr("href")
	m := reCode.FindStringSubmatch(href)
	if m == nil {
		return "", false
	}
	code := m[1]

	body, err := r.get(ctx, r.verify, fmt.Sprintf(verifyURL, code))
	if err != nil {
		r.log.Debug("verification fetch failed", zap.String("code", code), zap.Error(err))
		return "", false
	}
	if !strings.Contains(body, name) {
		return "", false
	}
	r.log.Debug("resolved via verified first link",
		zap.String("query", name), zap.String("code", code))
	return code, true
}

func (r *WebResolver) get(ctx context.Context, client *http.Client, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
