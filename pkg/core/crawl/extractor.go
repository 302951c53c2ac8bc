package crawl

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"stock_analyst/pkg/core/numfmt"
	"stock_analyst/pkg/models"
)

var (
	reTitle        = regexp.MustCompile(`(.+?)\s*\((\d{6})`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reCurrentPrice = regexp.MustCompile(`현재가[^<]*?(\d{2,}[\d,]*)`)
	reROE          = regexp.MustCompile(`[\-0-9.]+`)
	reDivYield     = regexp.MustCompile(`([0-9.]+)%`)
)

// blindPattern matches "<label> <value>" in the flattened text of the
// page's screen-reader elements. Numeric captures get their thousands
// separators stripped; change percent, trading value and market are kept
// as captured.
type blindPattern struct {
	key   string
	re    *regexp.Regexp
	strip bool
}

var blindPatterns = []blindPattern{
	{models.KeyPrevClose, regexp.MustCompile(`전일가\s([0-9,]+)`), true},
	{models.KeyChangePct, regexp.MustCompile(`등락률\s([\-0-9.,]+)%`), false},
	{models.KeyOpen, regexp.MustCompile(`시가\s([0-9,]+)`), true},
	{models.KeyHigh, regexp.MustCompile(`고가\s([0-9,]+)`), true},
	{models.KeyLow, regexp.MustCompile(`저가\s([0-9,]+)`), true},
	{models.KeyUpperLimit, regexp.MustCompile(`상한가\s([0-9,]+)`), true},
	{models.KeyLowerLimit, regexp.MustCompile(`하한가\s([0-9,]+)`), true},
	{models.KeyVolume, regexp.MustCompile(`거래량\s([0-9,]+)`), true},
	{models.KeyTradingValue, regexp.MustCompile(`거래대금\s([0-9,]+)백만`), false},
	{models.Key52WeekHigh, regexp.MustCompile(`52주\s?(?:최고|고가)\s([0-9,]+)`), true},
	{models.Key52WeekLow, regexp.MustCompile(`52주\s?(?:최저|저가)\s([0-9,]+)`), true},
	{models.KeyMarket, regexp.MustCompile(`종목코드\s\d+\s(코스피|코스닥)`), false},
}

// Extractor pulls quote fields out of a detail page. Strategies run in a
// fixed order and a miss in one never aborts the others; the table-row scan
// runs last and overwrites overlapping keys.
type Extractor struct {
	log *zap.Logger
}

func NewExtractor(log *zap.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract parses the raw markup and populates a Quote. The only error is a
// document that cannot be parsed at all.
func (e *Extractor) Extract(rawHTML string) (*models.Quote, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	quote := models.NewQuote()

	e.extractTitle(doc, quote)
	e.extractBlindText(doc, quote)
	e.extractCurrentPrice(rawHTML, quote)
	e.extractTableRows(doc, quote)

	return quote, nil
}

// extractTitle pulls the company name out of the page title, which reads
// "<name> (<code>) ...". Names outside 2..29 characters are rejected; those
// are navigation titles, not company names.
func (e *Extractor) extractTitle(doc *goquery.Document, quote *models.Quote) {
	title := doc.Find("title").First().Text()
	m := reTitle.FindStringSubmatch(title)
	if m == nil {
		return
	}
	name := strings.TrimSpace(reSpaces.ReplaceAllString(m[1], " "))
	if n := utf8.RuneCountInString(name); n > 1 && n < 30 {
		quote.Set(models.KeyName, name)
	}
}

// extractBlindText flattens the page's .blind elements (screen-reader text
// carrying the label/value pairs of the price header) and matches each
// labeled quantity against it.
func (e *Extractor) extractBlindText(doc *goquery.Document, quote *models.Quote) {
	blindText := FlattenText(doc.Find(".blind"))
	for _, p := range blindPatterns {
		m := p.re.FindStringSubmatch(blindText)
		if m == nil {
			continue
		}
		value := m[1]
		if p.strip {
			value = strings.ReplaceAll(value, ",", "")
		}
		quote.Set(p.key, value)
	}
}

// extractCurrentPrice scans the raw markup. The current price sits outside
// the .blind region on this page, so the flattened-text pass cannot see it.
func (e *Extractor) extractCurrentPrice(rawHTML string, quote *models.Quote) {
	m := reCurrentPrice.FindStringSubmatch(rawHTML)
	if m == nil {
		return
	}
	quote.Set(models.KeyCurrentPrice, strings.ReplaceAll(m[1], ",", ""))
}

// extractTableRows scans two-cell table rows and dispatches on the label in
// the first cell. It runs after the flattened-text pass and is authoritative
// for fields both passes produce.
func (e *Extractor) extractTableRows(doc *goquery.Document, quote *models.Quote) {
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())

		switch {
		case label == "시가":
			setNumber(quote, models.KeyOpen, value)
		case label == "고가":
			setNumber(quote, models.KeyHigh, value)
		case label == "저가":
			setNumber(quote, models.KeyLow, value)
		case strings.Contains(label, "PER"):
			setNumber(quote, models.KeyPER, value)
		case strings.Contains(label, "PBR"):
			setNumber(quote, models.KeyPBR, value)
		case strings.Contains(label, "ROE"):
			if m := reROE.FindString(value); m != "" {
				quote.Set(models.KeyROE, m)
			}
		case strings.Contains(label, "EPS"):
			setNumber(quote, models.KeyEPS, value)
		case strings.Contains(label, "BPS"):
			setNumber(quote, models.KeyBPS, value)
		case strings.Contains(label, "배당수익률"):
			if m := reDivYield.FindStringSubmatch(value); m != nil {
				quote.Set(models.KeyDividendYield, m[1])
			}
		case strings.Contains(label, "시가총액"):
			if value != "" {
				quote.Set(models.KeyMarketCap, value)
			}
		case strings.Contains(label, "거래량") && strings.Contains(value, "주"):
			setNumber(quote, models.KeyVolume, value)
		}
	})
}

func setNumber(quote *models.Quote, key, text string) {
	if v, ok := numfmt.ExtractLeadingNumber(text); ok {
		quote.Set(key, v)
	}
}

// FlattenText concatenates the visible text nodes of a selection with
// single separating spaces, so label and value stay adjacent even when the
// markup splits them into sibling nodes.
func FlattenText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, reSpaces.ReplaceAllString(t, " "))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
