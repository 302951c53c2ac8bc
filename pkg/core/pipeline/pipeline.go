// Package pipeline runs one stock analysis end to end: resolve the
// identifier, scrape the finance page, derive the summary, print the
// report, and request a model opinion.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stock_analyst/pkg/core/agent"
	"stock_analyst/pkg/core/crawl"
	"stock_analyst/pkg/core/llm"
	"stock_analyst/pkg/core/prompt"
	"stock_analyst/pkg/core/search"
	"stock_analyst/pkg/core/summary"
	"stock_analyst/pkg/core/utils"
	"stock_analyst/pkg/models"
)

const (
	msgNoData       = "데이터를 수집할 수 없습니다."
	msgEmptyReply   = "응답이 없습니다."
	msgQuota        = "Gemini 쿼터 초과: 잠시 후 다시 시도해주세요."
	msgAPIFailure   = "Gemini API 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	timestampLayout = "2006년 01월 02일 15:04"
)

var reParenSuffix = regexp.MustCompile(`\(.+?\)`)

type Pipeline struct {
	crawler  *crawl.Crawler
	resolver *search.Resolver
	manager  *agent.Manager
	out      io.Writer
	log      *zap.Logger
	now      func() time.Time
}

// New wires a pipeline against the given provider manager. listingPath may
// be empty; identifier resolution then relies on the web search alone.
func New(manager *agent.Manager, listingPath string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		crawler:  crawl.NewCrawler(log),
		resolver: search.NewResolver(listingPath, log),
		manager:  manager,
		out:      os.Stdout,
		log:      log,
		now:      time.Now,
	}
}

// Run analyzes one stock named by a six-digit code or a free-text name.
func (p *Pipeline) Run(ctx context.Context, input string) {
	runID := uuid.NewString()
	log := p.log.With(zap.String("run_id", runID), zap.String("input", input))

	code := input
	if !isStockCode(input) {
		resolved, ok := p.resolver.Resolve(ctx, input)
		if !ok {
			log.Info("identifier resolution failed")
			p.printNotFound(input)
			return
		}
		code = resolved
	}
	log.Info("identifier resolved", zap.String("code", code))

	quote, err := p.crawler.GetQuote(ctx, code)
	if err != nil || quote.Len() == 0 {
		if err != nil {
			log.Warn("quote fetch failed", zap.Error(err))
		}
		fmt.Fprintln(p.out, msgNoData)
		return
	}

	name := displayName(quote, input)
	sum := summary.Compute(quote)
	p.printReport(name, code, quote, sum)
	p.runAnalysis(ctx, log, name, code, quote, sum)
}

func (p *Pipeline) runAnalysis(ctx context.Context, log *zap.Logger, name, code string, quote *models.Quote, sum models.Summary) {
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Gemini API 키가 설정되지 않았습니다.")
		fmt.Fprintln(p.out, "환경변수 GEMINI_API_KEY를 설정해주세요.")
		fmt.Fprintln(p.out, "예: export GEMINI_API_KEY='your-api-key'")
		return
	}

	req := prompt.Build(name, code, quote, sum, p.now().Format(timestampLayout))
	fmt.Fprintln(p.out, " ")

	response, err := p.manager.ExecutePrompt(ctx, req, "")
	if err != nil {
		log.Warn("analysis request failed", zap.Error(err))
		fmt.Fprintln(p.out, apiFailureMessage(err))
		return
	}

	if !utils.ValidateMarkdown(response) {
		log.Debug("response has no renderable content")
	}
	text := strings.TrimSpace(utils.StripEmphasis(utils.CleanMarkdown(response)))
	if text == "" {
		fmt.Fprintln(p.out, msgEmptyReply)
		return
	}
	if v, ok := utils.ExtractVerdict(text); ok {
		log.Info("verdict extracted",
			zap.String("opinion", v.Opinion),
			zap.String("reason", v.Reason))
	}
	fmt.Fprintln(p.out, text)
}

// apiFailureMessage maps a provider error to the user-facing notice. The raw
// error never reaches the console.
func apiFailureMessage(err error) string {
	if llm.IsQuotaExceeded(err) {
		return msgQuota
	}
	return msgAPIFailure
}

func isStockCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// displayName prefers the crawled company name over the user input, with
// parenthesized suffixes removed. Overly long titles are discarded in favor
// of the input.
func displayName(quote *models.Quote, input string) string {
	name, ok := quote.Get(models.KeyName)
	if !ok {
		return input
	}
	if utf8.RuneCountInString(name) > 20 {
		return input
	}
	cleaned := strings.TrimSpace(reParenSuffix.ReplaceAllString(name, ""))
	if cleaned == "" {
		return input
	}
	return cleaned
}
