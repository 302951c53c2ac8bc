package pipeline

import (
	"fmt"
	"strings"

	"stock_analyst/pkg/core/summary"
	"stock_analyst/pkg/models"
)

// printReport writes the crawled fields and derived summary to the console
// with localized labels.
func (p *Pipeline) printReport(name, code string, quote *models.Quote, sum models.Summary) {
	fmt.Fprintf(p.out, "%s(%s)\n", name, code)
	quote.Range(func(key, value string) {
		fmt.Fprintf(p.out, " - %s: %s\n", summary.LocalizeKey(key), displayValue(key, value))
	})
	if !sum.Empty() {
		fmt.Fprintln(p.out, "\n요약 정보:")
		for _, e := range sum {
			fmt.Fprintf(p.out, " - %s: %s\n", e.Label, e.Value)
		}
	}
}

// displayValue appends the percent sign to rate fields stored without one.
func displayValue(key, value string) string {
	switch key {
	case models.KeyChangePct, models.KeyDividendYield:
		if !strings.HasSuffix(value, "%") {
			return value + "%"
		}
	}
	return value
}

func (p *Pipeline) printNotFound(input string) {
	fmt.Fprintf(p.out, "'%s' 종목을 찾을 수 없습니다.\n", input)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "종목명 또는 코드가 올바른지 확인해주세요.")
	fmt.Fprintln(p.out, "예시:")
	fmt.Fprintln(p.out, "  - 정확한 종목명: analyst '삼성전자'")
	fmt.Fprintln(p.out, "  - 종목 코드: analyst '005930'")
	fmt.Fprintln(p.out, "  - 영문 티커: analyst 'AAPL'")
}
