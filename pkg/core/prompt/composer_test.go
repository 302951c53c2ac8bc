package prompt

import (
	"strings"
	"testing"

	"stock_analyst/pkg/models"
)

func TestBuildSectionOrdering(t *testing.T) {
	q := models.NewQuote()
	q.Set(models.KeyName, "삼성전자")
	q.Set(models.KeyCurrentPrice, "71000")
	s := models.Summary{{Label: "일변화(원)", Value: "1500"}}

	p := Build("삼성전자", "005930", q, s, "2026년 08월 29일 09:30")

	sections := []string{
		"현재 시점: 2026년 08월 29일 09:30",
		"'삼성전자'(코드: 005930)",
		"- 회사명: 삼성전자",
		"- 현재가: 71000",
		"위의 현재 데이터를 바탕으로 다음을 분석해주세요:",
		"3. 투자 의견 (매수/매도/보유 중 선택)",
		"기본 정보",
		"[요약 정보]",
		" - 일변화(원): 1500",
		"[분석 결과]",
		"의견: [매수/매도/보유 중 하나]",
		"사유: [100자 이내 이유]",
	}
	pos := 0
	for _, sec := range sections {
		idx := strings.Index(p[pos:], sec)
		if idx < 0 {
			t.Fatalf("section %q missing or out of order", sec)
		}
		pos += idx
	}
}

func TestBuildEmptySummaryPlaceholder(t *testing.T) {
	q := models.NewQuote()
	q.Set(models.KeyName, "테스트기업")

	p := Build("테스트기업", "000001", q, nil, "2026년 08월 29일 09:30")
	if !strings.Contains(p, " - (요약 없음)") {
		t.Error("empty summary must render the (요약 없음) placeholder")
	}
}
