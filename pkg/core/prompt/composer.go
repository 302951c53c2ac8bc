// Package prompt composes the analysis request sent to the language model.
// The template text is the output contract: section ordering and labels are
// fixed and must not be reworded.
package prompt

import (
	"bytes"
	"strings"
	"text/template"

	"stock_analyst/pkg/core/summary"
	"stock_analyst/pkg/models"
)

const analysisTemplate = `
현재 시점: {{.CurrentTime}}

다음은 '{{.CompanyName}}'(코드: {{.StockCode}}) 종목의 네이버 금융에서 수집한 현재 데이터입니다:

{{.DataBlock}}

위의 현재 데이터를 바탕으로 다음을 분석해주세요:

1. 기본 정보 분석 (위의 데이터 활용)
2. 최근 주가 동향 및 기술적 평가
3. 투자 의견 (매수/매도/보유 중 선택)
4. 선택 이유를 100자 이내로 간결하게

분석 형식:
[{{.CompanyName}}]

기본 정보
{{.BasicInfoBlock}}

[요약 정보]
{{.SummaryBlock}}

[분석 결과]
────────────────────────────────────────────────────────────
의견: [매수/매도/보유 중 하나]
사유: [100자 이내 이유]
`

var analysisTmpl = template.Must(template.New("analysis").Parse(analysisTemplate))

type templateData struct {
	CurrentTime    string
	CompanyName    string
	StockCode      string
	DataBlock      string
	BasicInfoBlock string
	SummaryBlock   string
}

// Build renders the analysis request for one stock. currentTime is the
// caller-formatted timestamp embedded at the top of the prompt.
func Build(companyName, stockCode string, quote *models.Quote, sum models.Summary, currentTime string) string {
	var dataLines, infoLines []string
	quote.Range(func(key, value string) {
		label := summary.LocalizeKey(key)
		dataLines = append(dataLines, "- "+label+": "+value)
		infoLines = append(infoLines, " - "+label+": "+value)
	})

	summaryBlock := " - (요약 없음)"
	if !sum.Empty() {
		var lines []string
		for _, e := range sum {
			lines = append(lines, " - "+e.Label+": "+e.Value)
		}
		summaryBlock = strings.Join(lines, "\n")
	}

	var buf bytes.Buffer
	// The template is fixed and the data is all plain strings; Execute
	// cannot fail here.
	_ = analysisTmpl.Execute(&buf, templateData{
		CurrentTime:    currentTime,
		CompanyName:    companyName,
		StockCode:      stockCode,
		DataBlock:      strings.Join(dataLines, "\n"),
		BasicInfoBlock: strings.Join(infoLines, "\n"),
		SummaryBlock:   summaryBlock,
	})
	return buf.String()
}
