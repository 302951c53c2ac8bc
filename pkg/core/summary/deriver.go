// Package summary derives indicator values from a crawled quote and maps
// internal field keys to their Korean display labels.
package summary

import (
	"fmt"

	"stock_analyst/pkg/core/numfmt"
	"stock_analyst/pkg/models"
)

// Compute derives the summary indicators from a quote. Every rule is
// guarded: it fires only when all of its inputs parse as numbers and its
// denominators are non-zero, so a sparse quote simply yields a shorter (or
// empty) summary. The quote is never mutated.
func Compute(quote *models.Quote) models.Summary {
	cur, hasCur := parseField(quote, models.KeyCurrentPrice)
	prev, hasPrev := parseField(quote, models.KeyPrevClose)
	high, hasHigh := parseField(quote, models.KeyHigh)
	low, hasLow := parseField(quote, models.KeyLow)
	h52, hasH52 := parseField(quote, models.Key52WeekHigh)
	l52, hasL52 := parseField(quote, models.Key52WeekLow)

	var s models.Summary

	if hasCur && hasPrev {
		s = append(s, models.SummaryEntry{
			Label: "일변화(원)",
			Value: fmt.Sprintf("%.0f", cur-prev),
		})
		if !quote.Has(models.KeyChangePct) && prev != 0 {
			s = append(s, models.SummaryEntry{
				Label: "일변화(%)",
				Value: fmt.Sprintf("%.2f%%", (cur-prev)/prev*100),
			})
		}
	}

	if hasPrev && prev != 0 && hasHigh && high != 0 && hasLow && low != 0 {
		s = append(s, models.SummaryEntry{
			Label: "장중변동폭(%)",
			Value: fmt.Sprintf("%.2f%%", (high-low)/prev*100),
		})
	}

	if hasCur && cur != 0 && hasH52 && h52 != 0 && hasL52 && l52 != 0 && h52-l52 > 0 {
		s = append(s, models.SummaryEntry{
			Label: "52주내 위치(%)",
			Value: fmt.Sprintf("%.2f%%", (cur-l52)/(h52-l52)*100),
		})
		s = append(s, models.SummaryEntry{
			Label: "52주고점까지 거리(%)",
			Value: fmt.Sprintf("%.2f%%", (h52-cur)/h52*100),
		})
	}

	if tv, ok := quote.Get(models.KeyTradingValue); ok && tv != "" {
		// Already denominated in millions on the source page; passed
		// through without reformatting.
		s = append(s, models.SummaryEntry{Label: "거래대금(백만)", Value: tv})
	}

	return s
}

func parseField(quote *models.Quote, key string) (float64, bool) {
	v, ok := quote.Get(key)
	if !ok {
		return 0, false
	}
	return numfmt.ParseFloat(v)
}
