package summary

import "stock_analyst/pkg/models"

// labels maps internal field keys to their Korean display labels.
var labels = map[string]string{
	models.KeyCurrentPrice:  "현재가",
	models.KeyName:          "회사명",
	models.KeyOpen:          "시가",
	models.KeyHigh:          "고가",
	models.KeyLow:           "저가",
	models.KeyPER:           "PER",
	models.KeyPBR:           "PBR",
	models.KeyROE:           "ROE",
	models.KeyEPS:           "EPS",
	models.KeyBPS:           "BPS",
	models.KeyDividendYield: "배당수익률",
	models.KeyMarketCap:     "시가총액",
	models.KeyVolume:        "거래량",
	models.KeyPrevClose:     "전일가",
	models.KeyChangePct:     "등락률",
	models.KeyUpperLimit:    "상한가",
	models.KeyLowerLimit:    "하한가",
	models.Key52WeekHigh:    "52주 최고",
	models.Key52WeekLow:     "52주 최저",
	models.KeyTradingValue:  "거래대금(백만)",
	models.KeyMarket:        "시장",
}

// LocalizeKey returns the display label for a field key. Unknown keys pass
// through unchanged.
func LocalizeKey(key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}
