package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// Verdict is the investment decision extracted from an analysis response.
type Verdict struct {
	Opinion string `json:"opinion"`
	Reason  string `json:"reason"`
}

var (
	reJSONBlock   = regexp.MustCompile("(?s)\\{.*\\}")
	reOpinionLine = regexp.MustCompile(`의견\s*[:：]\s*\[?\s*(매수|매도|보유)`)
	reReasonLine  = regexp.MustCompile(`사유\s*[:：]\s*\[?([^\n\]]+)`)
)

// RepairJSON attempts to fix common JSON errors from LLM outputs:
// missing quotes, single quotes, unclosed brackets, trailing commas.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON repair failed: %v", err)
	}
	return repaired, nil
}

// SmartParse tries multiple parsing strategies to extract valid JSON.
// Order of attempts:
// 1. Standard JSON parse
// 2. JSON repair
// 3. Hjson parse (most lenient)
func SmartParse(input string, schema interface{}) error {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	return fmt.Errorf("all parsing strategies failed")
}

// ExtractVerdict pulls the decision out of an analysis response. A JSON
// object embedded in the response is parsed leniently first; otherwise the
// 의견/사유 lines of the fixed report format are scanned. Returns false when
// the response names no decision.
func ExtractVerdict(response string) (Verdict, bool) {
	if block := reJSONBlock.FindString(response); block != "" {
		var v Verdict
		if err := SmartParse(block, &v); err == nil && validOpinion(v.Opinion) {
			v.Reason = strings.TrimSpace(v.Reason)
			return v, true
		}
	}

	var v Verdict
	if m := reOpinionLine.FindStringSubmatch(response); m != nil {
		v.Opinion = m[1]
	}
	if m := reReasonLine.FindStringSubmatch(response); m != nil {
		v.Reason = strings.TrimSpace(m[1])
	}
	return v, v.Opinion != ""
}

func validOpinion(s string) bool {
	switch s {
	case "매수", "매도", "보유":
		return true
	}
	return false
}
