package llm

import (
	"errors"
	"testing"
)

func TestIsQuotaExceeded(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errors.New("googleapi: Error 429: rate limit"), true},
		{errors.New("rpc error: code = ResourceExhausted desc = RESOURCE_EXHAUSTED"), true},
		{errors.New("You exceeded your current Quota, please check your plan"), true},
		{errors.New("gemini generation failed: connection reset"), false},
		{nil, false},
	}
	for _, c := range cases {
		if got := IsQuotaExceeded(c.err); got != c.want {
			t.Errorf("IsQuotaExceeded(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
