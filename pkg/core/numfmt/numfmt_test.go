package numfmt

import "testing"

func TestExtractLeadingNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1,234,567", "1234567", true},
		{"12,345원", "12345", true},
		{"  55,000 ", "55000", true},
		{"N/A", "", false},
		{"", "", false},
		{"배당수익률", "", false},
		{"3.5%", "3.5", true},
		{"12.34배", "12.34", true},
		{"1,234.56원", "1234.56", true},
		{",,", "", false}, // a separator-only run is not a number
		{",", "", false},
	}
	for _, c := range cases {
		got, ok := ExtractLeadingNumber(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("ExtractLeadingNumber(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if v, ok := ParseFloat("1,234.5"); !ok || v != 1234.5 {
		t.Errorf("ParseFloat(\"1,234.5\") = (%v, %v), want (1234.5, true)", v, ok)
	}
	if v, ok := ParseFloat(" 50000 "); !ok || v != 50000 {
		t.Errorf("ParseFloat with whitespace = (%v, %v)", v, ok)
	}
	if v, ok := ParseFloat("-3.2"); !ok || v != -3.2 {
		t.Errorf("ParseFloat(\"-3.2\") = (%v, %v)", v, ok)
	}
	if _, ok := ParseFloat("abc"); ok {
		t.Error("ParseFloat(\"abc\") should report false")
	}
	if _, ok := ParseFloat(""); ok {
		t.Error("ParseFloat(\"\") should report false")
	}
}
