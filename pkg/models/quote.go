package models

// Field keys produced by the crawler. Values stay strings: numeric fields
// are stored with thousands separators already removed, while fields like
// market_cap keep the unit suffix from the source page.
const (
	KeyName          = "name"
	KeyCurrentPrice  = "current_price"
	KeyPrevClose     = "prev_close"
	KeyChangePct     = "change_pct"
	KeyOpen          = "open"
	KeyHigh          = "high"
	KeyLow           = "low"
	KeyUpperLimit    = "upper_limit"
	KeyLowerLimit    = "lower_limit"
	KeyVolume        = "volume"
	KeyTradingValue  = "trading_value_million"
	Key52WeekHigh    = "52w_high"
	Key52WeekLow     = "52w_low"
	KeyMarket        = "market"
	KeyPER           = "per"
	KeyPBR           = "pbr"
	KeyROE           = "roe"
	KeyEPS           = "eps"
	KeyBPS           = "bps"
	KeyDividendYield = "div_yield"
	KeyMarketCap     = "market_cap"
)

// Quote is the field mapping for one stock: key -> string value, preserving
// the order in which fields were extracted. A key is present only when
// extraction positively matched; there are no placeholder values.
type Quote struct {
	keys   []string
	values map[string]string
}

func NewQuote() *Quote {
	return &Quote{values: make(map[string]string)}
}

// Set stores a value. An existing key keeps its original position; later
// extraction strategies overwrite earlier ones for overlapping keys.
func (q *Quote) Set(key, value string) {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

func (q *Quote) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Value returns the stored string, or "" when the key is absent.
func (q *Quote) Value(key string) string {
	return q.values[key]
}

func (q *Quote) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

func (q *Quote) Len() int {
	return len(q.keys)
}

// Keys returns the extraction order. The returned slice must not be mutated.
func (q *Quote) Keys() []string {
	return q.keys
}

// Range visits entries in extraction order.
func (q *Quote) Range(fn func(key, value string)) {
	for _, k := range q.keys {
		fn(k, q.values[k])
	}
}

// SummaryEntry is one derived indicator: a localized display label and its
// formatted value (fixed decimals, optionally percent-suffixed).
type SummaryEntry struct {
	Label string
	Value string
}

// Summary is the ordered set of derived indicators computed from a Quote.
type Summary []SummaryEntry

func (s Summary) Empty() bool {
	return len(s) == 0
}
