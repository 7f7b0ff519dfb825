package model

import "strings"

// AssetKind tells which upstream batch produced a quote.
type AssetKind string

const (
	KindCrypto AssetKind = "crypto"
	KindEquity AssetKind = "equity"
)

// AssetQuote is one asset's price and percent change for a single refresh cycle.
type AssetQuote struct {
	Name          string
	Price         float64
	ChangePercent float64 // 24h for crypto, vs previous close for equities
	Kind          AssetKind
}

// Rising reports whether the quote is drawn with the positive style.
// Zero counts as not rising.
func (q AssetQuote) Rising() bool {
	return q.ChangePercent > 0
}

// DisplayName upper-cases symbol and strips the first matching suffix.
// The lookup key used against the upstream source is never changed by this.
func DisplayName(symbol string, suffixes []string) string {
	name := symbol
	for _, s := range suffixes {
		if s != "" && strings.HasSuffix(name, s) {
			name = strings.TrimSuffix(name, s)
			break
		}
	}
	return strings.ToUpper(name)
}
