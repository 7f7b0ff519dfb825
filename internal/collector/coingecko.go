package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoSource implements CryptoSource using the CoinGecko simple price endpoint.
type CoinGeckoSource struct {
	restClient
}

// NewCoinGeckoSource creates a CoinGecko client. apiKey is optional and sent as
// the demo key header when set.
func NewCoinGeckoSource(apiKey string, options ...Option) *CoinGeckoSource {
	if apiKey != "" {
		options = append([]Option{WithHeader(http.Header{"x-cg-demo-api-key": []string{apiKey}})}, options...)
	}
	return &CoinGeckoSource{restClient: newRestClient(coinGeckoBaseURL, options)}
}

func (s *CoinGeckoSource) Name() string { return "coingecko" }

// FetchCrypto requests every id in one call. Any id or field missing from the
// response fails the whole call.
func (s *CoinGeckoSource) FetchCrypto(ctx context.Context, ids []string, currency string) (map[string]CryptoPrice, error) {
	currency = strings.ToLower(currency)
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", currency)
	query.Set("include_24hr_change", "true")

	// pointers so that JSON null is told apart from 0
	var body map[string]map[string]*float64
	if err := s.getJSON(ctx, "/simple/price", query, &body); err != nil {
		return nil, fmt.Errorf("coingecko: %w", err)
	}

	changeKey := currency + "_24h_change"
	prices := make(map[string]CryptoPrice, len(ids))
	for _, id := range ids {
		entry, ok := body[id]
		if !ok {
			return nil, fmt.Errorf("coingecko: %w: %s", ErrMissingQuote, id)
		}
		price, change := entry[currency], entry[changeKey]
		if price == nil {
			return nil, fmt.Errorf("coingecko: %w: %s.%s", ErrMissingQuote, id, currency)
		}
		if change == nil {
			return nil, fmt.Errorf("coingecko: %w: %s.%s", ErrMissingQuote, id, changeKey)
		}
		prices[id] = CryptoPrice{Price: *price, Change24h: *change}
	}
	return prices, nil
}
