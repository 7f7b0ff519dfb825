package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooSource implements EquitySource using the Yahoo Finance chart API.
type YahooSource struct {
	restClient
}

// NewYahooSource creates a new Yahoo Finance source.
func NewYahooSource(options ...Option) *YahooSource {
	options = append([]Option{WithHeader(http.Header{"User-Agent": []string{"Mozilla/5.0"}})}, options...)
	return &YahooSource{restClient: newRestClient(yahooBaseURL, options)}
}

func (s *YahooSource) Name() string { return "yahoo" }

// yahooChart is the subset of the chart response we read.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string   `json:"symbol"`
				RegularMarketPrice *float64 `json:"regularMarketPrice"`
				PreviousClose      *float64 `json:"previousClose"`
				ChartPreviousClose *float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchEquity returns the latest price and the previous session close for symbol.
func (s *YahooSource) FetchEquity(ctx context.Context, symbol string) (EquityPrice, error) {
	query := url.Values{}
	query.Set("interval", "1d")
	query.Set("range", "1d")

	var chart yahooChart
	if err := s.getJSON(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &chart); err != nil {
		return EquityPrice{}, fmt.Errorf("yahoo %s: %w", symbol, err)
	}
	if chart.Chart.Error != nil {
		return EquityPrice{}, fmt.Errorf("yahoo api error %s: %s", symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return EquityPrice{}, fmt.Errorf("yahoo %s: %w: no data returned", symbol, ErrMissingQuote)
	}

	meta := chart.Chart.Result[0].Meta
	if meta.RegularMarketPrice == nil {
		return EquityPrice{}, fmt.Errorf("yahoo %s: %w: regularMarketPrice", symbol, ErrMissingQuote)
	}
	prev := meta.PreviousClose
	if prev == nil {
		prev = meta.ChartPreviousClose
	}
	if prev == nil {
		return EquityPrice{}, fmt.Errorf("yahoo %s: %w: previous close", symbol, ErrMissingQuote)
	}
	return EquityPrice{LastPrice: *meta.RegularMarketPrice, PreviousClose: *prev}, nil
}
