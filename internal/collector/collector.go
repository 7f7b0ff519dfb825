package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"MarketTerminal/internal/logger"
	"MarketTerminal/internal/metrics"
	"MarketTerminal/internal/model"
)

// Watchlist is the set of assets fetched every cycle.
type Watchlist struct {
	CryptoIDs     []string
	Currency      string
	Tickers       []string
	StripSuffixes []string
}

// BatchResult is the outcome of one upstream batch.
// Err == nil with no quotes means there was nothing to fetch.
type BatchResult struct {
	Source string
	Quotes []model.AssetQuote
	Err    error
}

// Failed reports whether the batch was abandoned.
func (b BatchResult) Failed() bool { return b.Err != nil }

// Snapshot is everything one refresh cycle fetched.
type Snapshot struct {
	Crypto BatchResult
	Equity BatchResult
}

// Quotes returns crypto rows followed by equity rows.
func (s Snapshot) Quotes() []model.AssetQuote {
	out := make([]model.AssetQuote, 0, len(s.Crypto.Quotes)+len(s.Equity.Quotes))
	out = append(out, s.Crypto.Quotes...)
	out = append(out, s.Equity.Quotes...)
	return out
}

// Failed lists the sources whose batch was abandoned.
func (s Snapshot) Failed() []string {
	var failed []string
	for _, b := range []BatchResult{s.Crypto, s.Equity} {
		if b.Failed() {
			failed = append(failed, b.Source)
		}
	}
	return failed
}

// Collector fetches the watchlist from a crypto and an equity source.
type Collector struct {
	Crypto    CryptoSource
	Equity    EquitySource
	Watchlist Watchlist
}

// NewCollector creates a new Collector.
func NewCollector(crypto CryptoSource, equity EquitySource, wl Watchlist) *Collector {
	return &Collector{Crypto: crypto, Equity: equity, Watchlist: wl}
}

// Collect runs the crypto batch, then the equity batch. A failure in one never
// prevents the other from running.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	return Snapshot{
		Crypto: c.observe(ctx, string(model.KindCrypto), c.collectCrypto),
		Equity: c.observe(ctx, string(model.KindEquity), c.collectEquities),
	}
}

func (c *Collector) observe(ctx context.Context, source string, fn func(context.Context) BatchResult) BatchResult {
	start := time.Now()
	res := fn(ctx)
	res.Source = source
	metrics.FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	if res.Err != nil {
		metrics.BatchFailures.WithLabelValues(source).Inc()
		logger.Log.Debug("batch abandoned",
			zap.String("source", source),
			zap.Int("kept", len(res.Quotes)),
			zap.Error(res.Err))
	}
	return res
}

// collectCrypto is all-or-nothing: a failed call yields no crypto rows.
func (c *Collector) collectCrypto(ctx context.Context) BatchResult {
	ids := c.Watchlist.CryptoIDs
	if c.Crypto == nil || len(ids) == 0 {
		return BatchResult{}
	}
	prices, err := c.Crypto.FetchCrypto(ctx, ids, c.Watchlist.Currency)
	if err != nil {
		return BatchResult{Err: err}
	}

	quotes := make([]model.AssetQuote, 0, len(ids))
	for _, id := range ids {
		p, ok := prices[id]
		if !ok {
			return BatchResult{Err: fmt.Errorf("%s: %w: %s", c.Crypto.Name(), ErrMissingQuote, id)}
		}
		quotes = append(quotes, model.AssetQuote{
			Name:          model.DisplayName(id, nil),
			Price:         p.Price,
			ChangePercent: p.Change24h,
			Kind:          model.KindCrypto,
		})
	}
	return BatchResult{Quotes: quotes}
}

// collectEquities stops at the first failing ticker. Quotes for earlier tickers
// are kept; later tickers are not requested this cycle.
func (c *Collector) collectEquities(ctx context.Context) BatchResult {
	var res BatchResult
	if c.Equity == nil {
		return res
	}
	for _, ticker := range c.Watchlist.Tickers {
		p, err := c.Equity.FetchEquity(ctx, ticker)
		if err != nil {
			res.Err = err
			return res
		}
		change, err := ChangePercent(p.LastPrice, p.PreviousClose)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", ticker, err)
			return res
		}
		res.Quotes = append(res.Quotes, model.AssetQuote{
			Name:          model.DisplayName(ticker, c.Watchlist.StripSuffixes),
			Price:         p.LastPrice,
			ChangePercent: change,
			Kind:          model.KindEquity,
		})
	}
	return res
}

var hundred = decimal.NewFromInt(100)

// ChangePercent returns (current - previousClose) / previousClose * 100.
func ChangePercent(current, previousClose float64) (float64, error) {
	prev := decimal.NewFromFloat(previousClose)
	if prev.IsZero() {
		return 0, ErrZeroPreviousClose
	}
	return decimal.NewFromFloat(current).Sub(prev).Div(prev).Mul(hundred).InexactFloat64(), nil
}

// StaticCryptoSource returns fixed prices for development and testing.
type StaticCryptoSource struct {
	Prices map[string]CryptoPrice
	Err    error
	Calls  int
}

func (s *StaticCryptoSource) Name() string { return "static-crypto" }

func (s *StaticCryptoSource) FetchCrypto(_ context.Context, ids []string, _ string) (map[string]CryptoPrice, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := make(map[string]CryptoPrice, len(ids))
	for _, id := range ids {
		if p, ok := s.Prices[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// StaticEquitySource returns fixed prices and records every requested ticker.
// Tickers listed in Fail return their error.
type StaticEquitySource struct {
	Prices    map[string]EquityPrice
	Fail      map[string]error
	Requested []string
}

func (s *StaticEquitySource) Name() string { return "static-equity" }

func (s *StaticEquitySource) FetchEquity(_ context.Context, symbol string) (EquityPrice, error) {
	s.Requested = append(s.Requested, symbol)
	if err, ok := s.Fail[symbol]; ok {
		return EquityPrice{}, err
	}
	p, ok := s.Prices[symbol]
	if !ok {
		return EquityPrice{}, fmt.Errorf("%w: %s", ErrMissingQuote, symbol)
	}
	return p, nil
}
