package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrMissingQuote is returned when the upstream payload lacks a requested asset or field.
	ErrMissingQuote = errors.New("missing quote")
	// ErrZeroPreviousClose is returned when a percent change cannot be computed.
	ErrZeroPreviousClose = errors.New("previous close is zero")
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=collector -destination=mock_http_client_test.go -source=fetcher.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CryptoPrice is one coin's price in the requested currency and its 24h change.
type CryptoPrice struct {
	Price     float64
	Change24h float64
}

// EquityPrice is the latest traded price and the previous session close.
type EquityPrice struct {
	LastPrice     float64
	PreviousClose float64
}

// CryptoSource fetches all requested coins in one batched call.
type CryptoSource interface {
	FetchCrypto(ctx context.Context, ids []string, currency string) (map[string]CryptoPrice, error)
	Name() string
}

// EquitySource fetches a single ticker per call.
type EquitySource interface {
	FetchEquity(ctx context.Context, symbol string) (EquityPrice, error)
	Name() string
}

// restClient is the shared plumbing behind the upstream sources.
type restClient struct {
	baseURL    string
	httpClient HTTPClient
	proxyURL   string
	header     http.Header
}

// Option configures an upstream source.
type Option func(*restClient)

// WithBaseURL overrides the upstream base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *restClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *restClient) {
		c.httpClient = httpClient
	}
}

// WithProxy routes requests of the default client through proxyURL. An empty
// or invalid URL is ignored, as is the proxy when WithHTTPClient is also given.
func WithProxy(proxyURL string) Option {
	return func(c *restClient) {
		c.proxyURL = proxyURL
	}
}

// WithHeader adds headers sent with each request.
func WithHeader(header http.Header) Option {
	return func(c *restClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

func newRestClient(baseURL string, options []Option) restClient {
	c := restClient{
		baseURL: baseURL,
		header:  http.Header{},
	}
	for _, option := range options {
		option(&c)
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(c.proxyURL)
	}
	return c
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

// getJSON issues a GET to baseURL+path and decodes a 200 response into out.
func (c *restClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	for key, values := range c.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
