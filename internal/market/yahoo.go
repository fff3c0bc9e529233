package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultChartBaseURL is the Yahoo Finance v8 chart endpoint.
	DefaultChartBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	// DefaultSearchBaseURL is the Yahoo Finance v1 search endpoint.
	DefaultSearchBaseURL = "https://query1.finance.yahoo.com/v1/finance/search"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	ChartBaseURL  string
	SearchBaseURL string
	Client        *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy
// support. Empty base URLs fall back to the public endpoints.
func NewYahooFetcher(chartBaseURL, searchBaseURL, proxyURL string, timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if chartBaseURL == "" {
		chartBaseURL = DefaultChartBaseURL
	}
	if searchBaseURL == "" {
		searchBaseURL = DefaultSearchBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &YahooFetcher{
		ChartBaseURL:  chartBaseURL,
		SearchBaseURL: searchBaseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo blocks requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}
	return body, nil
}

// FetchChart performs a single chart call for one symbol with the given
// span and sampling interval. No retry and no caching; every call hits
// the upstream.
func (f *YahooFetcher) FetchChart(ctx context.Context, symbol, span, interval string) (*ChartResponse, error) {
	u := fmt.Sprintf("%s/%s?range=%s&interval=%s",
		f.ChartBaseURL, url.PathEscape(symbol), url.QueryEscape(span), url.QueryEscape(interval))

	body, err := f.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	var chart ChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w: decode: %v", symbol, ErrUpstreamUnavailable, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w: %s", symbol, ErrUpstreamUnavailable, chart.Chart.Error.Description)
	}
	return &chart, nil
}

// yahooSearch is the response structure from the Yahoo search API.
type yahooSearch struct {
	Quotes []struct {
		Symbol         string `json:"symbol"`
		ShortName      string `json:"shortname"`
		LongName       string `json:"longname"`
		QuoteType      string `json:"quoteType"`
		IsYahooFinance bool   `json:"isYahooFinance"`
	} `json:"quotes"`
}

// Search resolves a free-text query to a canonical ticker. Precedence:
// first result flagged as EQUITY or ETF by the provider, else the first
// result overall, else ErrNoMatch.
func (f *YahooFetcher) Search(ctx context.Context, query string) (SearchResult, error) {
	u := fmt.Sprintf("%s?q=%s", f.SearchBaseURL, url.QueryEscape(query))

	body, err := f.get(ctx, u)
	if err != nil {
		return SearchResult{}, fmt.Errorf("yahoo search %q: %w", query, err)
	}

	var sr yahooSearch
	if err := json.Unmarshal(body, &sr); err != nil {
		return SearchResult{}, fmt.Errorf("yahoo search %q: %w: decode: %v", query, ErrUpstreamUnavailable, err)
	}
	if len(sr.Quotes) == 0 {
		return SearchResult{}, fmt.Errorf("yahoo search %q: %w", query, ErrNoMatch)
	}

	for _, q := range sr.Quotes {
		if (q.QuoteType == "EQUITY" || q.QuoteType == "ETF") && q.IsYahooFinance {
			name := q.ShortName
			if name == "" {
				name = q.LongName
			}
			return SearchResult{Symbol: q.Symbol, Name: name}, nil
		}
	}
	// No equity or ETF flagged; fall back to the first result.
	return SearchResult{Symbol: sr.Quotes[0].Symbol, Name: sr.Quotes[0].ShortName}, nil
}
