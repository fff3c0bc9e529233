package market

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable indicates a network failure or a non-2xx
// answer from the market-data provider.
var ErrUpstreamUnavailable = errors.New("upstream market data unavailable")

// ErrNoMatch indicates a symbol search that yielded no result.
var ErrNoMatch = errors.New("no matching symbol")

// ChartResponse is the raw chart payload returned by the provider.
// Close samples are pointers so that closed-market gaps (JSON nulls)
// survive decoding and can be filtered downstream.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// ChartResult is one symbol's series plus its live-price metadata.
type ChartResult struct {
	Meta struct {
		Symbol             string  `json:"symbol"`
		ShortName          string  `json:"shortName"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// SearchResult is the canonical symbol resolved from a free-text query.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Fetcher defines the interface for the upstream market-data provider.
type Fetcher interface {
	FetchChart(ctx context.Context, symbol, span, interval string) (*ChartResponse, error)
	Search(ctx context.Context, query string) (SearchResult, error)
	Name() string
}
