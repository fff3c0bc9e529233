package quote

import (
	"errors"

	"stockboard/internal/market"
)

// ErrMalformedData indicates an upstream chart response missing the
// expected chart/result/meta/quote structure.
var ErrMalformedData = errors.New("malformed upstream chart data")

// Quote is the stable per-symbol record consumed by the UI. Created
// fresh per request and never persisted.
type Quote struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	History       []float64 `json:"history"`
	Range         Range     `json:"range"`
	Potential     string    `json:"potential,omitempty"`
}

// Normalize converts one raw chart response into a Quote.
//
// Null close samples (closed-market gaps) are dropped while sample order
// is preserved. The current price comes from the response metadata, not
// the last history sample; the two can differ because metadata reflects
// the most recent tick. Change is measured against the first surviving
// history sample; with no history at all the change is zero. A zero
// start price yields a zero percent change rather than a division fault.
func Normalize(symbol string, r Range, chart *market.ChartResponse) (*Quote, error) {
	if chart == nil || len(chart.Chart.Result) == 0 {
		return nil, ErrMalformedData
	}
	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrMalformedData
	}

	closes := result.Indicators.Quote[0].Close
	history := make([]float64, 0, len(closes))
	for _, c := range closes {
		if c != nil {
			history = append(history, *c)
		}
	}

	currentPrice := result.Meta.RegularMarketPrice
	startPrice := currentPrice
	if len(history) > 0 {
		startPrice = history[0]
	}
	change := currentPrice - startPrice

	changePercent := 0.0
	if startPrice != 0 {
		changePercent = change / startPrice * 100
	}

	name := result.Meta.ShortName
	if name == "" {
		name = symbol
	}

	return &Quote{
		ID:            symbol,
		Name:          name,
		Price:         currentPrice,
		Change:        change,
		ChangePercent: changePercent,
		History:       history,
		Range:         r,
	}, nil
}
