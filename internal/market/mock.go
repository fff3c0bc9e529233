package market

import "context"

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Charts    map[string]*ChartResponse
	ChartErr  map[string]error
	SearchRes SearchResult
	SearchErr error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchChart(_ context.Context, symbol, _, _ string) (*ChartResponse, error) {
	if err, ok := m.ChartErr[symbol]; ok {
		return nil, err
	}
	if chart, ok := m.Charts[symbol]; ok {
		return chart, nil
	}
	return nil, ErrUpstreamUnavailable
}

func (m *MockFetcher) Search(_ context.Context, _ string) (SearchResult, error) {
	if m.SearchErr != nil {
		return SearchResult{}, m.SearchErr
	}
	return m.SearchRes, nil
}

// MockChart builds a chart response with the given live price, short name
// and close series. Nil closes model closed-market gaps.
func MockChart(name string, price float64, closes []*float64) *ChartResponse {
	chart := &ChartResponse{}
	result := ChartResult{}
	result.Meta.ShortName = name
	result.Meta.RegularMarketPrice = price
	result.Timestamp = make([]int64, len(closes))
	for i := range closes {
		result.Timestamp[i] = int64(i)
	}
	result.Indicators.Quote = append(result.Indicators.Quote, struct {
		Close []*float64 `json:"close"`
	}{Close: closes})
	chart.Chart.Result = append(chart.Chart.Result, result)
	return chart
}
