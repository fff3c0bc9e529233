package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"stockboard/internal/market"
	"stockboard/internal/quote"
	"stockboard/internal/store"
)

// ErrInvalidSymbol indicates a symbol that failed its validation fetch
// at add time. Nothing is persisted for such symbols.
var ErrInvalidSymbol = errors.New("invalid stock symbol")

// Service combines the symbol store with the upstream fetcher to
// produce portfolio and growth views.
type Service struct {
	store        store.Store
	fetcher      market.Fetcher
	concurrency  int
	fetchTimeout time.Duration
}

// NewService creates a new Service. concurrency bounds the number of
// in-flight upstream calls per view request; fetchTimeout bounds each
// individual call so one deaf ticker cannot stall the whole view.
func NewService(st store.Store, fetcher market.Fetcher, concurrency int, fetchTimeout time.Duration) *Service {
	if concurrency <= 0 {
		concurrency = 1
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	return &Service{
		store:        st,
		fetcher:      fetcher,
		concurrency:  concurrency,
		fetchTimeout: fetchTimeout,
	}
}

// View returns one Quote per tracked symbol for the requested range.
// Symbols whose fetch or normalization failed are omitted; a single bad
// ticker never fails the whole response. Output follows store order.
func (s *Service) View(ctx context.Context, r quote.Range) ([]quote.Quote, error) {
	symbols, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}

	quotes := s.fanOut(ctx, symbols, r)

	out := make([]quote.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q != nil {
			out = append(out, *q)
		}
	}
	return out, nil
}

// GrowthView returns one Quote per curated growth ticker at the default
// one-day range, with the static name and potential tag merged in.
// Failed tickers are omitted.
func (s *Service) GrowthView(ctx context.Context) ([]quote.Quote, error) {
	symbols := make([]string, len(growthTickers))
	for i, g := range growthTickers {
		symbols[i] = g.Symbol
	}

	quotes := s.fanOut(ctx, symbols, quote.Range1d)

	out := make([]quote.Quote, 0, len(quotes))
	for i, q := range quotes {
		if q == nil {
			continue
		}
		q.Name = growthTickers[i].Name
		q.Potential = growthTickers[i].Potential
		out = append(out, *q)
	}
	return out, nil
}

// Add validates the symbol against the upstream before persisting it.
// The store never contains a symbol proven unfetchable at add time.
func (s *Service) Add(ctx context.Context, symbol string) (*quote.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}

	q, err := s.fetchQuote(ctx, symbol, quote.Range1d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSymbol, symbol)
	}

	if _, err := s.store.Add(ctx, symbol); err != nil {
		return nil, fmt.Errorf("persist %s: %w", symbol, err)
	}
	return q, nil
}

// Remove deletes the symbol from the store. Absence is not an error.
func (s *Service) Remove(ctx context.Context, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if _, err := s.store.Remove(ctx, symbol); err != nil {
		return fmt.Errorf("remove %s: %w", symbol, err)
	}
	return nil
}

// Search resolves a free-text query to a canonical symbol.
func (s *Service) Search(ctx context.Context, query string) (market.SearchResult, error) {
	return s.fetcher.Search(ctx, query)
}

// fanOut fetches and normalizes the given symbols concurrently, bounded
// by the configured concurrency limit. The result slice is aligned with
// the input; failed symbols are left nil so callers can still match
// survivors back to their position.
func (s *Service) fanOut(ctx context.Context, symbols []string, r quote.Range) []*quote.Quote {
	results := make([]*quote.Quote, len(symbols))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	wg.Add(len(symbols))

	for i, sym := range symbols {
		go func(i int, sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			q, err := s.fetchQuote(ctx, sym, r)
			if err != nil {
				log.Printf("[WARN] dropping %s from view: %v", sym, err)
				return
			}
			results[i] = q
		}(i, sym)
	}

	wg.Wait()
	return results
}

func (s *Service) fetchQuote(ctx context.Context, symbol string, r quote.Range) (*quote.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	span, interval := quote.Resolve(r)
	chart, err := s.fetcher.FetchChart(ctx, symbol, span, interval)
	if err != nil {
		return nil, err
	}
	return quote.Normalize(symbol, r, chart)
}
