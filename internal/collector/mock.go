package collector

import (
	"time"

	"SignalSentry/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price  float64
	Closes []float64
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCloses(symbol, rng, interval string) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	closes := m.Closes
	series := &model.PriceSeries{
		Symbol:    symbol,
		Points:    make([]model.PricePoint, len(closes)),
		FetchedAt: time.Now(),
	}
	base := time.Now().AddDate(0, 0, -len(closes))
	for i, c := range closes {
		series.Points[i] = model.PricePoint{Time: base.AddDate(0, 0, i), Close: c}
	}
	return series, nil
}

func (m *MockFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Price, nil
}
