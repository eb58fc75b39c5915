package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"SignalSentry/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	Client *http.Client
	Suffix string // exchange suffix appended to bare symbols, e.g. ".NS"
	Retry  RetryPolicy
}

// NewYahooFetcher creates a Yahoo Finance fetcher with optional proxy
// support and the given retry policy.
func NewYahooFetcher(suffix, proxyURL string, retry RetryPolicy) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryPolicy
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		Suffix: suffix,
		Retry:  retry,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooSymbol normalizes a user symbol: uppercase, exchange suffix appended
// unless the symbol already carries one (or is an index like ^NSEI).
func (f *YahooFetcher) yahooSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if f.Suffix == "" || strings.HasPrefix(s, "^") || strings.Contains(s, ".") {
		return s
	}
	return s + f.Suffix
}

// yahooChart is the response structure from the Yahoo chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetchOnce performs a single chart request without retrying.
func (f *YahooFetcher) fetchOnce(symbol, interval, rng string) (*model.PriceSeries, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(f.yahooSymbol(symbol)), interval, rng)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d", resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	series := &model.PriceSeries{
		Symbol:    strings.ToUpper(strings.TrimSpace(symbol)),
		Points:    make([]model.PricePoint, 0, len(result.Timestamp)),
		FetchedAt: time.Now(),
	}
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bars: holidays, halted sessions
		}
		series.Points = append(series.Points, model.PricePoint{
			Time:  time.Unix(ts, 0),
			Close: *quote.Close[i],
		})
	}
	if len(series.Points) == 0 {
		return nil, fmt.Errorf("yahoo: empty series")
	}

	sort.Slice(series.Points, func(i, j int) bool {
		return series.Points[i].Time.Before(series.Points[j].Time)
	})
	return series, nil
}

// FetchCloses retries per the injected policy, then reports unavailable.
func (f *YahooFetcher) FetchCloses(symbol, rng, interval string) (*model.PriceSeries, error) {
	var lastErr error
	for attempt := 1; attempt <= f.Retry.MaxAttempts; attempt++ {
		series, err := f.fetchOnce(symbol, interval, rng)
		if err == nil {
			return series, nil
		}
		lastErr = err
		if attempt < f.Retry.MaxAttempts {
			log.Printf("[WARN] fetch %s (attempt %d/%d): %v", symbol, attempt, f.Retry.MaxAttempts, err)
			time.Sleep(f.Retry.Backoff)
		}
	}
	return nil, fmt.Errorf("%w: %s: %v", model.ErrUnavailable, symbol, lastErr)
}

func (f *YahooFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	series, err := f.FetchCloses(symbol, "1d", "1d")
	if err != nil {
		return 0, err
	}
	return series.Points[len(series.Points)-1].Close, nil
}
