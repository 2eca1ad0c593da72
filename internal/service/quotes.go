package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lifeboard/internal/models"
)

const defaultQuoteTimeout = 5 * time.Second

// HTTPQuoteProvider fetches quotes from a JSON endpoint of the form
// GET {base}/quote?symbol=SYM. Every call is bounded by the client timeout;
// a slow or absent provider never stalls a request indefinitely.
type HTTPQuoteProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPQuoteProvider(baseURL string, timeout time.Duration) *HTTPQuoteProvider {
	if timeout <= 0 {
		timeout = defaultQuoteTimeout
	}
	return &HTTPQuoteProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ QuoteProvider = (*HTTPQuoteProvider)(nil)

// Lookup performs the HTTP GET and unmarshals the JSON response.
func (p *HTTPQuoteProvider) Lookup(ctx context.Context, symbol string) (models.Quote, error) {
	addr := fmt.Sprintf("%s/quote?symbol=%s", p.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return models.Quote{}, fmt.Errorf("build quote request for %q: %w", symbol, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return models.Quote{}, fmt.Errorf("fetch quote for %q: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("fetch quote for %q: %s", symbol, resp.Status)
	}

	var q models.Quote
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return models.Quote{}, fmt.Errorf("decode quote for %q: %w", symbol, err)
	}
	if q.Symbol == "" {
		q.Symbol = symbol
	}
	if q.Currency == "" {
		q.Currency = "USD"
	}
	return q, nil
}
