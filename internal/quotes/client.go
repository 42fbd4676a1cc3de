package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradesim-dev/tradesim/internal/models"
)

// Provider resolves a ticker symbol to a current quote. A symbol the
// upstream does not know yields models.ErrQuoteNotFound.
type Provider interface {
	Lookup(ctx context.Context, symbol string) (models.Quote, error)
}

// Client fetches quotes from an IEX-style REST endpoint:
// GET {base}/stock/{symbol}/quote?token={key}
type Client struct {
	// HTTPClient may be swapped out, e.g. for a mock transport.
	HTTPClient *http.Client

	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type quoteResponse struct {
	Symbol      string      `json:"symbol"`
	CompanyName string      `json:"companyName"`
	LatestPrice json.Number `json:"latestPrice"`
}

func (c *Client) Lookup(ctx context.Context, symbol string) (models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return models.Quote{}, models.ErrQuoteNotFound
	}

	u := fmt.Sprintf("%s/stock/%s/quote?token=%s", c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Quote{}, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Quote{}, models.ErrQuoteNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("quote lookup: unexpected status %d", resp.StatusCode)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Quote{}, fmt.Errorf("quote lookup: %w", err)
	}
	if body.Symbol == "" || body.LatestPrice == "" {
		return models.Quote{}, models.ErrQuoteNotFound
	}
	price, err := decimal.NewFromString(body.LatestPrice.String())
	if err != nil {
		return models.Quote{}, fmt.Errorf("quote lookup: bad price %q: %w", body.LatestPrice, err)
	}

	return models.Quote{Symbol: body.Symbol, Name: body.CompanyName, Price: price}, nil
}
