package quotes

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesim-dev/tradesim/internal/models"
)

func TestClientLookup(t *testing.T) {
	c := NewClient("https://quotes.test", "test-key")
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://quotes.test/stock/NFLX/quote",
		httpmock.NewStringResponder(200, `{"symbol":"NFLX","companyName":"Netflix, Inc.","latestPrice":634.52}`))

	q, err := c.Lookup(context.Background(), "nflx")
	require.NoError(t, err)
	assert.Equal(t, "NFLX", q.Symbol)
	assert.Equal(t, "Netflix, Inc.", q.Name)
	assert.True(t, q.Price.Equal(decimal.RequireFromString("634.52")), "got %s", q.Price)
}

func TestClientLookupNotFound(t *testing.T) {
	c := NewClient("https://quotes.test", "test-key")
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://quotes.test/stock/NOPE/quote",
		httpmock.NewStringResponder(404, "Unknown symbol"))

	_, err := c.Lookup(context.Background(), "NOPE")
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)
}

func TestClientLookupEmptySymbol(t *testing.T) {
	c := NewClient("https://quotes.test", "test-key")

	_, err := c.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)
}

func TestClientLookupUpstreamError(t *testing.T) {
	c := NewClient("https://quotes.test", "test-key")
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://quotes.test/stock/NFLX/quote",
		httpmock.NewStringResponder(500, "upstream exploded"))

	_, err := c.Lookup(context.Background(), "NFLX")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrQuoteNotFound)
}

func TestClientLookupBadBody(t *testing.T) {
	c := NewClient("https://quotes.test", "test-key")
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://quotes.test/stock/NFLX/quote",
		httpmock.NewStringResponder(200, `{}`))

	_, err := c.Lookup(context.Background(), "NFLX")
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)
}
