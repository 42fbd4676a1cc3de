package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesim-dev/tradesim/internal/models"
)

func TestPortfolioValuesHoldings(t *testing.T) {
	ledger := newFakeLedger()
	ledger.cash["u1"] = dec("9500.00")
	ledger.holdings[hkey("u1", "NFLX")] = 10
	provider := &fakeProvider{quotes: map[string]models.Quote{
		"NFLX": {Symbol: "NFLX", Name: "Netflix, Inc.", Price: dec("50.00")},
	}}
	svc := NewPortfolioService(ledger, provider)

	view, err := svc.Portfolio(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, view.Cash.Equal(dec("9500.00")))
	require.Len(t, view.Positions, 1)
	assert.Equal(t, "NFLX", view.Positions[0].Symbol)
	assert.True(t, view.Positions[0].Value.Equal(dec("500.00")))
	assert.True(t, view.Total.Equal(dec("10000.00")), "total %s", view.Total)
}

func TestPortfolioKeepsZeroShareRows(t *testing.T) {
	ledger := newFakeLedger()
	ledger.cash["u1"] = dec("100.00")
	ledger.holdings[hkey("u1", "NFLX")] = 0
	provider := &fakeProvider{quotes: map[string]models.Quote{
		"NFLX": {Symbol: "NFLX", Name: "Netflix, Inc.", Price: dec("50.00")},
	}}
	svc := NewPortfolioService(ledger, provider)

	view, err := svc.Portfolio(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, view.Positions, 1, "zero-share rows stay visible")
	assert.Zero(t, view.Positions[0].Shares)
	assert.True(t, view.Total.Equal(dec("100.00")))

	symbols, err := svc.HeldSymbols(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"NFLX"}, symbols)
}

func TestPortfolioFailsWhenQuoteUnavailable(t *testing.T) {
	ledger := newFakeLedger()
	ledger.cash["u1"] = dec("100.00")
	ledger.holdings[hkey("u1", "GONE")] = 5
	svc := NewPortfolioService(ledger, &fakeProvider{quotes: map[string]models.Quote{}})

	_, err := svc.Portfolio(context.Background(), "u1")
	assert.ErrorIs(t, err, models.ErrQuoteNotFound)
}
