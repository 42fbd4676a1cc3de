package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a point-in-time price for a ticker.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Position is one portfolio line: a holding valued at the live quote.
type Position struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Shares int64           `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

type PortfolioView struct {
	Cash      decimal.Decimal `json:"cash"`
	Positions []Position      `json:"positions"`
	Total     decimal.Decimal `json:"total"`
}

// QuoteSnapshot is a persisted price observation, recorded off the hot
// path after each successful lookup.
type QuoteSnapshot struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	FetchedAt time.Time       `json:"fetched_at"`
}
