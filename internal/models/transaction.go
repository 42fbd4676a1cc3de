package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one buy or sell. Shares is the
// signed delta: positive for a buy, negative for a sell.
type Transaction struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Shares    int64           `json:"shares"`
	CreatedAt time.Time       `json:"created_at"`
}

func (t Transaction) Side() string {
	if t.Shares < 0 {
		return "sell"
	}
	return "buy"
}

// MarshalJSON adds the buy/sell label the history view shows.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	return json.Marshal(struct {
		alias
		Side string `json:"side"`
	}{alias(t), t.Side()})
}
