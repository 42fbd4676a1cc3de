package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionSide(t *testing.T) {
	assert.Equal(t, "buy", Transaction{Shares: 10}.Side())
	assert.Equal(t, "sell", Transaction{Shares: -4}.Side())
}

func TestTransactionJSONCarriesSide(t *testing.T) {
	tx := Transaction{
		ID:     "txn-1",
		UserID: "user-1",
		Symbol: "NFLX",
		Price:  decimal.RequireFromString("60.00"),
		Shares: -4,
	}
	b, err := json.Marshal(tx)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "sell", out["side"])
	assert.Equal(t, "NFLX", out["symbol"])
	assert.Equal(t, float64(-4), out["shares"])
}
