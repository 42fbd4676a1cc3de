package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradesim-dev/tradesim/internal/models"
)

// ParseShares validates a raw share-quantity field. Only values that
// parse as a number with no fractional part and greater than zero are
// accepted ("10" and "10.0" yield 10); anything else is ErrInvalidShares.
// Shared by the buy and sell flows.
func ParseShares(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, models.ErrInvalidShares
	}
	if !d.IsInteger() || d.Sign() <= 0 {
		return 0, models.ErrInvalidShares
	}
	// IntPart wraps beyond int64; a quantity that large is rejected,
	// not silently traded as something smaller.
	if !d.BigInt().IsInt64() {
		return 0, models.ErrInvalidShares
	}
	return d.IntPart(), nil
}
