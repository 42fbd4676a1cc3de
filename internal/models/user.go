package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCash is the starting balance credited to every new account.
var DefaultCash = decimal.RequireFromString("10000.00")

type User struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"`
	Cash         decimal.Decimal `json:"cash"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
