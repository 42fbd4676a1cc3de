package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tradesim-dev/tradesim/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	// GetByUsername matches case-insensitively.
	GetByUsername(ctx context.Context, username string) (models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// Ledger owns the three trading relations: cash balances, holdings and
// the append-only history. Mutations take the enclosing pgx.Tx so a use
// case's writes commit or roll back as one unit.
type Ledger interface {
	Balance(ctx context.Context, userID string) (decimal.Decimal, error)
	// Debit fails with models.ErrInsufficientFunds when amount exceeds
	// the current balance.
	Debit(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error
	Credit(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error

	// Holding returns 0 when the user has no row for symbol.
	Holding(ctx context.Context, userID, symbol string) (int64, error)
	Holdings(ctx context.Context, userID string) ([]models.Holding, error)
	// AdjustHolding upserts the (user, symbol) row by delta. A delta that
	// would take shares below zero fails with models.ErrInsufficientShares.
	// A row reaching zero is kept, not deleted.
	AdjustHolding(ctx context.Context, tx pgx.Tx, userID, symbol string, delta int64) error

	AppendTransaction(ctx context.Context, tx pgx.Tx, t models.Transaction) (models.Transaction, error)
	History(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)

	WithTx(ctx context.Context, fn func(pgx.Tx) error) error
}

type Quotes interface {
	SaveSnapshot(ctx context.Context, s models.QuoteSnapshot) error
}
