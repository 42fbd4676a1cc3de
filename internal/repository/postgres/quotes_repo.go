package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradesim-dev/tradesim/internal/models"
)

type quotesRepo struct{ pool *pgxpool.Pool }

func (r *quotesRepo) SaveSnapshot(ctx context.Context, s models.QuoteSnapshot) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quote_snapshots(symbol, price) VALUES($1,$2)`,
		s.Symbol, s.Price,
	)
	return err
}
