package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradesim-dev/tradesim/internal/models"
)

type ledgerRepo struct{ pool *pgxpool.Pool }

func (r *ledgerRepo) Balance(ctx context.Context, userID string) (decimal.Decimal, error) {
	var cash decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT cash FROM users WHERE id=$1`, userID,
	).Scan(&cash)
	return cash, err
}

// Debit is conditional on sufficient funds so the balance can never go
// negative, even under concurrent requests for the same user.
func (r *ledgerRepo) Debit(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error {
	tag, err := tx.Exec(ctx,
		`UPDATE users SET cash = cash - $2, updated_at = now() WHERE id=$1 AND cash >= $2`,
		userID, amount,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrInsufficientFunds
	}
	return nil
}

func (r *ledgerRepo) Credit(ctx context.Context, tx pgx.Tx, userID string, amount decimal.Decimal) error {
	_, err := tx.Exec(ctx,
		`UPDATE users SET cash = cash + $2, updated_at = now() WHERE id=$1`,
		userID, amount,
	)
	return err
}

func (r *ledgerRepo) Holding(ctx context.Context, userID, symbol string) (int64, error) {
	var shares int64
	err := r.pool.QueryRow(ctx,
		`SELECT shares FROM holdings WHERE user_id=$1 AND symbol=$2`,
		userID, symbol,
	).Scan(&shares)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return shares, err
}

func (r *ledgerRepo) Holdings(ctx context.Context, userID string) ([]models.Holding, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, symbol, shares, updated_at FROM holdings WHERE user_id=$1 ORDER BY symbol`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.UserID, &h.Symbol, &h.Shares, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *ledgerRepo) AdjustHolding(ctx context.Context, tx pgx.Tx, userID, symbol string, delta int64) error {
	if delta < 0 {
		// Rows sold down to zero stay in place.
		tag, err := tx.Exec(ctx,
			`UPDATE holdings SET shares = shares + $3, updated_at = now()
			  WHERE user_id=$1 AND symbol=$2 AND shares + $3 >= 0`,
			userID, symbol, delta,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return models.ErrInsufficientShares
		}
		return nil
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO holdings(user_id, symbol, shares) VALUES($1,$2,$3)
		 ON CONFLICT (user_id, symbol) DO UPDATE
		 SET shares = holdings.shares + EXCLUDED.shares, updated_at = now()`,
		userID, symbol, delta,
	)
	return err
}

func (r *ledgerRepo) AppendTransaction(ctx context.Context, tx pgx.Tx, t models.Transaction) (models.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := tx.QueryRow(ctx,
		`INSERT INTO transactions(id, user_id, symbol, price, shares)
		 VALUES($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		t.ID, t.UserID, t.Symbol, t.Price, t.Shares,
	).Scan(&t.CreatedAt)
	return t, err
}

func (r *ledgerRepo) History(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, symbol, price, shares, created_at
		   FROM transactions
		  WHERE user_id=$1
		  ORDER BY created_at DESC
		  LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Symbol, &t.Price, &t.Shares, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ledgerRepo) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
