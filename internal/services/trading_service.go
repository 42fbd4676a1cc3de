package services

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tradesim-dev/tradesim/internal/metrics"
	"github.com/tradesim-dev/tradesim/internal/models"
	"github.com/tradesim-dev/tradesim/internal/quotes"
	repo "github.com/tradesim-dev/tradesim/internal/repository"
	"github.com/tradesim-dev/tradesim/internal/worker"
)

// TradingService runs the buy and sell use cases. Each use case's three
// ledger writes commit or roll back as a single database transaction.
type TradingService struct {
	ledger repo.Ledger
	quotes quotes.Provider
	snaps  repo.Quotes
	wp     *worker.Pool
}

func NewTradingService(ledger repo.Ledger, q quotes.Provider, snaps repo.Quotes, wp *worker.Pool) *TradingService {
	return &TradingService{ledger: ledger, quotes: q, snaps: snaps, wp: wp}
}

// Buy validates the request, resolves the quote, then debits cash,
// raises the holding and appends the history row atomically. A cost
// above the current balance fails with ErrInsufficientFunds and leaves
// the ledger untouched.
func (s *TradingService) Buy(ctx context.Context, userID, symbol, sharesRaw string) (models.Transaction, error) {
	shares, err := ParseShares(sharesRaw)
	if err != nil {
		return models.Transaction{}, err
	}
	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return models.Transaction{}, err
	}
	cost := q.Price.Mul(decimal.NewFromInt(shares))

	var out models.Transaction
	err = s.ledger.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.ledger.Debit(ctx, tx, userID, cost); err != nil {
			return err
		}
		if err := s.ledger.AdjustHolding(ctx, tx, userID, q.Symbol, shares); err != nil {
			return err
		}
		out, err = s.ledger.AppendTransaction(ctx, tx, models.Transaction{
			UserID: userID,
			Symbol: q.Symbol,
			Price:  q.Price,
			Shares: shares,
		})
		return err
	})
	if err != nil {
		metrics.TradesFailed.Inc()
		return models.Transaction{}, err
	}

	metrics.TradesTotal.WithLabelValues("buy").Inc()
	s.snapshot(q)
	return out, nil
}

// Sell validates the request against the stored holding, then lowers
// the holding, appends the history row and credits the proceeds
// atomically. Requesting more shares than held fails with
// ErrInvalidShares and leaves the ledger untouched.
func (s *TradingService) Sell(ctx context.Context, userID, symbol, sharesRaw string) (models.Transaction, error) {
	shares, err := ParseShares(sharesRaw)
	if err != nil {
		return models.Transaction{}, err
	}
	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return models.Transaction{}, err
	}
	held, err := s.ledger.Holding(ctx, userID, q.Symbol)
	if err != nil {
		return models.Transaction{}, err
	}
	if shares > held {
		return models.Transaction{}, models.ErrInvalidShares
	}
	proceeds := q.Price.Mul(decimal.NewFromInt(shares))

	var out models.Transaction
	err = s.ledger.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.ledger.AdjustHolding(ctx, tx, userID, q.Symbol, -shares); err != nil {
			return err
		}
		out, err = s.ledger.AppendTransaction(ctx, tx, models.Transaction{
			UserID: userID,
			Symbol: q.Symbol,
			Price:  q.Price,
			Shares: -shares,
		})
		if err != nil {
			return err
		}
		return s.ledger.Credit(ctx, tx, userID, proceeds)
	})
	if err != nil {
		metrics.TradesFailed.Inc()
		return models.Transaction{}, err
	}

	metrics.TradesTotal.WithLabelValues("sell").Inc()
	s.snapshot(q)
	return out, nil
}

// snapshot records the quote off the request path.
func (s *TradingService) snapshot(q models.Quote) {
	if s.wp == nil || s.snaps == nil {
		return
	}
	s.wp.Submit(func() {
		snap := models.QuoteSnapshot{Symbol: q.Symbol, Price: q.Price}
		if err := s.snaps.SaveSnapshot(context.Background(), snap); err != nil {
			slog.Warn("quote snapshot", "symbol", q.Symbol, "err", err)
		}
	})
}
