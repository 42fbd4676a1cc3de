package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tradesim-dev/tradesim/internal/models"
	"github.com/tradesim-dev/tradesim/internal/quotes"
	repo "github.com/tradesim-dev/tradesim/internal/repository"
)

type PortfolioService struct {
	ledger repo.Ledger
	quotes quotes.Provider
}

func NewPortfolioService(ledger repo.Ledger, q quotes.Provider) *PortfolioService {
	return &PortfolioService{ledger: ledger, quotes: q}
}

// Portfolio values every holding at its live quote and totals them with
// cash. Zero-share rows stay visible.
func (s *PortfolioService) Portfolio(ctx context.Context, userID string) (models.PortfolioView, error) {
	cash, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return models.PortfolioView{}, err
	}
	holdings, err := s.ledger.Holdings(ctx, userID)
	if err != nil {
		return models.PortfolioView{}, err
	}

	view := models.PortfolioView{Cash: cash, Total: cash}
	for _, h := range holdings {
		q, err := s.quotes.Lookup(ctx, h.Symbol)
		if err != nil {
			return models.PortfolioView{}, err
		}
		value := q.Price.Mul(decimal.NewFromInt(h.Shares))
		view.Positions = append(view.Positions, models.Position{
			Symbol: h.Symbol,
			Name:   q.Name,
			Shares: h.Shares,
			Price:  q.Price,
			Value:  value,
		})
		view.Total = view.Total.Add(value)
	}
	return view, nil
}

func (s *PortfolioService) History(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	return s.ledger.History(ctx, userID, limit, offset)
}

// HeldSymbols lists the symbols in the user's wallet for the sell form.
func (s *PortfolioService) HeldSymbols(ctx context.Context, userID string) ([]string, error) {
	holdings, err := s.ledger.Holdings(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, h.Symbol)
	}
	return out, nil
}
