package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/tradesim-dev/tradesim/internal/repository"
)

type Repositories struct {
	Users  repo.Users
	Ledger repo.Ledger
	Quotes repo.Quotes
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:  &usersRepo{pool},
		Ledger: &ledgerRepo{pool},
		Quotes: &quotesRepo{pool},
	}
}
