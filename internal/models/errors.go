package models

import "errors"

// Request-terminal failures. Each maps to a 4xx response; anything
// outside this list is treated as a storage/internal error (5xx).
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidShares      = errors.New("invalid shares")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	ErrUsernameTaken      = errors.New("username not available")
	ErrQuoteNotFound      = errors.New("invalid symbol")
)
