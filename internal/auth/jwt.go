package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies the HS256 session tokens that stand
// in for server-side sessions. One token type, carried in the session
// cookie or an Authorization header.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Issue(userID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(tm.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(tm.issuer))
	if err != nil || claims.UserID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
