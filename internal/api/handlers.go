package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/tradesim-dev/tradesim/internal/api/httpx"
	"github.com/tradesim-dev/tradesim/internal/auth"
	"github.com/tradesim-dev/tradesim/internal/middleware"
	"github.com/tradesim-dev/tradesim/internal/models"
)

// The handlers depend on what they use, not on the concrete services,
// so tests can drive the router with stubs.

type UserDirectory interface {
	Register(ctx context.Context, username, password, confirmation string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	ChangePassword(ctx context.Context, userID, current, newPassword, confirmation string) error
}

type Trader interface {
	Buy(ctx context.Context, userID, symbol, shares string) (models.Transaction, error)
	Sell(ctx context.Context, userID, symbol, shares string) (models.Transaction, error)
}

type PortfolioReader interface {
	Portfolio(ctx context.Context, userID string) (models.PortfolioView, error)
	History(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
	HeldSymbols(ctx context.Context, userID string) ([]string, error)
}

type QuoteLookup interface {
	Lookup(ctx context.Context, symbol string) (models.Quote, error)
}

type handlers struct {
	users     UserDirectory
	trader    Trader
	portfolio PortfolioReader
	quotes    QuoteLookup
	tm        *auth.TokenManager
	secure    bool
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Register(r.Context(),
		r.FormValue("username"), r.FormValue("password"), r.FormValue("confirmation"))
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Authenticate(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	token, exp, err := h.tm.Issue(u.ID)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	view, err := h.portfolio.Portfolio(r.Context(), uid)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *handlers) quote(w http.ResponseWriter, r *http.Request) {
	symbol := r.FormValue("symbol")
	if symbol == "" {
		symbol = r.URL.Query().Get("symbol")
	}
	q, err := h.quotes.Lookup(r.Context(), symbol)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, q)
}

func (h *handlers) buy(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	t, err := h.trader.Buy(r.Context(), uid, r.FormValue("symbol"), r.FormValue("shares"))
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Bought!", "transaction": t})
}

func (h *handlers) sell(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	t, err := h.trader.Sell(r.Context(), uid, r.FormValue("symbol"), r.FormValue("shares"))
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Sold!", "transaction": t})
}

// sellForm backs the sell page: the symbols the user can sell.
func (h *handlers) sellForm(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	symbols, err := h.portfolio.HeldSymbols(r.Context(), uid)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"symbols": symbols})
}

func (h *handlers) history(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())

	limit, offset := 50, 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	txs, err := h.portfolio.History(r.Context(), uid, limit, offset)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, txs)
}

func (h *handlers) changePassword(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	err := h.users.ChangePassword(r.Context(), uid,
		r.FormValue("c_password"), r.FormValue("n_password"), r.FormValue("confirmation"))
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Password changed"})
}
