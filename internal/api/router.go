package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/tradesim-dev/tradesim/internal/auth"
	"github.com/tradesim-dev/tradesim/internal/config"
	"github.com/tradesim-dev/tradesim/internal/metrics"
	"github.com/tradesim-dev/tradesim/internal/middleware"
)

type RouterDeps struct {
	Users     UserDirectory
	Trader    Trader
	Portfolio PortfolioReader
	Quotes    QuoteLookup
	TM        *auth.TokenManager
}

// NewRouter wires the page surface: /, /buy, /sell, /quote, /history
// and /password behind the session check, auth routes open.
func NewRouter(cfg config.Config, deps RouterDeps) http.Handler {
	h := &handlers{
		users:     deps.Users,
		trader:    deps.Trader,
		portfolio: deps.Portfolio,
		quotes:    deps.Quotes,
		tm:        deps.TM,
		secure:    cfg.Env == "prod",
	}
	sess := middleware.NewSession(deps.TM)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.NoCache,
		middleware.HTTPMetrics, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// form pages are rendered client-side; GET just answers
	formPage := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	r.Get("/login", formPage)
	r.Post("/login", h.login)
	r.Get("/register", formPage)
	r.Post("/register", h.register)
	r.Get("/logout", h.logout)
	r.Post("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(sess.Require)
		r.Get("/", h.index)
		r.Get("/buy", formPage)
		r.Post("/buy", h.buy)
		r.Get("/sell", h.sellForm)
		r.Post("/sell", h.sell)
		r.Get("/quote", h.quote)
		r.Post("/quote", h.quote)
		r.Get("/history", h.history)
		r.Get("/password", formPage)
		r.Post("/password", h.changePassword)
	})

	return r
}
