package api

import (
	"net/http"

	"budgetzen-server/src/handlers"
	"budgetzen-server/src/middleware"
	"budgetzen-server/src/ratelimit"
	"budgetzen-server/src/service"

	"github.com/go-chi/chi/v5"
)

func NewRouter(svc *service.TransactionService, limiter *ratelimit.Limiter) *chi.Mux {
	r := chi.NewRouter()
	// The rate limiter runs first so rejected requests never reach body
	// parsing or route logic.
	r.Use(middleware.RateLimitMiddleware(limiter))
	r.Use(middleware.CORSMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the BudgetZen API!"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", handlers.GetTransactions(svc))
		r.Get("/summary/{user_id}", handlers.GetTransactionSummary(svc))
		r.Post("/", handlers.CreateTransaction(svc))
		r.Put("/{id}", handlers.UpdateTransaction(svc))
		r.Delete("/{id}", handlers.DeleteTransaction(svc))
	})

	return r
}
