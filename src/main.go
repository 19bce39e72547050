package main

import (
	"context"
	"log"
	"net/http"

	"budgetzen-server/src/api"
	"budgetzen-server/src/config"
	"budgetzen-server/src/db"
	sqldb "budgetzen-server/src/db/sql"
	"budgetzen-server/src/ratelimit"
	"budgetzen-server/src/service"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func main() {
	// Amounts serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	log.Println("Database initialized successfully")

	db.InitCache()

	// Rate limit counters live in Redis so the budget holds across
	// server instances.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	limiter := ratelimit.New(ratelimit.NewRedisCounterStore(rdb), cfg.RateLimitRequests, cfg.RateLimitWindow)

	svc := service.NewTransactionService(sqldb.NewTransactionStore(pool))

	// Router
	router := api.NewRouter(svc, limiter)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
