package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"budgetzen-server/src/db"
	"budgetzen-server/src/models"
	"budgetzen-server/src/service"

	"github.com/go-chi/chi/v5"
)

func GetTransactions(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")

		cacheKey := "txns:" + userID
		if cached, found := db.Cache.Get(cacheKey); found {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		txns, err := svc.List(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to fetch transactions for user %q: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to fetch transactions")
			return
		}
		db.SetTransactionCache(cacheKey, txns)
		writeJSON(w, http.StatusOK, txns)
	}
}

func GetTransactionSummary(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user_id")

		cacheKey := "summary:" + userID
		if cached, found := db.Cache.Get(cacheKey); found {
			writeJSON(w, http.StatusOK, cached)
			return
		}

		summary, err := svc.Summary(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to fetch summary for user %q: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "failed to fetch summary")
			return
		}
		db.SetSummaryCache(cacheKey, summary)
		writeJSON(w, http.StatusOK, summary)
	}
}

func CreateTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.TransactionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.Create(r.Context(), &in)
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to insert transaction for user %q: %v", in.UserID, err)
			writeError(w, http.StatusInternalServerError, "failed to insert transaction")
			return
		}

		db.ClearAllTransactionCaches()
		db.ClearAllSummaryCaches()
		log.Printf("INFO: Created transaction id %d for user %s", created.ID, created.UserID)
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", idStr)
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}

		var in models.TransactionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := svc.Update(r.Context(), id, &in)
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to update transaction id %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to update transaction")
			return
		}

		db.ClearAllTransactionCaches()
		db.ClearAllSummaryCaches()
		log.Printf("INFO: Updated transaction id %d for user %s", updated.ID, updated.UserID)
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(svc *service.TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", idStr)
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}

		deleted, err := svc.Delete(r.Context(), id)
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to delete transaction id %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to delete transaction")
			return
		}

		db.ClearAllTransactionCaches()
		db.ClearAllSummaryCaches()
		log.Printf("INFO: Deleted transaction id %d for user %s", deleted.ID, deleted.UserID)
		writeJSON(w, http.StatusOK, deleted)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Client-facing error bodies carry a fixed message only; driver detail
// stays in the server log.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
