package api

import (
	"log/slog"
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/store"
)

// TransactionsHandler handles the stock movement log.
type TransactionsHandler struct {
	Store *store.Store
}

// List handles GET /api/transactions, most recent first.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	transactions := h.Store.Transactions()
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	jsonResponse(w, http.StatusOK, transactions)
}

// Create handles POST /api/transactions. The acting user defaults to the
// authenticated account when the request omits it.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.TransactionInput
	if err := decodeJSON(r, &input); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if input.Quantity <= 0 {
		jsonError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}
	if input.Type != model.TransactionIn && input.Type != model.TransactionOut {
		jsonError(w, http.StatusBadRequest, "type must be \"in\" or \"out\"")
		return
	}

	if input.User == "" {
		if claims := GetClaims(r.Context()); claims != nil {
			input.User = claims.Username
		}
	}

	tx, err := h.Store.AddTransaction(input)
	if err != nil {
		slog.Error("failed to record transaction", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to record transaction")
		return
	}

	jsonResponse(w, http.StatusCreated, tx)
}
