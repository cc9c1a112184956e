package http

import (
	"net/http"

	"kakeibo/internal/core"
	"kakeibo/internal/storage"
)

type transactionCreateRequest struct {
	Date        core.DateTime        `json:"date"`
	Description string               `json:"description"`
	Amount      float64              `json:"amount"`
	Type        core.TransactionType `json:"type"`
	CategoryID  *int64               `json:"category_id"`
	AccountID   *int64               `json:"account_id"`
	Memo        string               `json:"memo"`
	IsRecurring int                  `json:"is_recurring"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := storage.TransactionFilter{
		CategoryID: queryID(r, "category_id"),
		AccountID:  queryID(r, "account_id"),
		Type:       core.TransactionType(r.URL.Query().Get("type")),
		Skip:       queryInt(r, "skip", 0),
		Limit:      queryInt(r, "limit", 100),
	}

	if v := r.URL.Query().Get("start_date"); v != "" {
		start, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start_date")
			return
		}
		filter.StartDate = &start
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		end, err := core.ParseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end_date")
			return
		}
		filter.EndDate = &end
	}

	transactions, err := s.transactions.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	transaction, err := s.transactions.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transaction)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	created, err := s.transactions.Create(r.Context(), core.Transaction{
		Date:        req.Date.Time,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		Memo:        req.Memo,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var patch core.TransactionPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.transactions.Update(r.Context(), id, patch)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	if err := s.transactions.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
