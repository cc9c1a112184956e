package http

import (
	"net/http"
	"time"

	"kakeibo/internal/log"
	"kakeibo/internal/middleware/trace"
	"kakeibo/internal/services"
	"kakeibo/internal/storage"
)

// Server exposes the ledger as a JSON REST API.
type Server struct {
	http.Server

	repo         *storage.SQLiteRepository
	transactions *services.TransactionService
	importer     *services.Importer
	reports      *services.ReportService

	logger          *log.Logger
	traceMiddleware *trace.Middleware
	startedAt       time.Time
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, repo *storage.SQLiteRepository, logger *log.Logger) *Server {
	categorizer := services.NewCategorizer(repo)
	transactions := services.NewTransactionService(repo, categorizer)

	s := &Server{
		repo:            repo,
		transactions:    transactions,
		importer:        services.NewImporter(transactions, repo),
		reports:         services.NewReportService(repo),
		logger:          logger,
		traceMiddleware: trace.NewMiddleware(),
		startedAt:       time.Now(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/accounts", s.handleListAccounts)
	mux.HandleFunc("POST /api/accounts", s.handleCreateAccount)
	mux.HandleFunc("GET /api/accounts/{id}", s.handleGetAccount)
	mux.HandleFunc("PUT /api/accounts/{id}", s.handleUpdateAccount)
	mux.HandleFunc("DELETE /api/accounts/{id}", s.handleDeleteAccount)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleCreateCategory)
	mux.HandleFunc("GET /api/categories/{id}", s.handleGetCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleUpdateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", s.handleGetTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	mux.HandleFunc("POST /api/import/csv", s.handleImportCSV)
	mux.HandleFunc("GET /api/import/template", s.handleImportTemplate)

	mux.HandleFunc("GET /api/reports/monthly/{year}/{month}", s.handleMonthlyReport)
	mux.HandleFunc("GET /api/reports/current-month", s.handleCurrentMonthReport)

	s.Server = http.Server{
		Addr:    addr,
		Handler: s.traceMiddleware.Middleware(log.AccessLog(logger)(mux)),
	}

	return s
}
