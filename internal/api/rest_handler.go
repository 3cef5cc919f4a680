package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bank_teller/internal/domain"
	"bank_teller/internal/processor"
	"bank_teller/internal/report"
	"bank_teller/internal/service"
	"bank_teller/pkg/crypto"
	"bank_teller/pkg/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type APIHandler struct {
	teller         *processor.Teller
	metrics        *metrics.MetricsCollector
	signer         *crypto.Signer
	journal        *service.Journal
	logger         *slog.Logger
	requestTimeout time.Duration
}

func NewAPIHandler(
	teller *processor.Teller,
	metrics *metrics.MetricsCollector,
	signer *crypto.Signer,
	journal *service.Journal,
	logger *slog.Logger,
) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &APIHandler{
		teller:         teller,
		metrics:        metrics,
		signer:         signer,
		journal:        journal,
		logger:         logger,
		requestTimeout: 30 * time.Second,
	}
}

// AccountRequest is the body of every account operation. Amount is a string
// so the teller sees exactly what was typed.
type AccountRequest struct {
	Kind      string `json:"kind"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	Amount    string `json:"amount,omitempty"`
	Loyal     bool   `json:"loyal,omitempty"`
	Campus    string `json:"campus,omitempty"`
}

func (r AccountRequest) toTellerRequest() processor.Request {
	return processor.Request{
		Kind:      r.Kind,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		DOB:       r.DOB,
		Amount:    r.Amount,
		Loyal:     r.Loyal,
		Campus:    r.Campus,
	}
}

type OperationResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type tellerOperation func(context.Context, processor.Request) (string, error)

func (h *APIHandler) OpenHandler(w http.ResponseWriter, r *http.Request) {
	h.runOperation(w, r, service.OperationOpen, h.teller.Open)
}

func (h *APIHandler) CloseHandler(w http.ResponseWriter, r *http.Request) {
	h.runOperation(w, r, service.OperationClose, h.teller.Close)
}

func (h *APIHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.runOperation(w, r, service.OperationDeposit, h.teller.Deposit)
}

func (h *APIHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.runOperation(w, r, service.OperationWithdraw, h.teller.Withdraw)
}

func (h *APIHandler) runOperation(w http.ResponseWriter, r *http.Request, op service.Operation, run tellerOperation) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	var body AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.sendError(w, "Invalid request body", http.StatusBadRequest, "INVALID_REQUEST")
		return
	}

	message, err := run(ctx, body.toTellerRequest())
	h.metrics.RecordOperation(string(op), err == nil, time.Since(startTime))

	holder := strings.TrimSpace(body.FirstName + " " + body.LastName)
	if err != nil {
		h.handleTellerError(ctx, w, op, body.Kind, holder, err)
		return
	}

	h.journal.Record(ctx, op, body.Kind, holder, message, true)
	h.refreshLedgerGauges(ctx)

	status := http.StatusOK
	if message == processor.MsgOpened {
		status = http.StatusCreated
	}
	h.sendJSON(w, OperationResponse{Message: message}, status)
}

func (h *APIHandler) handleTellerError(ctx context.Context, w http.ResponseWriter, op service.Operation, kind, holder string, err error) {
	var rejection *processor.Rejection
	if !errors.As(err, &rejection) {
		h.logger.ErrorContext(ctx, "Teller operation failed",
			slog.String("operation", string(op)),
			slog.String("error", err.Error()))
		h.journal.Record(ctx, op, kind, holder, "internal error", false)
		h.sendError(w, "Operation failed", http.StatusInternalServerError, "SERVER_ERROR")
		return
	}

	h.journal.Record(ctx, op, kind, holder, rejection.Message, false)
	status, code := statusFor(rejection.Err)
	h.sendError(w, rejection.Message, status, code)
}

// AccountsReportHandler lists the ledger in stored order, or sorted by
// account type when order=type. Sorting is kept by the ledger.
func (h *APIHandler) AccountsReportHandler(w http.ResponseWriter, r *http.Request) {
	name, render := "accounts", h.teller.Print
	if r.URL.Query().Get("order") == "type" {
		name, render = "accounts_by_type", h.teller.PrintByAccountType
	}
	h.sendReport(w, r, name, render)
}

func (h *APIHandler) FeesReportHandler(w http.ResponseWriter, r *http.Request) {
	h.sendReport(w, r, "fees", h.teller.PrintFeeAndInterest)
}

func (h *APIHandler) MonthlyUpdateHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	h.sendReport(w, r, "monthly_update", func(ctx context.Context) (string, error) {
		out, err := h.teller.PrintWithUpdatedBalance(ctx)
		h.metrics.RecordOperation(string(service.OperationMonthlyUpdate), err == nil, time.Since(startTime))
		if err == nil {
			h.journal.Record(ctx, service.OperationMonthlyUpdate, "", "", "Monthly fee and interest applied.", true)
			h.refreshLedgerGauges(ctx)
		}
		return out, err
	})
}

func (h *APIHandler) sendReport(w http.ResponseWriter, r *http.Request, name string, render func(context.Context) (string, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	out, err := render(ctx)
	if err != nil {
		h.handleReportError(ctx, w, name, err)
		return
	}

	body := []byte(out)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(crypto.SignatureHeader, h.signer.SignReport(name, body))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write report", slog.String("error", err.Error()))
	}
}

func (h *APIHandler) AccountsExportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	accounts := h.teller.Accounts(ctx)
	if len(accounts) == 0 {
		h.sendError(w, processor.MsgEmptyLedger, http.StatusNotFound, "EMPTY_LEDGER")
		return
	}

	var buf bytes.Buffer
	if err := report.WriteAccountsXLSX(&buf, accounts); err != nil {
		h.logger.ErrorContext(ctx, "Account export failed", slog.String("error", err.Error()))
		h.sendError(w, "Failed to export accounts", http.StatusInternalServerError, "SERVER_ERROR")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="accounts.xlsx"`)
	w.Header().Set(crypto.SignatureHeader, h.signer.SignReport("accounts_xlsx", buf.Bytes()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write export", slog.String("error", err.Error()))
	}
}

func (h *APIHandler) JournalHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.sendError(w, "limit must be a non-negative integer", http.StatusBadRequest, "INVALID_LIMIT")
			return
		}
		limit = n
	}

	h.sendJSON(w, h.journal.Recent(limit), http.StatusOK)
}

func (h *APIHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	}
	h.sendJSON(w, response, http.StatusOK)
}

func (h *APIHandler) handleReportError(ctx context.Context, w http.ResponseWriter, name string, err error) {
	var rejection *processor.Rejection
	if errors.As(err, &rejection) {
		status, code := statusFor(rejection.Err)
		h.sendError(w, rejection.Message, status, code)
		return
	}

	h.logger.ErrorContext(ctx, "Report failed",
		slog.String("report", name),
		slog.String("error", err.Error()))
	h.sendError(w, "Report failed", http.StatusInternalServerError, "SERVER_ERROR")
}

func (h *APIHandler) refreshLedgerGauges(ctx context.Context) {
	summary := h.teller.Summary(ctx)
	gauges := make([]metrics.KindGauge, 0, len(summary))
	for _, s := range summary {
		gauges = append(gauges, metrics.KindGauge{
			Kind:    string(s.Kind),
			Count:   s.Count,
			Balance: s.Balance.InexactFloat64(),
		})
	}
	h.metrics.UpdateLedger(gauges)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrEmptyLedger):
		return http.StatusNotFound, "EMPTY_LEDGER"
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict, "DUPLICATE_ACCOUNT"
	case errors.Is(err, domain.ErrAccountClosed):
		return http.StatusConflict, "ACCOUNT_CLOSED"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS"
	case errors.Is(err, domain.ErrInsufficientInitialDeposit):
		return http.StatusUnprocessableEntity, "INSUFFICIENT_DEPOSIT"
	default:
		return http.StatusBadRequest, "VALIDATION_ERROR"
	}
}

func (h *APIHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", slog.String("error", err.Error()))
	}
}

func (h *APIHandler) sendError(w http.ResponseWriter, message string, statusCode int, code string) {
	h.sendJSON(w, ErrorResponse{Error: message, Code: code}, statusCode)

	h.logger.Warn("API error response",
		slog.String("message", message),
		slog.String("code", code),
		slog.Int("status", statusCode))
}

func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/open", h.OpenHandler)
			r.Post("/close", h.CloseHandler)
			r.Post("/deposit", h.DepositHandler)
			r.Post("/withdraw", h.WithdrawHandler)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/accounts", h.AccountsReportHandler)
			r.Get("/accounts.xlsx", h.AccountsExportHandler)
			r.Get("/fees", h.FeesReportHandler)
			r.Post("/monthly-update", h.MonthlyUpdateHandler)
		})
		r.Get("/journal", h.JournalHandler)
	})
	r.Get("/api/health", h.HealthCheckHandler)
}

// Router returns the full teller API with request ids and panic recovery.
// Callers may add routes to it.
func (h *APIHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	h.RegisterRoutes(r)
	return r
}
