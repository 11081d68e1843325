package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/loanworks/loanengine/internal/application/dto"
	"github.com/loanworks/loanengine/internal/domain/port"
	"github.com/loanworks/loanengine/internal/domain/valueobject"
	"github.com/loanworks/loanengine/pkg/observability"
)

// Use-case contracts consumed by the HTTP layer.
type (
	scheduleGenerator interface {
		Execute(ctx context.Context, req dto.GenerateScheduleRequest) (dto.ScheduleResponse, error)
	}
	balanceCalculator interface {
		Execute(ctx context.Context, req dto.GetBalanceRequest) (dto.BalanceResponse, error)
	}
	impactAnalyzer interface {
		Execute(ctx context.Context, req dto.AnalyzeImpactRequest) (dto.ImpactResponse, error)
	}
	paymentRecorder interface {
		Execute(ctx context.Context, req dto.RecordPaymentRequest) (dto.BalanceResponse, error)
	}
)

// Handler exposes the calculation use cases over HTTP.
type Handler struct {
	scheduleUC scheduleGenerator
	balanceUC  balanceCalculator
	impactUC   impactAnalyzer
	paymentUC  paymentRecorder
	logger     *slog.Logger
	metrics    *observability.CalculationMetrics
}

// NewHandler creates the REST handler.
func NewHandler(
	scheduleUC scheduleGenerator,
	balanceUC balanceCalculator,
	impactUC impactAnalyzer,
	paymentUC paymentRecorder,
	logger *slog.Logger,
	metrics *observability.CalculationMetrics,
) *Handler {
	return &Handler{
		scheduleUC: scheduleUC,
		balanceUC:  balanceUC,
		impactUC:   impactUC,
		paymentUC:  paymentUC,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterRoutes attaches the calculation routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/loans/{id}/schedule", h.generateSchedule)
	mux.HandleFunc("POST /v1/loans/{id}/balance", h.getBalance)
	mux.HandleFunc("POST /v1/loans/{id}/payment-impact", h.analyzeImpact)
	mux.HandleFunc("POST /v1/loans/{id}/payments", h.recordPayment)
}

func (h *Handler) generateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateScheduleRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.LoanID = r.PathValue("id")

	start := time.Now()
	resp, err := h.scheduleUC.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "generate_schedule", err)
		return
	}
	h.observe("generate_schedule", resp.InterestType, start)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.GetBalanceRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.LoanID = r.PathValue("id")

	start := time.Now()
	resp, err := h.balanceUC.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "calculate_balance", err)
		return
	}
	h.observe("calculate_balance", "", start)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) analyzeImpact(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeImpactRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.LoanID = r.PathValue("id")

	start := time.Now()
	resp, err := h.impactUC.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "analyze_impact", err)
		return
	}
	h.observe("analyze_impact", "", start)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.LoanID = r.PathValue("id")

	start := time.Now()
	resp, err := h.paymentUC.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "record_payment", err)
		return
	}
	h.observe("record_payment", "", start)
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

// writeError maps domain error kinds onto HTTP statuses: validation problems
// become per-field 422 responses, calculation failures 400, missing rows 404.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var (
		validationErrs valueobject.ValidationErrors
		calcErr        *valueobject.CalculationError
	)

	switch {
	case errors.As(err, &validationErrs):
		if h.metrics != nil {
			h.metrics.Errors.WithLabelValues(op, "validation").Inc()
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": validationErrs,
		})
	case errors.As(err, &calcErr):
		if h.metrics != nil {
			h.metrics.Errors.WithLabelValues(op, "calculation").Inc()
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": calcErr.Reason,
			"code":  calcErr.Code,
		})
	case errors.Is(err, port.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "loan not found"})
	default:
		if h.metrics != nil {
			h.metrics.Errors.WithLabelValues(op, "internal").Inc()
		}
		h.logger.ErrorContext(r.Context(), "request failed", "op", op, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) observe(op, interestType string, start time.Time) {
	if h.metrics == nil {
		return
	}
	h.metrics.Calculations.WithLabelValues(op, interestType).Inc()
	h.metrics.Duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck
}
