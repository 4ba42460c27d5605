package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dt-gamer/payment-instruction-service/internal/domain/entity"
	"github.com/dt-gamer/payment-instruction-service/internal/domain/instruction"
	"github.com/dt-gamer/payment-instruction-service/internal/infrastructure/audit"
	"github.com/dt-gamer/payment-instruction-service/internal/usecase/interpret"
)

//go:generate mockgen -source=handler.go -destination=mocks/recorder.go -package=mocks

// AuditRecorder accepts fire-and-forget audit events. Implementations must
// not block; the handler never waits on them.
type AuditRecorder interface {
	Record(e audit.Event)
}

const (
	messageSuccessful = "Transaction executed successfully"
	messagePending    = "Transaction pending execution"
	messageFailed     = "Transaction failed"
)

type Handler struct {
	interpretUC *interpret.UseCase
	audit       AuditRecorder
	logger      *slog.Logger
}

func NewHandler(interpretUC *interpret.UseCase, recorder AuditRecorder, logger *slog.Logger) *Handler {
	return &Handler{
		interpretUC: interpretUC,
		audit:       recorder,
		logger:      logger,
	}
}

type apiResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *Handler) HandlePaymentInstructions(w http.ResponseWriter, r *http.Request) {
	var req instructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apiResponse{
			Status:  interpret.StatusFailed,
			Message: "invalid json body",
		})
		return
	}

	if err := checkSchema(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, apiResponse{
			Status:  interpret.StatusFailed,
			Message: err.Error(),
		})
		return
	}

	accounts := make([]*entity.Account, 0, len(req.Accounts))
	for _, a := range req.Accounts {
		accounts = append(accounts, entity.NewAccount(a.ID, a.Balance, a.Currency))
	}

	result, err := h.interpretUC.Execute(r.Context(), interpret.Request{
		Accounts:    accounts,
		Instruction: req.Instruction,
	})
	if err != nil {
		var ierr *instruction.Error
		if !errors.As(err, &ierr) {
			h.logger.Error("interpret failed", "error", err)
			h.writeJSON(w, http.StatusInternalServerError, apiResponse{
				Status:  interpret.StatusFailed,
				Message: "internal error",
			})
			return
		}

		h.submitAudit(req.Instruction, interpret.StatusFailed, ierr.Code)
		h.writeJSON(w, http.StatusBadRequest, apiResponse{
			Status:  interpret.StatusFailed,
			Message: messageFailed,
			Data:    ierr.Context,
		})
		return
	}

	h.submitAudit(req.Instruction, result.Status, result.StatusCode)

	message := messageSuccessful
	if result.Status == interpret.StatusPending {
		message = messagePending
	}
	h.writeJSON(w, http.StatusOK, apiResponse{
		Status:  result.Status,
		Message: message,
		Data:    result,
	})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// submitAudit fires the echo event for a completed pipeline run. Outcome of
// the submission never influences the response.
func (h *Handler) submitAudit(instr, status string, code instruction.StatusCode) {
	if h.audit == nil {
		return
	}
	h.audit.Record(audit.Event{
		ID:          uuid.New(),
		ReceivedAt:  time.Now().UTC(),
		Instruction: instr,
		Status:      status,
		StatusCode:  string(code),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("response encode failed", "error", err)
	}
}
