package upload

import (
	"encoding/json"
	"net/http"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport"
)

type CheckerAPI interface {
	Check(req CheckRequest) (*CheckResult, error)
}

type Handler struct {
	*transport.BaseHandler
	Checker CheckerAPI
}

func NewHandler(baseHandler *transport.BaseHandler, checker CheckerAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Checker:     checker,
	}
}

func (h *Handler) CheckReceipt(w http.ResponseWriter, r *http.Request) {
	if session.ActorFromContext(r.Context()) == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("CheckReceipt: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Checker.Check(req)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}
