package reports

import (
	"net/http"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type ServiceAPI interface {
	Dashboard(actor *user.User) (*DashboardResponse, error)
	Summary(actor *user.User) (*SummaryResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	resp, err := h.Service.Dashboard(actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	resp, err := h.Service.Summary(actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}
