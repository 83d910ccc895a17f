package notification

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type ServiceAPI interface {
	ForUser(actor *user.User) ([]*AppNotification, error)
	MarkRead(actor *user.User, id string) (*AppNotification, error)
}

type NotificationsResponse struct {
	Notifications []*AppNotification `json:"notifications"`
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

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	notifications, err := h.Service.ForUser(actor)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, NotificationsResponse{Notifications: notifications})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	n, err := h.Service.MarkRead(actor, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}
