package session

import (
	"encoding/json"
	"net/http"

	"github.com/hanifadr/reimbursement-hub/internal/transport"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type ServiceAPI interface {
	CurrentActor() (*user.User, error)
	SwitchActor(actorID string) (*user.User, error)
	SwitchRole(role user.Role) (*user.User, error)
}

// SwitchDTO names either a concrete actor or a role held by exactly
// one user. actor_id wins when both are set.
type SwitchDTO struct {
	ActorID string    `json:"actor_id,omitempty"`
	Role    user.Role `json:"role,omitempty"`
}

type SessionResponse struct {
	Actor *user.User `json:"actor"`
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

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	actor, err := h.Service.CurrentActor()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, SessionResponse{Actor: actor})
}

func (h *Handler) Switch(w http.ResponseWriter, r *http.Request) {
	var dto SwitchDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Switch: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		actor *user.User
		err   error
	)
	switch {
	case dto.ActorID != "":
		actor, err = h.Service.SwitchActor(dto.ActorID)
	case dto.Role != "":
		actor, err = h.Service.SwitchRole(dto.Role)
	default:
		h.WriteError(w, http.StatusBadRequest, "actor_id or role is required")
		return
	}

	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, SessionResponse{Actor: actor})
}
