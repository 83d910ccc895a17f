package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type ServiceAPI interface {
	GetCategories(actor *user.User, includeInactive bool) ([]*Category, error)
	GetByID(id string) (*Category, error)
	CreateCategory(actor *user.User, dto CreateCategoryDTO) (*Category, error)
	SetActive(actor *user.User, id string, active bool) (*Category, error)
}

type UserNamesAPI interface {
	UserNames() (map[string]string, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Users   UserNamesAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, users UserNamesAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Users:       users,
	}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	categories, err := h.Service.GetCategories(actor, includeInactive)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: h.toResponses(categories)})
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	userNames, _ := h.Users.UserNames()
	h.WriteJSON(w, http.StatusOK, h.toResponse(c, userNames))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CreateCategory(actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	userNames, _ := h.Users.UserNames()
	h.WriteJSON(w, http.StatusCreated, h.toResponse(c, userNames))
}

func (h *Handler) ActivateCategory(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *Handler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	c, err := h.Service.SetActive(actor, chi.URLParam(r, "id"), active)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	userNames, _ := h.Users.UserNames()
	h.WriteJSON(w, http.StatusOK, h.toResponse(c, userNames))
}

func (h *Handler) toResponse(c *Category, userNames map[string]string) CategoryResponse {
	return CategoryResponse{
		ID:                      c.ID,
		Name:                    c.Name,
		ShortDescription:        c.ShortDescription,
		FullDescription:         c.FullDescription,
		ReimbursementConditions: c.ReimbursementConditions,
		IsActive:                c.IsActive,
		CreatedByName:           userNames[c.CreatedBy],
	}
}

func (h *Handler) toResponses(categories []*Category) []CategoryResponse {
	userNames, _ := h.Users.UserNames()

	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, h.toResponse(c, userNames))
	}
	return result
}
