package expense

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/session"
	"github.com/hanifadr/reimbursement-hub/internal/transport"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type ServiceAPI interface {
	CreateExpense(ctx context.Context, actor *user.User, dto CreateExpenseDTO) (*Expense, error)
	GetExpense(actor *user.User, id string) (*Expense, error)
	ListExpenses(actor *user.User, filter ListFilter) ([]*Expense, error)
	BucketedExpenses(actor *user.User, filter ListFilter) (Buckets, error)
	Transition(ctx context.Context, actor *user.User, expenseID string, to Status) (*Expense, error)
	AddComment(ctx context.Context, actor *user.User, expenseID string, dto CommentDTO) (*Comment, error)
}

// CategoryNamesAPI and UserNamesAPI resolve the weak references into
// display names at the response boundary.
type CategoryNamesAPI interface {
	CategoryNames() (map[string]string, error)
}

type UserNamesAPI interface {
	UserNames() (map[string]string, error)
}

type Handler struct {
	*transport.BaseHandler
	Service    ServiceAPI
	Categories CategoryNamesAPI
	Users      UserNamesAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI, categories CategoryNamesAPI, users UserNamesAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
		Categories:  categories,
		Users:       users,
	}
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.CreateExpense(r.Context(), actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, h.toResponse(e, actor))
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	e, err := h.Service.GetExpense(actor, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, h.toResponse(e, actor))
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	filter := ListFilter{
		Search:     r.URL.Query().Get("q"),
		CategoryID: r.URL.Query().Get("category_id"),
		Bucket:     Bucket(r.URL.Query().Get("bucket")),
	}

	if r.URL.Query().Get("grouped") == "true" {
		buckets, err := h.Service.BucketedExpenses(actor, filter)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, BucketsResponse{
			Draft:      h.toResponses(buckets.Draft, actor),
			Pending:    h.toResponses(buckets.Pending, actor),
			InProgress: h.toResponses(buckets.InProgress, actor),
			Completed:  h.toResponses(buckets.Completed, actor),
		})
		return
	}

	expenses, err := h.Service.ListExpenses(actor, filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ExpensesResponse{Expenses: h.toResponses(expenses, actor)})
}

func (h *Handler) TransitionExpense(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	var dto TransitionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("TransitionExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	e, err := h.Service.Transition(r.Context(), actor, chi.URLParam(r, "id"), dto.To)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, h.toResponse(e, actor))
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFromContext(r.Context())
	if actor == nil {
		h.HandleServiceError(w, internal.ErrSessionLoading)
		return
	}

	var dto CommentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddComment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.AddComment(r.Context(), actor, chi.URLParam(r, "id"), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) toResponse(e *Expense, actor *user.User) ExpenseResponse {
	categoryNames, _ := h.Categories.CategoryNames()
	userNames, _ := h.Users.UserNames()
	return h.buildResponse(e, actor, categoryNames, userNames)
}

func (h *Handler) toResponses(expenses []*Expense, actor *user.User) []ExpenseResponse {
	categoryNames, _ := h.Categories.CategoryNames()
	userNames, _ := h.Users.UserNames()

	result := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, h.buildResponse(e, actor, categoryNames, userNames))
	}
	return result
}

func (h *Handler) buildResponse(e *Expense, actor *user.User, categoryNames, userNames map[string]string) ExpenseResponse {
	return ExpenseResponse{
		Expense:            e,
		CategoryName:       categoryNames[e.CategoryID],
		EmployeeName:       userNames[e.EmployeeID],
		AllowedTransitions: AllowedTransitions(e, actor),
	}
}
