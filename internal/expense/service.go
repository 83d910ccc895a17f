package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hanifadr/reimbursement-hub/internal"
	expenseDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/expense"
	"github.com/hanifadr/reimbursement-hub/internal/core/events"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

// Repository defines the data access methods for expenses. Mutate must
// hand the callback an exclusive view of the record and discard the
// write when the callback errors.
type Repository interface {
	Create(e *expenseDatamodel.Expense) error
	GetByID(id string) (*expenseDatamodel.Expense, error)
	GetAll() ([]*expenseDatamodel.Expense, error)
	GetByEmployeeID(employeeID string) ([]*expenseDatamodel.Expense, error)
	Mutate(id string, fn func(e *expenseDatamodel.Expense) error) error
	AppendComment(id string, c expenseDatamodel.Comment) error
}

// CategoryAPI is the slice of the category service the expense flow
// needs: submission checks and search-term name resolution.
type CategoryAPI interface {
	IsActiveCategory(id string) bool
	CategoryNames() (map[string]string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo       Repository
	categories CategoryAPI
	publisher  EventPublisher
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryAPI, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		publisher:  publisher,
		logger:     logger,
	}
}

// ListFilter narrows an expense listing. Zero values pass everything
// through.
type ListFilter struct {
	Search     string
	CategoryID string
	Bucket     Bucket
}

// CreateExpense creates a draft for the acting employee, optionally
// submitting it in the same call when the payload carries a receipt.
func (s *Service) CreateExpense(ctx context.Context, actor *user.User, dto CreateExpenseDTO) (*Expense, error) {
	if actor == nil || !actor.IsEmployee() {
		s.logger.Warn("create expense denied: employee role required", "actor_id", actorID(actor))
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("expense validation failed", "error", err, "employee_id", actor.ID)
		return nil, err
	}

	if !s.categories.IsActiveCategory(dto.CategoryID) {
		s.logger.Warn("expense rejected: category missing or inactive",
			"category_id", dto.CategoryID,
			"employee_id", actor.ID)
		return nil, internal.NewValidationFieldError("category_id", "category does not exist or is inactive", internal.ErrCodeInvalidCategory)
	}

	e := NewExpense(uuid.NewString(), actor.ID, dto)
	if err := s.repo.Create(ToDataModel(e)); err != nil {
		s.logger.Error("failed to create expense", "error", err, "employee_id", actor.ID)
		return nil, err
	}

	s.logger.Info("expense draft created",
		"expense_id", e.ID,
		"employee_id", actor.ID,
		"amount_cents", e.AmountCents,
		"category_id", e.CategoryID)

	if dto.Submit {
		return s.Transition(ctx, actor, e.ID, StatusSubmitted)
	}

	return e, nil
}

// GetExpense retrieves one expense with role visibility applied.
func (s *Service) GetExpense(actor *user.User, id string) (*Expense, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	dataExpense, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("expense lookup failed", "expense_id", id, "error", err)
		return nil, internal.ErrExpenseNotFound
	}

	e := FromDataModel(dataExpense)
	if !actor.CanSeeAllExpenses() && e.EmployeeID != actor.ID {
		s.logger.Warn("unauthorized access to expense",
			"expense_id", id,
			"actor_id", actor.ID,
			"owner_id", e.EmployeeID)
		return nil, internal.ErrUnauthorizedAccess
	}

	return e, nil
}

// ListExpenses returns the actor-visible expenses narrowed by the
// filter, in stable insertion order.
func (s *Service) ListExpenses(actor *user.User, filter ListFilter) ([]*Expense, error) {
	visible, err := s.visibleExpenses(actor)
	if err != nil {
		return nil, err
	}

	if filter.Search != "" {
		names, err := s.categories.CategoryNames()
		if err != nil {
			s.logger.Error("failed to resolve category names for search", "error", err)
			return nil, err
		}
		visible = FilterBySearch(visible, filter.Search, names)
	}

	visible = FilterByCategory(visible, filter.CategoryID)

	if filter.Bucket != "" {
		var result []*Expense
		for _, e := range visible {
			if e.Status.Bucket() == filter.Bucket {
				result = append(result, e)
			}
		}
		visible = result
	}

	return visible, nil
}

// BucketedExpenses partitions the filtered listing into the four tab
// buckets.
func (s *Service) BucketedExpenses(actor *user.User, filter ListFilter) (Buckets, error) {
	filter.Bucket = ""
	visible, err := s.ListExpenses(actor, filter)
	if err != nil {
		return Buckets{}, err
	}
	return GroupByStatusBucket(visible), nil
}

// RecentForActor returns the actor's n most recently submitted
// expenses.
func (s *Service) RecentForActor(actor *user.User, n int) ([]*Expense, error) {
	visible, err := s.visibleExpenses(actor)
	if err != nil {
		return nil, err
	}
	return RecentExpenses(visible, n), nil
}

// AttentionForActor returns the expenses waiting on the actor.
func (s *Service) AttentionForActor(actor *user.User) ([]*Expense, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	// The attention queue looks across all expenses regardless of
	// role visibility rules; NeedsAttention applies its own scoping.
	dataExpenses, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list expenses for attention queue", "error", err)
		return nil, err
	}

	return NeedsAttention(FromDataModelSlice(dataExpenses), actor), nil
}

// Transition moves the expense through the lifecycle table as the
// acting user. The status check and the write happen inside one
// repository mutation, so two racing actors cannot both apply a
// transition from the same starting status.
func (s *Service) Transition(ctx context.Context, actor *user.User, expenseID string, to Status) (*Expense, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	var (
		updated    *Expense
		fromStatus Status
	)

	err := s.repo.Mutate(expenseID, func(dm *expenseDatamodel.Expense) error {
		domain := FromDataModel(dm)

		if !actor.CanSeeAllExpenses() && domain.EmployeeID != actor.ID {
			return internal.ErrUnauthorizedAccess
		}

		fromStatus = domain.Status
		if err := ApplyTransition(domain, to, actor, time.Now()); err != nil {
			return err
		}

		*dm = *ToDataModel(domain)
		updated = domain
		return nil
	})
	if err != nil {
		s.logger.Warn("expense transition rejected",
			"expense_id", expenseID,
			"requested_status", to,
			"actor_id", actor.ID,
			"actor_role", actor.Role,
			"error", err)
		return nil, err
	}

	s.logger.Info("expense transitioned",
		"expense_id", expenseID,
		"from_status", fromStatus,
		"to_status", to,
		"actor_id", actor.ID,
		"actor_role", actor.Role)

	if s.publisher != nil {
		event := events.NewExpenseStatusChangedEvent(
			updated.ID, updated.EmployeeID, actor.ID, string(actor.Role),
			string(fromStatus), string(to), updated.AmountCents)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish status change event", "error", err, "expense_id", expenseID)
		}
	}

	return updated, nil
}

// AddComment appends to the expense's chat-style thread. The author
// snapshot is taken now; later profile changes do not rewrite history.
func (s *Service) AddComment(ctx context.Context, actor *user.User, expenseID string, dto CommentDTO) (*Comment, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// Reuse the visibility rule: you can only discuss what you can see.
	e, err := s.GetExpense(actor, expenseID)
	if err != nil {
		return nil, err
	}

	c := Comment{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserRole:  string(actor.Role),
		Message:   dto.Message,
		Timestamp: time.Now(),
	}

	if err := s.repo.AppendComment(expenseID, expenseDatamodel.Comment(c)); err != nil {
		s.logger.Error("failed to append comment", "error", err, "expense_id", expenseID)
		return nil, err
	}

	s.logger.Info("comment posted",
		"expense_id", expenseID,
		"comment_id", c.ID,
		"author_id", actor.ID)

	if s.publisher != nil {
		event := events.NewCommentPostedEvent(expenseID, e.EmployeeID, actor.ID, actor.Name)
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish comment event", "error", err, "expense_id", expenseID)
		}
	}

	return &c, nil
}

func (s *Service) visibleExpenses(actor *user.User) ([]*Expense, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	var (
		dataExpenses []*expenseDatamodel.Expense
		err          error
	)
	if actor.CanSeeAllExpenses() {
		dataExpenses, err = s.repo.GetAll()
	} else {
		dataExpenses, err = s.repo.GetByEmployeeID(actor.ID)
	}
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "actor_id", actor.ID)
		return nil, err
	}

	return FromDataModelSlice(dataExpenses), nil
}

func actorID(actor *user.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
