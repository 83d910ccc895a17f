package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hanifadr/reimbursement-hub/internal"
	notificationDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/notification"
	"github.com/hanifadr/reimbursement-hub/internal/core/events"
	"github.com/hanifadr/reimbursement-hub/internal/expense"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type RepositoryAPI interface {
	Create(n *notificationDatamodel.AppNotification) error
	GetByUserID(userID string) ([]*notificationDatamodel.AppNotification, error)
	MarkRead(id string) (*notificationDatamodel.AppNotification, error)
}

type UserAPI interface {
	GetAll() ([]*user.User, error)
}

// Service turns expense lifecycle events into per-user notifications
// and serves the notification feed.
type Service struct {
	repo   RepositoryAPI
	users  UserAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, users UserAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

func (s *Service) ForUser(actor *user.User) ([]*AppNotification, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	dataNotifications, err := s.repo.GetByUserID(actor.ID)
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err, "user_id", actor.ID)
		return nil, err
	}
	return FromDataModelSlice(dataNotifications), nil
}

// MarkRead flips the read flag. Users may only touch their own feed.
func (s *Service) MarkRead(actor *user.User, id string) (*AppNotification, error) {
	if actor == nil {
		return nil, internal.ErrSessionLoading
	}

	dataNotifications, err := s.repo.GetByUserID(actor.ID)
	if err != nil {
		return nil, err
	}

	owned := false
	for _, n := range dataNotifications {
		if n.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return nil, internal.ErrNotificationNotFound
	}

	updated, err := s.repo.MarkRead(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(updated), nil
}

// RegisterEventHandlers subscribes the service to the lifecycle
// events it reacts to.
func (s *Service) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypeExpenseStatusChanged, s.HandleStatusChanged)
	eventBus.Subscribe(events.EventTypeCommentPosted, s.HandleCommentPosted)

	s.logger.Info("notification event handlers registered",
		"handlers", []string{events.EventTypeExpenseStatusChanged, events.EventTypeCommentPosted})
}

// HandleStatusChanged fans a status change out to the users who care:
// the review queue (hr) on submission, the owner on review outcomes
// and payment progress, the payment queue (accountants) on approval.
func (s *Service) HandleStatusChanged(ctx context.Context, event events.Event) error {
	statusEvent, ok := event.(*events.ExpenseStatusChangedEvent)
	if !ok {
		s.logger.Error("invalid event type for status change handler", "event_type", event.EventType())
		return fmt.Errorf("expected ExpenseStatusChangedEvent, got %T", event)
	}

	switch expense.Status(statusEvent.ToStatus) {
	case expense.StatusSubmitted:
		return s.notifyRole(user.RoleHR, statusEvent.ExpenseID, TypeInfo,
			"Expense submitted",
			"A new expense is waiting for review")
	case expense.StatusApproved:
		if err := s.notifyUser(statusEvent.EmployeeID, statusEvent.ExpenseID, TypeSuccess,
			"Expense approved",
			"Your expense was approved and is queued for payment"); err != nil {
			return err
		}
		return s.notifyRole(user.RoleAccountant, statusEvent.ExpenseID, TypeInfo,
			"Expense awaiting payment",
			"An approved expense is ready for payment processing")
	case expense.StatusRejected:
		return s.notifyUser(statusEvent.EmployeeID, statusEvent.ExpenseID, TypeError,
			"Expense rejected",
			"Your expense was rejected during review")
	case expense.StatusNeedsRevision:
		return s.notifyUser(statusEvent.EmployeeID, statusEvent.ExpenseID, TypeWarning,
			"Revision requested",
			"Your expense needs changes before it can be approved")
	case expense.StatusPaid:
		return s.notifyUser(statusEvent.EmployeeID, statusEvent.ExpenseID, TypeSuccess,
			"Expense paid",
			"Your reimbursement has been paid out")
	}

	return nil
}

// HandleCommentPosted tells the expense owner about replies from
// reviewers. The owner's own comments stay silent.
func (s *Service) HandleCommentPosted(ctx context.Context, event events.Event) error {
	commentEvent, ok := event.(*events.CommentPostedEvent)
	if !ok {
		s.logger.Error("invalid event type for comment handler", "event_type", event.EventType())
		return fmt.Errorf("expected CommentPostedEvent, got %T", event)
	}

	if commentEvent.AuthorID == commentEvent.EmployeeID {
		return nil
	}

	return s.notifyUser(commentEvent.EmployeeID, commentEvent.ExpenseID, TypeInfo,
		"New comment",
		fmt.Sprintf("%s commented on your expense", commentEvent.AuthorName))
}

func (s *Service) notifyUser(userID, expenseID string, notificationType Type, title, message string) error {
	n := &AppNotification{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           title,
		Message:         message,
		Timestamp:       time.Now(),
		Type:            notificationType,
		RelatedItemID:   expenseID,
		RelatedItemType: "expense",
	}

	if err := s.repo.Create(ToDataModel(n)); err != nil {
		s.logger.Error("failed to store notification", "error", err, "user_id", userID)
		return err
	}

	s.logger.Debug("notification created",
		"notification_id", n.ID,
		"user_id", userID,
		"type", notificationType)
	return nil
}

func (s *Service) notifyRole(role user.Role, expenseID string, notificationType Type, title, message string) error {
	users, err := s.users.GetAll()
	if err != nil {
		s.logger.Error("failed to list users for role notification", "error", err, "role", role)
		return err
	}

	for _, u := range users {
		if u.Role != role {
			continue
		}
		if err := s.notifyUser(u.ID, expenseID, notificationType, title, message); err != nil {
			return err
		}
	}
	return nil
}
