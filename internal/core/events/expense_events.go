package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeExpenseStatusChanged = "expense.status_changed"
	EventTypeCommentPosted        = "expense.comment_posted"
)

type ExpenseStatusChangedEvent struct {
	BaseEvent
	ExpenseID   string `json:"expense_id"`
	EmployeeID  string `json:"employee_id"`
	ActorID     string `json:"actor_id"`
	ActorRole   string `json:"actor_role"`
	FromStatus  string `json:"from_status"`
	ToStatus    string `json:"to_status"`
	AmountCents int64  `json:"amount_cents"`
}

func NewExpenseStatusChangedEvent(expenseID, employeeID, actorID, actorRole, fromStatus, toStatus string, amountCents int64) *ExpenseStatusChangedEvent {
	return &ExpenseStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeExpenseStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":   expenseID,
				"employee_id":  employeeID,
				"actor_id":     actorID,
				"actor_role":   actorRole,
				"from_status":  fromStatus,
				"to_status":    toStatus,
				"amount_cents": amountCents,
			},
		},
		ExpenseID:   expenseID,
		EmployeeID:  employeeID,
		ActorID:     actorID,
		ActorRole:   actorRole,
		FromStatus:  fromStatus,
		ToStatus:    toStatus,
		AmountCents: amountCents,
	}
}

type CommentPostedEvent struct {
	BaseEvent
	ExpenseID  string `json:"expense_id"`
	EmployeeID string `json:"employee_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
}

func NewCommentPostedEvent(expenseID, employeeID, authorID, authorName string) *CommentPostedEvent {
	return &CommentPostedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCommentPosted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"expense_id":  expenseID,
				"employee_id": employeeID,
				"author_id":   authorID,
				"author_name": authorName,
			},
		},
		ExpenseID:  expenseID,
		EmployeeID: employeeID,
		AuthorID:   authorID,
		AuthorName: authorName,
	}
}
