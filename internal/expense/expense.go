package expense

import (
	"time"

	expenseDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/expense"
)

// Status is the lifecycle state of an expense. The allowed movements
// between statuses live in lifecycle.go.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusSubmitted         Status = "submitted"
	StatusUnderReview       Status = "under_review"
	StatusApproved          Status = "approved"
	StatusRejected          Status = "rejected"
	StatusNeedsRevision     Status = "needs_revision"
	StatusProcessingPayment Status = "processing_payment"
	StatusPaid              Status = "paid"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved,
		StatusRejected, StatusNeedsRevision, StatusProcessingPayment, StatusPaid:
		return true
	}
	return false
}

// Bucket is the coarse grouping used to tab-organize expenses.
type Bucket string

const (
	BucketDraft      Bucket = "draft"
	BucketPending    Bucket = "pending"
	BucketInProgress Bucket = "in_progress"
	BucketCompleted  Bucket = "completed"
)

// Bucket maps every status to exactly one bucket. The mapping must
// stay exhaustive and disjoint: the tabbed views rely on the four
// buckets partitioning any expense list.
func (s Status) Bucket() Bucket {
	switch s {
	case StatusDraft:
		return BucketDraft
	case StatusSubmitted, StatusUnderReview:
		return BucketPending
	case StatusNeedsRevision, StatusApproved, StatusProcessingPayment:
		return BucketInProgress
	case StatusPaid, StatusRejected:
		return BucketCompleted
	}
	return BucketDraft
}

type Expense struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	CategoryID    string     `json:"category_id"`
	AmountCents   int64      `json:"amount_cents"`
	Description   string     `json:"description"`
	ReceiptURL    string     `json:"receipt_url,omitempty"`
	Status        Status     `json:"status"`
	SubmittedDate *time.Time `json:"submitted_date,omitempty"`
	ReviewedDate  *time.Time `json:"reviewed_date,omitempty"`
	ReviewedBy    string     `json:"reviewed_by,omitempty"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	Comments      []Comment  `json:"comments,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *Expense) HasReceipt() bool {
	return e.ReceiptURL != ""
}

func NewExpense(id, employeeID string, dto CreateExpenseDTO) *Expense {
	now := time.Now()
	return &Expense{
		ID:          id,
		EmployeeID:  employeeID,
		CategoryID:  dto.CategoryID,
		AmountCents: dto.AmountCents,
		Description: dto.Description,
		ReceiptURL:  dto.ReceiptURL,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	comments := make([]expenseDatamodel.Comment, len(e.Comments))
	for i, c := range e.Comments {
		comments[i] = expenseDatamodel.Comment(c)
	}
	return &expenseDatamodel.Expense{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		CategoryID:    e.CategoryID,
		AmountCents:   e.AmountCents,
		Description:   e.Description,
		ReceiptURL:    e.ReceiptURL,
		Status:        string(e.Status),
		SubmittedDate: e.SubmittedDate,
		ReviewedDate:  e.ReviewedDate,
		ReviewedBy:    e.ReviewedBy,
		PaidDate:      e.PaidDate,
		Comments:      comments,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	comments := make([]Comment, len(e.Comments))
	for i, c := range e.Comments {
		comments[i] = Comment(c)
	}
	return &Expense{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		CategoryID:    e.CategoryID,
		AmountCents:   e.AmountCents,
		Description:   e.Description,
		ReceiptURL:    e.ReceiptURL,
		Status:        Status(e.Status),
		SubmittedDate: e.SubmittedDate,
		ReviewedDate:  e.ReviewedDate,
		ReviewedBy:    e.ReviewedBy,
		PaidDate:      e.PaidDate,
		Comments:      comments,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}
