package expense

import (
	"strings"

	"github.com/hanifadr/reimbursement-hub/internal"
)

// CreateExpenseDTO is the payload for creating a draft. Amounts travel
// as integer cents; the receipt may be attached later, but the draft
// cannot be submitted without one.
type CreateExpenseDTO struct {
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
	Submit      bool   `json:"submit,omitempty"`
}

func (dto CreateExpenseDTO) Validate() error {
	var errs []internal.ValidationError

	if dto.AmountCents <= 0 {
		errs = append(errs, internal.ValidationError{
			Field:   "amount_cents",
			Message: "amount must be greater than 0",
			Code:    string(internal.ErrCodeInvalidAmount),
		})
	}
	if strings.TrimSpace(dto.Description) == "" {
		errs = append(errs, internal.ValidationError{
			Field:   "description",
			Message: "description is required",
			Code:    string(internal.ErrCodeInvalidDescription),
		})
	}
	if dto.CategoryID == "" {
		errs = append(errs, internal.ValidationError{
			Field:   "category_id",
			Message: "category is required",
			Code:    string(internal.ErrCodeInvalidCategory),
		})
	}
	if dto.Submit && dto.ReceiptURL == "" {
		errs = append(errs, internal.ValidationError{
			Field:   "receipt_url",
			Message: "a receipt is required before submitting",
			Code:    string(internal.ErrCodeMissingReceipt),
		})
	}

	if len(errs) > 0 {
		return internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed).
			WithDetails(internal.ValidationErrors{Errors: errs})
	}
	return nil
}

type TransitionDTO struct {
	To Status `json:"to"`
}

func (dto TransitionDTO) Validate() error {
	if !dto.To.Valid() {
		return internal.NewValidationFieldError("to", "unknown expense status", internal.ErrCodeValidationFailed)
	}
	return nil
}

type CommentDTO struct {
	Message string `json:"message"`
}

func (dto CommentDTO) Validate() error {
	if strings.TrimSpace(dto.Message) == "" {
		return internal.NewValidationFieldError("message", "comment message cannot be empty", internal.ErrCodeEmptyComment)
	}
	return nil
}

// ExpenseResponse is the boundary shape: the expense plus display
// names resolved from the weak references at response time.
type ExpenseResponse struct {
	*Expense
	CategoryName       string   `json:"category_name,omitempty"`
	EmployeeName       string   `json:"employee_name,omitempty"`
	AllowedTransitions []Status `json:"allowed_transitions,omitempty"`
}

type ExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// BucketsResponse groups a filtered list into the four tab buckets.
type BucketsResponse struct {
	Draft      []ExpenseResponse `json:"draft"`
	Pending    []ExpenseResponse `json:"pending"`
	InProgress []ExpenseResponse `json:"in_progress"`
	Completed  []ExpenseResponse `json:"completed"`
}
