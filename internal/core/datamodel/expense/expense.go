package expense

import "time"

// Expense is the stored representation of a reimbursement claim.
// Amounts are kept in cents to avoid floating point drift. Employee
// and category are weak references resolved by lookup; display names
// are computed at the response boundary, never stored.
type Expense struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	CategoryID    string     `json:"category_id"`
	AmountCents   int64      `json:"amount_cents"`
	Description   string     `json:"description"`
	ReceiptURL    string     `json:"receipt_url,omitempty"`
	Status        string     `json:"status"`
	SubmittedDate *time.Time `json:"submitted_date,omitempty"`
	ReviewedDate  *time.Time `json:"reviewed_date,omitempty"`
	ReviewedBy    string     `json:"reviewed_by,omitempty"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	Comments      []Comment  `json:"comments,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Comment is an append-only thread entry owned by its expense. Author
// fields are a snapshot taken at post time, chat style: a later rename
// does not rewrite history.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserRole  string    `json:"user_role"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
