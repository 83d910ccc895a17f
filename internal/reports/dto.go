package reports

import "github.com/hanifadr/reimbursement-hub/internal/expense"

// ExpenseSummary is the compact listing shape used on the dashboard.
type ExpenseSummary struct {
	ID           string `json:"id"`
	Description  string `json:"description"`
	AmountCents  int64  `json:"amount_cents"`
	Status       string `json:"status"`
	CategoryName string `json:"category_name,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
}

type PopularCategory struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
	Count        int    `json:"count"`
}

// DashboardResponse carries the role-scoped stats row plus the two
// short lists the dashboard renders.
type DashboardResponse struct {
	TotalSubmitted    int               `json:"total_submitted"`
	TotalApproved     int               `json:"total_approved"`
	ApprovalRate      float64           `json:"approval_rate"`
	TotalAmountCents  int64             `json:"total_amount_cents"`
	Recent            []ExpenseSummary  `json:"recent"`
	NeedsAttention    []ExpenseSummary  `json:"needs_attention"`
	PopularCategories []PopularCategory `json:"popular_categories,omitempty"`
}

type DistributionEntry struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	AmountCents  int64   `json:"amount_cents"`
	Percentage   float64 `json:"percentage"`
}

// SummaryResponse is the reports view: headline sums per status group
// and the category breakdowns.
type SummaryResponse struct {
	Totals           StatusAmountTotals  `json:"totals"`
	Distribution     []DistributionEntry `json:"distribution"`
	UsageRanking     []PopularCategory   `json:"usage_ranking"`
	ExpenseCount     int                 `json:"expense_count"`
	ApprovalRate     float64             `json:"approval_rate"`
	TotalAmountCents int64               `json:"total_amount_cents"`
}

func summarize(e *expense.Expense, categoryNames map[string]string, employeeNames map[string]string) ExpenseSummary {
	return ExpenseSummary{
		ID:           e.ID,
		Description:  e.Description,
		AmountCents:  e.AmountCents,
		Status:       string(e.Status),
		CategoryName: categoryNames[e.CategoryID],
		EmployeeName: employeeNames[e.EmployeeID],
	}
}
