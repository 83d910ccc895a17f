package reports

import (
	"log/slog"

	"github.com/hanifadr/reimbursement-hub/internal/expense"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

// Top-N cutoffs the views apply, matching the dashboard's three
// popular categories and the reports page's five-way breakdown.
const (
	recentLimit       = 3
	attentionLimit    = 3
	popularLimit      = 3
	distributionLimit = 5
)

// ExpenseAPI is the slice of the expense service the report views
// read from. All listings arrive role-scoped already.
type ExpenseAPI interface {
	ListExpenses(actor *user.User, filter expense.ListFilter) ([]*expense.Expense, error)
	RecentForActor(actor *user.User, n int) ([]*expense.Expense, error)
	AttentionForActor(actor *user.User) ([]*expense.Expense, error)
}

type CategoryAPI interface {
	CategoryNames() (map[string]string, error)
}

type UserAPI interface {
	GetAll() ([]*user.User, error)
}

type Service struct {
	expenses   ExpenseAPI
	categories CategoryAPI
	users      UserAPI
	logger     *slog.Logger
}

func NewService(expenses ExpenseAPI, categories CategoryAPI, users UserAPI, logger *slog.Logger) *Service {
	return &Service{
		expenses:   expenses,
		categories: categories,
		users:      users,
		logger:     logger,
	}
}

// Dashboard computes the actor's stats row, recent submissions and
// attention queue. Employees see their own numbers; hr and accountants
// see the whole company's.
func (s *Service) Dashboard(actor *user.User) (*DashboardResponse, error) {
	visible, err := s.expenses.ListExpenses(actor, expense.ListFilter{})
	if err != nil {
		return nil, err
	}

	recent, err := s.expenses.RecentForActor(actor, recentLimit)
	if err != nil {
		return nil, err
	}

	attention, err := s.expenses.AttentionForActor(actor)
	if err != nil {
		return nil, err
	}
	if len(attention) > attentionLimit {
		attention = attention[:attentionLimit]
	}

	categoryNames, employeeNames, err := s.nameIndexes()
	if err != nil {
		return nil, err
	}

	resp := &DashboardResponse{
		TotalSubmitted:   TotalSubmittedCount(visible),
		TotalApproved:    ApprovedCount(visible),
		ApprovalRate:     ApprovalRate(visible),
		TotalAmountCents: TotalAmountCents(visible),
		Recent:           make([]ExpenseSummary, 0, len(recent)),
		NeedsAttention:   make([]ExpenseSummary, 0, len(attention)),
	}
	for _, e := range recent {
		resp.Recent = append(resp.Recent, summarize(e, categoryNames, employeeNames))
	}
	for _, e := range attention {
		resp.NeedsAttention = append(resp.NeedsAttention, summarize(e, categoryNames, employeeNames))
	}

	if actor != nil && actor.IsHR() {
		ranked := CategoryUsageRanked(visible)
		if len(ranked) > popularLimit {
			ranked = ranked[:popularLimit]
		}
		for _, u := range ranked {
			resp.PopularCategories = append(resp.PopularCategories, PopularCategory{
				CategoryID:   u.CategoryID,
				CategoryName: categoryNames[u.CategoryID],
				Count:        u.Count,
			})
		}
	}

	s.logger.Debug("dashboard computed",
		"actor_id", actorID(actor),
		"visible_expenses", len(visible))

	return resp, nil
}

// Summary computes the reports view over the actor-visible expenses.
func (s *Service) Summary(actor *user.User) (*SummaryResponse, error) {
	visible, err := s.expenses.ListExpenses(actor, expense.ListFilter{})
	if err != nil {
		return nil, err
	}

	categoryNames, _, err := s.nameIndexes()
	if err != nil {
		return nil, err
	}

	distribution := CategoryAmountDistribution(visible)
	if len(distribution) > distributionLimit {
		distribution = distribution[:distributionLimit]
	}

	resp := &SummaryResponse{
		Totals:           AmountTotalsByStatus(visible),
		Distribution:     make([]DistributionEntry, 0, len(distribution)),
		ExpenseCount:     len(visible),
		ApprovalRate:     ApprovalRate(visible),
		TotalAmountCents: TotalAmountCents(visible),
	}
	for _, d := range distribution {
		resp.Distribution = append(resp.Distribution, DistributionEntry{
			CategoryID:   d.CategoryID,
			CategoryName: categoryNames[d.CategoryID],
			AmountCents:  d.AmountCents,
			Percentage:   d.Percentage,
		})
	}
	for _, u := range CategoryUsageRanked(visible) {
		resp.UsageRanking = append(resp.UsageRanking, PopularCategory{
			CategoryID:   u.CategoryID,
			CategoryName: categoryNames[u.CategoryID],
			Count:        u.Count,
		})
	}

	return resp, nil
}

func (s *Service) nameIndexes() (categoryNames, employeeNames map[string]string, err error) {
	categoryNames, err = s.categories.CategoryNames()
	if err != nil {
		s.logger.Error("failed to resolve category names", "error", err)
		return nil, nil, err
	}

	users, err := s.users.GetAll()
	if err != nil {
		s.logger.Error("failed to resolve user names", "error", err)
		return nil, nil, err
	}
	employeeNames = make(map[string]string, len(users))
	for _, u := range users {
		employeeNames[u.ID] = u.Name
	}
	return categoryNames, employeeNames, nil
}

func actorID(actor *user.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
