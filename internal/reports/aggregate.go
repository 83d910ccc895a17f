// Package reports derives dashboard statistics and report breakdowns
// from expense snapshots. Everything in this file is a pure reducer:
// no I/O, no mutation of the input, deterministic for a given slice.
package reports

import (
	"sort"

	"github.com/hanifadr/reimbursement-hub/internal/expense"
)

// TotalSubmittedCount counts expenses that have left draft.
func TotalSubmittedCount(expenses []*expense.Expense) int {
	count := 0
	for _, e := range expenses {
		if e.Status != expense.StatusDraft {
			count++
		}
	}
	return count
}

// ApprovedCount counts expenses that passed review, including those
// already moving through or past payment.
func ApprovedCount(expenses []*expense.Expense) int {
	count := 0
	for _, e := range expenses {
		switch e.Status {
		case expense.StatusApproved, expense.StatusProcessingPayment, expense.StatusPaid:
			count++
		}
	}
	return count
}

// ApprovalRate is approved over submitted in [0,1], and 0 when nothing
// has been submitted yet.
func ApprovalRate(expenses []*expense.Expense) float64 {
	submitted := TotalSubmittedCount(expenses)
	if submitted == 0 {
		return 0
	}
	return float64(ApprovedCount(expenses)) / float64(submitted)
}

// TotalAmountCents sums every expense that is neither a draft nor
// rejected.
func TotalAmountCents(expenses []*expense.Expense) int64 {
	var total int64
	for _, e := range expenses {
		if e.Status != expense.StatusDraft && e.Status != expense.StatusRejected {
			total += e.AmountCents
		}
	}
	return total
}

// StatusAmountTotals are the three headline sums of the reports view.
type StatusAmountTotals struct {
	PendingCents  int64 `json:"pending_cents"`
	ApprovedCents int64 `json:"approved_cents"`
	PaidCents     int64 `json:"paid_cents"`
}

func AmountTotalsByStatus(expenses []*expense.Expense) StatusAmountTotals {
	var totals StatusAmountTotals
	for _, e := range expenses {
		switch e.Status {
		case expense.StatusSubmitted, expense.StatusUnderReview:
			totals.PendingCents += e.AmountCents
		case expense.StatusApproved, expense.StatusProcessingPayment:
			totals.ApprovedCents += e.AmountCents
		case expense.StatusPaid:
			totals.PaidCents += e.AmountCents
		}
	}
	return totals
}

// CategoryUsage is a category's expense count within a snapshot.
type CategoryUsage struct {
	CategoryID string `json:"category_id"`
	Count      int    `json:"count"`
}

// CategoryUsageRanked counts expenses per category, ordered by count
// descending. Ties keep first-seen order, so the ranking is stable for
// a given input order.
func CategoryUsageRanked(expenses []*expense.Expense) []CategoryUsage {
	counts := make(map[string]int)
	var firstSeen []string
	for _, e := range expenses {
		if e.CategoryID == "" {
			continue
		}
		if _, seen := counts[e.CategoryID]; !seen {
			firstSeen = append(firstSeen, e.CategoryID)
		}
		counts[e.CategoryID]++
	}

	ranked := make([]CategoryUsage, 0, len(firstSeen))
	for _, id := range firstSeen {
		ranked = append(ranked, CategoryUsage{CategoryID: id, Count: counts[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// CategoryAmount is a category's share of the reimbursable total.
type CategoryAmount struct {
	CategoryID  string  `json:"category_id"`
	AmountCents int64   `json:"amount_cents"`
	Percentage  float64 `json:"percentage"`
}

// CategoryAmountDistribution sums amounts per category over the
// reimbursable expenses (drafts and rejections excluded) and computes
// each category's percentage of that included total. Ordered by amount
// descending with first-seen tie-break; callers truncate to their own
// top-N.
func CategoryAmountDistribution(expenses []*expense.Expense) []CategoryAmount {
	amounts := make(map[string]int64)
	var firstSeen []string
	var includedTotal int64

	for _, e := range expenses {
		if e.Status == expense.StatusDraft || e.Status == expense.StatusRejected {
			continue
		}
		if e.CategoryID == "" {
			continue
		}
		if _, seen := amounts[e.CategoryID]; !seen {
			firstSeen = append(firstSeen, e.CategoryID)
		}
		amounts[e.CategoryID] += e.AmountCents
		includedTotal += e.AmountCents
	}

	distribution := make([]CategoryAmount, 0, len(firstSeen))
	for _, id := range firstSeen {
		entry := CategoryAmount{CategoryID: id, AmountCents: amounts[id]}
		if includedTotal > 0 {
			entry.Percentage = float64(amounts[id]) / float64(includedTotal) * 100
		}
		distribution = append(distribution, entry)
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].AmountCents > distribution[j].AmountCents
	})
	return distribution
}
