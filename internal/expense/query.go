package expense

import (
	"sort"
	"strings"

	"github.com/hanifadr/reimbursement-hub/internal/user"
)

// The query layer is deliberately pure: every function here takes a
// snapshot, returns a fresh slice and never mutates its input, so the
// same snapshot can feed several views at once.

// FilterForActor applies role visibility: employees see only their own
// expenses, hr and accountants see everything.
func FilterForActor(expenses []*Expense, actor *user.User) []*Expense {
	if actor == nil {
		return nil
	}
	if actor.CanSeeAllExpenses() {
		return append([]*Expense(nil), expenses...)
	}

	var result []*Expense
	for _, e := range expenses {
		if e.EmployeeID == actor.ID {
			result = append(result, e)
		}
	}
	return result
}

// FilterBySearch keeps expenses whose description, id or resolved
// category name contains the term, case-insensitively. An empty term
// passes the input through in order.
func FilterBySearch(expenses []*Expense, term string, categoryNames map[string]string) []*Expense {
	if term == "" {
		return append([]*Expense(nil), expenses...)
	}

	needle := strings.ToLower(term)
	var result []*Expense
	for _, e := range expenses {
		if strings.Contains(strings.ToLower(e.Description), needle) ||
			strings.Contains(strings.ToLower(e.ID), needle) ||
			strings.Contains(strings.ToLower(categoryNames[e.CategoryID]), needle) {
			result = append(result, e)
		}
	}
	return result
}

// FilterByCategory keeps expenses in the given category; "all" or ""
// is a pass-through.
func FilterByCategory(expenses []*Expense, categoryID string) []*Expense {
	if categoryID == "" || categoryID == "all" {
		return append([]*Expense(nil), expenses...)
	}

	var result []*Expense
	for _, e := range expenses {
		if e.CategoryID == categoryID {
			result = append(result, e)
		}
	}
	return result
}

// Buckets partitions expenses into the four tab groups. Every expense
// lands in exactly one bucket.
type Buckets struct {
	Draft      []*Expense
	Pending    []*Expense
	InProgress []*Expense
	Completed  []*Expense
}

func GroupByStatusBucket(expenses []*Expense) Buckets {
	var b Buckets
	for _, e := range expenses {
		switch e.Status.Bucket() {
		case BucketDraft:
			b.Draft = append(b.Draft, e)
		case BucketPending:
			b.Pending = append(b.Pending, e)
		case BucketInProgress:
			b.InProgress = append(b.InProgress, e)
		case BucketCompleted:
			b.Completed = append(b.Completed, e)
		}
	}
	return b
}

// RecentExpenses returns up to n expenses ordered by submission date,
// newest first. Unsubmitted expenses sort as oldest. The sort is
// stable so same-date expenses keep their input order.
func RecentExpenses(expenses []*Expense, n int) []*Expense {
	sorted := append([]*Expense(nil), expenses...)
	sort.SliceStable(sorted, func(i, j int) bool {
		var ti, tj int64
		if sorted[i].SubmittedDate != nil {
			ti = sorted[i].SubmittedDate.UnixNano()
		}
		if sorted[j].SubmittedDate != nil {
			tj = sorted[j].SubmittedDate.UnixNano()
		}
		return ti > tj
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// NeedsAttention returns the expenses the actor should act on next:
// hr sees the review queue, employees their own revision requests,
// accountants the approved expenses awaiting payment.
func NeedsAttention(expenses []*Expense, actor *user.User) []*Expense {
	if actor == nil {
		return nil
	}

	var result []*Expense
	for _, e := range expenses {
		switch actor.Role {
		case user.RoleHR:
			if e.Status == StatusSubmitted || e.Status == StatusUnderReview {
				result = append(result, e)
			}
		case user.RoleEmployee:
			if e.EmployeeID == actor.ID && e.Status == StatusNeedsRevision {
				result = append(result, e)
			}
		case user.RoleAccountant:
			if e.Status == StatusApproved {
				result = append(result, e)
			}
		}
	}
	return result
}
