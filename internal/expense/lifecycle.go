package expense

import (
	"time"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

// transitionRule is one row of the lifecycle table: who may move an
// expense from one status to another, and what timestamps the move
// stamps. ownerOnly restricts employee transitions to the submitting
// employee.
type transitionRule struct {
	from      Status
	to        Status
	role      user.Role
	ownerOnly bool
	apply     func(e *Expense, actor *user.User, now time.Time)
}

var transitionTable = []transitionRule{
	{
		from: StatusDraft, to: StatusSubmitted, role: user.RoleEmployee, ownerOnly: true,
		apply: func(e *Expense, _ *user.User, now time.Time) {
			e.SubmittedDate = &now
		},
	},
	{
		from: StatusSubmitted, to: StatusUnderReview, role: user.RoleHR,
	},
	{
		from: StatusSubmitted, to: StatusApproved, role: user.RoleHR, apply: markReviewed,
	},
	{
		from: StatusUnderReview, to: StatusApproved, role: user.RoleHR, apply: markReviewed,
	},
	{
		from: StatusSubmitted, to: StatusRejected, role: user.RoleHR, apply: markReviewed,
	},
	{
		from: StatusUnderReview, to: StatusRejected, role: user.RoleHR, apply: markReviewed,
	},
	{
		from: StatusSubmitted, to: StatusNeedsRevision, role: user.RoleHR, apply: markReviewed,
	},
	{
		from: StatusUnderReview, to: StatusNeedsRevision, role: user.RoleHR, apply: markReviewed,
	},
	{
		// Resubmission restarts the review clock: the original
		// submission date is overwritten, not retained.
		from: StatusNeedsRevision, to: StatusSubmitted, role: user.RoleEmployee, ownerOnly: true,
		apply: func(e *Expense, _ *user.User, now time.Time) {
			e.SubmittedDate = &now
		},
	},
	{
		from: StatusApproved, to: StatusProcessingPayment, role: user.RoleAccountant,
	},
	{
		from: StatusProcessingPayment, to: StatusPaid, role: user.RoleAccountant,
		apply: func(e *Expense, _ *user.User, now time.Time) {
			e.PaidDate = &now
		},
	},
}

func markReviewed(e *Expense, actor *user.User, now time.Time) {
	e.ReviewedDate = &now
	e.ReviewedBy = actor.ID
}

// ApplyTransition mutates e in place if the lifecycle table permits
// moving it to the requested status as the given actor. On any
// rejection e is left untouched and the returned error carries the
// current status, the requested status and the actor's role.
func ApplyTransition(e *Expense, to Status, actor *user.User, now time.Time) error {
	if actor == nil {
		return internal.NewInvalidTransitionError(string(e.Status), string(to), "")
	}

	for _, rule := range transitionTable {
		if rule.from != e.Status || rule.to != to {
			continue
		}
		if rule.role != actor.Role {
			break
		}
		if rule.ownerOnly && actor.ID != e.EmployeeID {
			return internal.ErrUnauthorizedAccess
		}
		if e.Status == StatusDraft || e.Status == StatusNeedsRevision {
			// Nothing leaves draft without an attached receipt.
			if !e.HasReceipt() {
				return internal.NewValidationFieldError("receipt_url", "a receipt is required before submitting", internal.ErrCodeMissingReceipt)
			}
		}

		e.Status = to
		e.UpdatedAt = now
		if rule.apply != nil {
			rule.apply(e, actor, now)
		}
		return nil
	}

	return internal.NewInvalidTransitionError(string(e.Status), string(to), string(actor.Role))
}

// AllowedTransitions lists the statuses the actor could move the
// expense to right now. Used by the API so clients can render only
// meaningful actions.
func AllowedTransitions(e *Expense, actor *user.User) []Status {
	if actor == nil {
		return nil
	}

	var allowed []Status
	for _, rule := range transitionTable {
		if rule.from != e.Status || rule.role != actor.Role {
			continue
		}
		if rule.ownerOnly && actor.ID != e.EmployeeID {
			continue
		}
		allowed = append(allowed, rule.to)
	}
	return allowed
}
