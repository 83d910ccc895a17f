package expense_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hanifadr/reimbursement-hub/internal/expense"
)

func expenseWithStatus(id string, employeeID string, status expense.Status) *expense.Expense {
	return &expense.Expense{
		ID:          id,
		EmployeeID:  employeeID,
		CategoryID:  "cat_001",
		AmountCents: 1000,
		Description: "expense " + id,
		Status:      status,
	}
}

var _ = Describe("GroupByStatusBucket", func() {
	It("should place every status in exactly one bucket", func() {
		statuses := []expense.Status{
			expense.StatusDraft,
			expense.StatusSubmitted,
			expense.StatusUnderReview,
			expense.StatusApproved,
			expense.StatusRejected,
			expense.StatusNeedsRevision,
			expense.StatusProcessingPayment,
			expense.StatusPaid,
		}

		var all []*expense.Expense
		for i, st := range statuses {
			all = append(all, expenseWithStatus(string(rune('a'+i)), "usr_001", st))
		}

		b := expense.GroupByStatusBucket(all)

		total := len(b.Draft) + len(b.Pending) + len(b.InProgress) + len(b.Completed)
		Expect(total).To(Equal(len(all)))

		Expect(b.Draft).To(HaveLen(1))
		Expect(b.Pending).To(HaveLen(2))
		Expect(b.InProgress).To(HaveLen(3))
		Expect(b.Completed).To(HaveLen(2))
	})

	It("should keep input order inside each bucket", func() {
		first := expenseWithStatus("first", "usr_001", expense.StatusSubmitted)
		second := expenseWithStatus("second", "usr_001", expense.StatusUnderReview)

		b := expense.GroupByStatusBucket([]*expense.Expense{first, second})

		Expect(b.Pending).To(Equal([]*expense.Expense{first, second}))
	})
})

var _ = Describe("FilterBySearch", func() {
	names := map[string]string{"cat_001": "Work Equipment", "cat_002": "Professional Development"}

	It("should return everything in order for an empty term", func() {
		input := []*expense.Expense{
			expenseWithStatus("exp_a", "usr_001", expense.StatusDraft),
			expenseWithStatus("exp_b", "usr_001", expense.StatusSubmitted),
		}

		result := expense.FilterBySearch(input, "", names)

		Expect(result).To(Equal(input))
	})

	It("should match descriptions case-insensitively", func() {
		e := expenseWithStatus("exp_a", "usr_001", expense.StatusDraft)
		e.Description = "Ergonomic office chair"

		result := expense.FilterBySearch([]*expense.Expense{e}, "ERGONOMIC", names)

		Expect(result).To(HaveLen(1))
	})

	It("should match the resolved category name", func() {
		e := expenseWithStatus("exp_a", "usr_001", expense.StatusDraft)
		e.CategoryID = "cat_002"

		result := expense.FilterBySearch([]*expense.Expense{e}, "professional", names)

		Expect(result).To(HaveLen(1))
	})

	It("should drop non-matching expenses", func() {
		e := expenseWithStatus("exp_a", "usr_001", expense.StatusDraft)

		result := expense.FilterBySearch([]*expense.Expense{e}, "nothing-matches-this", names)

		Expect(result).To(BeEmpty())
	})
})

var _ = Describe("FilterByCategory", func() {
	It("should pass everything through for empty and for all", func() {
		input := []*expense.Expense{expenseWithStatus("exp_a", "usr_001", expense.StatusDraft)}

		Expect(expense.FilterByCategory(input, "")).To(HaveLen(1))
		Expect(expense.FilterByCategory(input, "all")).To(HaveLen(1))
	})

	It("should keep only the requested category", func() {
		a := expenseWithStatus("exp_a", "usr_001", expense.StatusDraft)
		b := expenseWithStatus("exp_b", "usr_001", expense.StatusDraft)
		b.CategoryID = "cat_002"

		result := expense.FilterByCategory([]*expense.Expense{a, b}, "cat_002")

		Expect(result).To(Equal([]*expense.Expense{b}))
	})
})

var _ = Describe("RecentExpenses", func() {
	day := func(d int) *time.Time {
		t := time.Date(2023, time.June, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	It("should order newest submission first and truncate to n", func() {
		older := expenseWithStatus("older", "usr_001", expense.StatusSubmitted)
		older.SubmittedDate = day(1)
		newer := expenseWithStatus("newer", "usr_001", expense.StatusSubmitted)
		newer.SubmittedDate = day(20)
		middle := expenseWithStatus("middle", "usr_001", expense.StatusSubmitted)
		middle.SubmittedDate = day(10)

		result := expense.RecentExpenses([]*expense.Expense{older, newer, middle}, 2)

		Expect(result).To(HaveLen(2))
		Expect(result[0].ID).To(Equal("newer"))
		Expect(result[1].ID).To(Equal("middle"))
	})

	It("should sort unsubmitted drafts last", func() {
		draft := expenseWithStatus("draft", "usr_001", expense.StatusDraft)
		submitted := expenseWithStatus("submitted", "usr_001", expense.StatusSubmitted)
		submitted.SubmittedDate = day(5)

		result := expense.RecentExpenses([]*expense.Expense{draft, submitted}, 10)

		Expect(result[0].ID).To(Equal("submitted"))
		Expect(result[1].ID).To(Equal("draft"))
	})

	It("should not mutate its input", func() {
		first := expenseWithStatus("first", "usr_001", expense.StatusSubmitted)
		first.SubmittedDate = day(1)
		second := expenseWithStatus("second", "usr_001", expense.StatusSubmitted)
		second.SubmittedDate = day(2)
		input := []*expense.Expense{first, second}

		_ = expense.RecentExpenses(input, 1)

		Expect(input[0].ID).To(Equal("first"))
		Expect(input[1].ID).To(Equal("second"))
	})
})

var _ = Describe("NeedsAttention", func() {
	all := []*expense.Expense{
		expenseWithStatus("submitted", "usr_004", expense.StatusSubmitted),
		expenseWithStatus("reviewing", "usr_004", expense.StatusUnderReview),
		expenseWithStatus("mine_rev", "usr_001", expense.StatusNeedsRevision),
		expenseWithStatus("theirs_rev", "usr_004", expense.StatusNeedsRevision),
		expenseWithStatus("approved", "usr_001", expense.StatusApproved),
		expenseWithStatus("paid", "usr_001", expense.StatusPaid),
	}

	It("should give hr the review queue", func() {
		result := expense.NeedsAttention(all, hrUser)

		Expect(result).To(HaveLen(2))
		Expect(result[0].ID).To(Equal("submitted"))
		Expect(result[1].ID).To(Equal("reviewing"))
	})

	It("should give employees only their own revision requests", func() {
		result := expense.NeedsAttention(all, employee)

		Expect(result).To(HaveLen(1))
		Expect(result[0].ID).To(Equal("mine_rev"))
	})

	It("should give accountants the approved expenses", func() {
		result := expense.NeedsAttention(all, acctUser)

		Expect(result).To(HaveLen(1))
		Expect(result[0].ID).To(Equal("approved"))
	})
})

var _ = Describe("FilterForActor", func() {
	all := []*expense.Expense{
		expenseWithStatus("mine", "usr_001", expense.StatusDraft),
		expenseWithStatus("theirs", "usr_004", expense.StatusSubmitted),
	}

	It("should narrow employees to their own expenses", func() {
		result := expense.FilterForActor(all, employee)

		Expect(result).To(HaveLen(1))
		Expect(result[0].ID).To(Equal("mine"))
	})

	It("should show hr and accountants everything", func() {
		Expect(expense.FilterForActor(all, hrUser)).To(HaveLen(2))
		Expect(expense.FilterForActor(all, acctUser)).To(HaveLen(2))
	})
})
