package expense_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/expense"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

func TestExpense(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Suite")
}

var (
	employee = &user.User{ID: "usr_001", Name: "Alex Morgan", Role: user.RoleEmployee}
	otherEmp = &user.User{ID: "usr_004", Name: "Sam Johnson", Role: user.RoleEmployee}
	hrUser   = &user.User{ID: "usr_002", Name: "Jamie Chen", Role: user.RoleHR}
	acctUser = &user.User{ID: "usr_003", Name: "Taylor Smith", Role: user.RoleAccountant}
)

func draftExpense() *expense.Expense {
	return &expense.Expense{
		ID:          "exp_100",
		EmployeeID:  employee.ID,
		CategoryID:  "cat_001",
		AmountCents: 24999,
		Description: "Ergonomic office chair",
		ReceiptURL:  "uploads/receipts/exp_100.pdf",
		Status:      expense.StatusDraft,
	}
}

var _ = Describe("ApplyTransition", func() {
	now := time.Date(2023, time.July, 1, 12, 0, 0, 0, time.UTC)

	Context("when the owner submits a draft", func() {
		It("should move to submitted and stamp the submission date", func() {
			e := draftExpense()

			err := expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)

			Expect(err).ToNot(HaveOccurred())
			Expect(e.Status).To(Equal(expense.StatusSubmitted))
			Expect(e.SubmittedDate).ToNot(BeNil())
			Expect(*e.SubmittedDate).To(Equal(now))
		})

		It("should refuse submission without a receipt", func() {
			e := draftExpense()
			e.ReceiptURL = ""

			err := expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(e.Status).To(Equal(expense.StatusDraft))
			Expect(e.SubmittedDate).To(BeNil())
		})

		It("should refuse submission by another employee", func() {
			e := draftExpense()

			err := expense.ApplyTransition(e, expense.StatusSubmitted, otherEmp, now)

			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
			Expect(e.Status).To(Equal(expense.StatusDraft))
		})
	})

	Context("when hr reviews a submission", func() {
		submitted := func() *expense.Expense {
			e := draftExpense()
			Expect(expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)).To(Succeed())
			return e
		}

		It("should allow approving directly from submitted", func() {
			e := submitted()
			reviewTime := now.Add(48 * time.Hour)

			err := expense.ApplyTransition(e, expense.StatusApproved, hrUser, reviewTime)

			Expect(err).ToNot(HaveOccurred())
			Expect(e.Status).To(Equal(expense.StatusApproved))
			Expect(e.ReviewedBy).To(Equal(hrUser.ID))
			Expect(e.ReviewedDate).ToNot(BeNil())
			Expect(*e.ReviewedDate).To(Equal(reviewTime))
		})

		It("should allow taking the expense under review first", func() {
			e := submitted()

			Expect(expense.ApplyTransition(e, expense.StatusUnderReview, hrUser, now)).To(Succeed())
			Expect(e.Status).To(Equal(expense.StatusUnderReview))

			Expect(expense.ApplyTransition(e, expense.StatusNeedsRevision, hrUser, now)).To(Succeed())
			Expect(e.Status).To(Equal(expense.StatusNeedsRevision))
		})

		It("should refuse review actions from employees", func() {
			e := submitted()

			err := expense.ApplyTransition(e, expense.StatusApproved, employee, now)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
			Expect(e.Status).To(Equal(expense.StatusSubmitted))
		})
	})

	Context("when a review action arrives after approval", func() {
		It("should reject approved to rejected and leave the expense unchanged", func() {
			e := draftExpense()
			Expect(expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)).To(Succeed())
			Expect(expense.ApplyTransition(e, expense.StatusApproved, hrUser, now)).To(Succeed())
			before := *e

			err := expense.ApplyTransition(e, expense.StatusRejected, hrUser, now.Add(time.Hour))

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))
			Expect(*e).To(Equal(before))
		})
	})

	Context("when the employee resubmits after revision", func() {
		It("should overwrite the original submission date", func() {
			e := draftExpense()
			firstSubmit := now
			Expect(expense.ApplyTransition(e, expense.StatusSubmitted, employee, firstSubmit)).To(Succeed())
			Expect(expense.ApplyTransition(e, expense.StatusNeedsRevision, hrUser, now.Add(time.Hour))).To(Succeed())

			resubmit := now.Add(72 * time.Hour)
			err := expense.ApplyTransition(e, expense.StatusSubmitted, employee, resubmit)

			Expect(err).ToNot(HaveOccurred())
			Expect(e.Status).To(Equal(expense.StatusSubmitted))
			Expect(*e.SubmittedDate).To(Equal(resubmit))
		})

		It("should require a receipt again when resubmitting", func() {
			e := draftExpense()
			Expect(expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)).To(Succeed())
			Expect(expense.ApplyTransition(e, expense.StatusNeedsRevision, hrUser, now)).To(Succeed())
			e.ReceiptURL = ""

			err := expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)

			Expect(err).To(HaveOccurred())
			Expect(e.Status).To(Equal(expense.StatusNeedsRevision))
		})
	})

	Context("when the accountant pays out", func() {
		It("should walk approved through processing to paid and stamp the payment date", func() {
			e := draftExpense()
			Expect(expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)).To(Succeed())
			Expect(expense.ApplyTransition(e, expense.StatusApproved, hrUser, now)).To(Succeed())

			Expect(expense.ApplyTransition(e, expense.StatusProcessingPayment, acctUser, now)).To(Succeed())
			Expect(e.Status).To(Equal(expense.StatusProcessingPayment))
			Expect(e.PaidDate).To(BeNil())

			payTime := now.Add(7 * 24 * time.Hour)
			Expect(expense.ApplyTransition(e, expense.StatusPaid, acctUser, payTime)).To(Succeed())
			Expect(e.Status).To(Equal(expense.StatusPaid))
			Expect(*e.PaidDate).To(Equal(payTime))
		})

		It("should refuse payment actions from hr", func() {
			e := draftExpense()
			Expect(expense.ApplyTransition(e, expense.StatusSubmitted, employee, now)).To(Succeed())
			Expect(expense.ApplyTransition(e, expense.StatusApproved, hrUser, now)).To(Succeed())

			err := expense.ApplyTransition(e, expense.StatusProcessingPayment, hrUser, now)

			Expect(err).To(HaveOccurred())
			Expect(e.Status).To(Equal(expense.StatusApproved))
		})
	})
})

var _ = Describe("AllowedTransitions", func() {
	It("should offer submission only to the owning employee", func() {
		e := draftExpense()

		Expect(expense.AllowedTransitions(e, employee)).To(ConsistOf(expense.StatusSubmitted))
		Expect(expense.AllowedTransitions(e, otherEmp)).To(BeEmpty())
		Expect(expense.AllowedTransitions(e, hrUser)).To(BeEmpty())
	})

	It("should offer hr the four review outcomes on a submitted expense", func() {
		e := draftExpense()
		e.Status = expense.StatusSubmitted

		Expect(expense.AllowedTransitions(e, hrUser)).To(ConsistOf(
			expense.StatusUnderReview,
			expense.StatusApproved,
			expense.StatusRejected,
			expense.StatusNeedsRevision,
		))
	})

	It("should offer the accountant nothing until approval", func() {
		e := draftExpense()
		e.Status = expense.StatusSubmitted
		Expect(expense.AllowedTransitions(e, acctUser)).To(BeEmpty())

		e.Status = expense.StatusApproved
		Expect(expense.AllowedTransitions(e, acctUser)).To(ConsistOf(expense.StatusProcessingPayment))
	})

	It("should offer nothing on terminal statuses", func() {
		e := draftExpense()
		e.Status = expense.StatusPaid

		Expect(expense.AllowedTransitions(e, employee)).To(BeEmpty())
		Expect(expense.AllowedTransitions(e, hrUser)).To(BeEmpty())
		Expect(expense.AllowedTransitions(e, acctUser)).To(BeEmpty())
	})
})
