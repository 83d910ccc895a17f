package expense_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hanifadr/reimbursement-hub/internal"
	expenseDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/expense"
	"github.com/hanifadr/reimbursement-hub/internal/core/events"
	"github.com/hanifadr/reimbursement-hub/internal/expense"
)

// Mock repository for testing
type mockExpenseRepository struct {
	expenses map[string]*expenseDatamodel.Expense
	order    []string

	createError error
	getError    error
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{
		expenses: make(map[string]*expenseDatamodel.Expense),
	}
}

func (m *mockExpenseRepository) Create(e *expenseDatamodel.Expense) error {
	if m.createError != nil {
		return m.createError
	}
	stored := *e
	m.expenses[e.ID] = &stored
	m.order = append(m.order, e.ID)
	return nil
}

func (m *mockExpenseRepository) GetByID(id string) (*expenseDatamodel.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	e, exists := m.expenses[id]
	if !exists {
		return nil, errors.New("expense not found")
	}
	copied := *e
	return &copied, nil
}

func (m *mockExpenseRepository) GetAll() ([]*expenseDatamodel.Expense, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	result := make([]*expenseDatamodel.Expense, 0, len(m.order))
	for _, id := range m.order {
		copied := *m.expenses[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockExpenseRepository) GetByEmployeeID(employeeID string) ([]*expenseDatamodel.Expense, error) {
	all, err := m.GetAll()
	if err != nil {
		return nil, err
	}
	var result []*expenseDatamodel.Expense
	for _, e := range all {
		if e.EmployeeID == employeeID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockExpenseRepository) Mutate(id string, fn func(e *expenseDatamodel.Expense) error) error {
	stored, exists := m.expenses[id]
	if !exists {
		return internal.ErrExpenseNotFound
	}
	working := *stored
	if err := fn(&working); err != nil {
		return err
	}
	m.expenses[id] = &working
	return nil
}

func (m *mockExpenseRepository) AppendComment(id string, c expenseDatamodel.Comment) error {
	return m.Mutate(id, func(e *expenseDatamodel.Expense) error {
		e.Comments = append(e.Comments, c)
		return nil
	})
}

// Mock category lookup for testing
type mockCategoryAPI struct {
	active map[string]bool
	names  map[string]string
}

func newMockCategoryAPI() *mockCategoryAPI {
	return &mockCategoryAPI{
		active: map[string]bool{"cat_001": true, "cat_002": true, "cat_inactive": false},
		names:  map[string]string{"cat_001": "Work Equipment", "cat_002": "Professional Development"},
	}
}

func (m *mockCategoryAPI) IsActiveCategory(id string) bool {
	return m.active[id]
}

func (m *mockCategoryAPI) CategoryNames() (map[string]string, error) {
	return m.names, nil
}

// Mock event publisher capturing published events
type mockPublisher struct {
	published []events.Event
}

func (m *mockPublisher) Publish(_ context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

var _ = Describe("ExpenseService", func() {
	var (
		service   *expense.Service
		mockRepo  *mockExpenseRepository
		mockCats  *mockCategoryAPI
		publisher *mockPublisher
		logger    *slog.Logger
		ctx       context.Context
	)

	BeforeEach(func() {
		mockRepo = newMockExpenseRepository()
		mockCats = newMockCategoryAPI()
		publisher = &mockPublisher{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = expense.NewService(mockRepo, mockCats, publisher, logger)
		ctx = context.Background()
	})

	Describe("CreateExpense", func() {
		Context("when an employee creates a draft", func() {
			It("should store the draft without a submission date", func() {
				dto := expense.CreateExpenseDTO{
					AmountCents: 24999,
					Description: "Ergonomic office chair",
					CategoryID:  "cat_001",
				}

				result, err := service.CreateExpense(ctx, employee, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(expense.StatusDraft))
				Expect(result.EmployeeID).To(Equal(employee.ID))
				Expect(result.AmountCents).To(Equal(int64(24999)))
				Expect(result.SubmittedDate).To(BeNil())
				Expect(publisher.published).To(BeEmpty())
			})
		})

		Context("when the payload asks to submit immediately", func() {
			It("should create and submit in one call and publish the status change", func() {
				dto := expense.CreateExpenseDTO{
					AmountCents: 19900,
					Description: "Online course",
					CategoryID:  "cat_002",
					ReceiptURL:  "uploads/receipts/course.pdf",
					Submit:      true,
				}

				result, err := service.CreateExpense(ctx, employee, dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(expense.StatusSubmitted))
				Expect(result.SubmittedDate).ToNot(BeNil())

				Expect(publisher.published).To(HaveLen(1))
				statusEvent, ok := publisher.published[0].(*events.ExpenseStatusChangedEvent)
				Expect(ok).To(BeTrue())
				Expect(statusEvent.ToStatus).To(Equal(string(expense.StatusSubmitted)))
			})
		})

		Context("when the actor is not an employee", func() {
			It("should reject hr and accountants", func() {
				dto := expense.CreateExpenseDTO{
					AmountCents: 1000,
					Description: "test",
					CategoryID:  "cat_001",
				}

				_, err := service.CreateExpense(ctx, hrUser, dto)
				Expect(err).To(MatchError(internal.ErrRoleNotAllowed))

				_, err = service.CreateExpense(ctx, acctUser, dto)
				Expect(err).To(MatchError(internal.ErrRoleNotAllowed))
			})
		})

		Context("when the category is missing or inactive", func() {
			It("should return a validation error", func() {
				dto := expense.CreateExpenseDTO{
					AmountCents: 1000,
					Description: "test",
					CategoryID:  "cat_inactive",
				}

				_, err := service.CreateExpense(ctx, employee, dto)

				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			})
		})

		Context("when validation fails", func() {
			It("should reject a zero amount", func() {
				dto := expense.CreateExpenseDTO{
					AmountCents: 0,
					Description: "test",
					CategoryID:  "cat_001",
				}

				_, err := service.CreateExpense(ctx, employee, dto)

				Expect(err).To(HaveOccurred())
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			})
		})
	})

	Describe("GetExpense", func() {
		var createdID string

		BeforeEach(func() {
			dto := expense.CreateExpenseDTO{
				AmountCents: 24999,
				Description: "Ergonomic office chair",
				CategoryID:  "cat_001",
			}
			created, err := service.CreateExpense(ctx, employee, dto)
			Expect(err).ToNot(HaveOccurred())
			createdID = created.ID
		})

		It("should let the owner read their expense", func() {
			result, err := service.GetExpense(employee, createdID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).To(Equal(createdID))
		})

		It("should hide other employees' expenses", func() {
			_, err := service.GetExpense(otherEmp, createdID)

			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
		})

		It("should let hr read any expense", func() {
			result, err := service.GetExpense(hrUser, createdID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).To(Equal(createdID))
		})
	})

	Describe("Transition", func() {
		var expenseID string

		BeforeEach(func() {
			dto := expense.CreateExpenseDTO{
				AmountCents: 24999,
				Description: "Ergonomic office chair",
				CategoryID:  "cat_001",
				ReceiptURL:  "uploads/receipts/chair.pdf",
			}
			created, err := service.CreateExpense(ctx, employee, dto)
			Expect(err).ToNot(HaveOccurred())
			expenseID = created.ID
		})

		It("should apply a legal transition and publish the event", func() {
			result, err := service.Transition(ctx, employee, expenseID, expense.StatusSubmitted)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(expense.StatusSubmitted))

			stored, _ := mockRepo.GetByID(expenseID)
			Expect(stored.Status).To(Equal(string(expense.StatusSubmitted)))
			Expect(publisher.published).To(HaveLen(1))
		})

		It("should leave the stored expense untouched on an illegal transition", func() {
			_, err := service.Transition(ctx, employee, expenseID, expense.StatusPaid)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidTransition))

			stored, _ := mockRepo.GetByID(expenseID)
			Expect(stored.Status).To(Equal(string(expense.StatusDraft)))
			Expect(publisher.published).To(BeEmpty())
		})

		It("should refuse transitions on expenses the actor cannot see", func() {
			_, err := service.Transition(ctx, otherEmp, expenseID, expense.StatusSubmitted)

			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
		})

		It("should return not found for unknown expenses", func() {
			_, err := service.Transition(ctx, employee, "missing", expense.StatusSubmitted)

			Expect(err).To(MatchError(internal.ErrExpenseNotFound))
		})
	})

	Describe("AddComment", func() {
		var expenseID string

		BeforeEach(func() {
			dto := expense.CreateExpenseDTO{
				AmountCents: 34999,
				Description: "27-inch monitor",
				CategoryID:  "cat_001",
				ReceiptURL:  "uploads/receipts/monitor.jpg",
			}
			created, err := service.CreateExpense(ctx, employee, dto)
			Expect(err).ToNot(HaveOccurred())
			expenseID = created.ID
		})

		It("should append the comment with an author snapshot", func() {
			c, err := service.AddComment(ctx, hrUser, expenseID, expense.CommentDTO{Message: "Need the receipt in PDF"})

			Expect(err).ToNot(HaveOccurred())
			Expect(c.UserID).To(Equal(hrUser.ID))
			Expect(c.UserName).To(Equal(hrUser.Name))
			Expect(c.UserRole).To(Equal(string(hrUser.Role)))

			stored, _ := mockRepo.GetByID(expenseID)
			Expect(stored.Comments).To(HaveLen(1))
			Expect(stored.Comments[0].Message).To(Equal("Need the receipt in PDF"))
		})

		It("should publish a comment event", func() {
			_, err := service.AddComment(ctx, hrUser, expenseID, expense.CommentDTO{Message: "hello"})

			Expect(err).ToNot(HaveOccurred())
			Expect(publisher.published).To(HaveLen(1))
			commentEvent, ok := publisher.published[0].(*events.CommentPostedEvent)
			Expect(ok).To(BeTrue())
			Expect(commentEvent.AuthorID).To(Equal(hrUser.ID))
			Expect(commentEvent.EmployeeID).To(Equal(employee.ID))
		})

		It("should reject empty messages", func() {
			_, err := service.AddComment(ctx, hrUser, expenseID, expense.CommentDTO{Message: "   "})

			Expect(err).To(HaveOccurred())
		})

		It("should refuse comments on invisible expenses", func() {
			_, err := service.AddComment(ctx, otherEmp, expenseID, expense.CommentDTO{Message: "hi"})

			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
		})
	})

	Describe("ListExpenses", func() {
		BeforeEach(func() {
			for _, dto := range []expense.CreateExpenseDTO{
				{AmountCents: 24999, Description: "Ergonomic office chair", CategoryID: "cat_001"},
				{AmountCents: 19900, Description: "Online course", CategoryID: "cat_002"},
			} {
				_, err := service.CreateExpense(ctx, employee, dto)
				Expect(err).ToNot(HaveOccurred())
			}
			_, err := service.CreateExpense(ctx, otherEmp, expense.CreateExpenseDTO{
				AmountCents: 1599, Description: "Subscription", CategoryID: "cat_001",
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should scope employees to their own expenses", func() {
			result, err := service.ListExpenses(employee, expense.ListFilter{})

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("should show hr everything", func() {
			result, err := service.ListExpenses(hrUser, expense.ListFilter{})

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(3))
		})

		It("should apply search over the resolved category name", func() {
			result, err := service.ListExpenses(hrUser, expense.ListFilter{Search: "professional"})

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Description).To(Equal("Online course"))
		})

		It("should combine category and bucket filters", func() {
			result, err := service.ListExpenses(hrUser, expense.ListFilter{
				CategoryID: "cat_001",
				Bucket:     expense.BucketDraft,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})
	})
})
