package memory

import (
	"sync"

	"github.com/hanifadr/reimbursement-hub/internal"
	expenseDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/expense"
)

// ExpenseRepository is the in-process expense store. All writes happen
// under one mutex, which is what serializes concurrent transition
// attempts on the same expense: Mutate gives its caller an exclusive
// look at the current record, so a stale status check inside the
// callback can never race another writer.
type ExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*expenseDatamodel.Expense
	order    []string
}

func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		expenses: make(map[string]*expenseDatamodel.Expense),
	}
}

func (r *ExpenseRepository) Create(e *expenseDatamodel.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.expenses[e.ID]; exists {
		return internal.NewConflictError("expense id already exists", internal.ErrCodeDuplicateID)
	}

	r.expenses[e.ID] = copyExpense(e)
	r.order = append(r.order, e.ID)
	return nil
}

func (r *ExpenseRepository) GetByID(id string) (*expenseDatamodel.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.expenses[id]
	if !exists {
		return nil, internal.ErrExpenseNotFound
	}
	return copyExpense(e), nil
}

// GetAll returns a snapshot of every expense in insertion order.
func (r *ExpenseRepository) GetAll() ([]*expenseDatamodel.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*expenseDatamodel.Expense, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, copyExpense(r.expenses[id]))
	}
	return result, nil
}

func (r *ExpenseRepository) GetByEmployeeID(employeeID string) ([]*expenseDatamodel.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*expenseDatamodel.Expense
	for _, id := range r.order {
		if r.expenses[id].EmployeeID == employeeID {
			result = append(result, copyExpense(r.expenses[id]))
		}
	}
	return result, nil
}

// Mutate runs fn against the stored record under the write lock. fn
// receives a working copy; the store is only replaced when fn returns
// nil, so a failed lifecycle check leaves the record untouched.
func (r *ExpenseRepository) Mutate(id string, fn func(e *expenseDatamodel.Expense) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.expenses[id]
	if !exists {
		return internal.ErrExpenseNotFound
	}

	working := copyExpense(stored)
	if err := fn(working); err != nil {
		return err
	}

	r.expenses[id] = working
	return nil
}

func (r *ExpenseRepository) AppendComment(id string, c expenseDatamodel.Comment) error {
	return r.Mutate(id, func(e *expenseDatamodel.Expense) error {
		e.Comments = append(e.Comments, c)
		return nil
	})
}

func copyExpense(e *expenseDatamodel.Expense) *expenseDatamodel.Expense {
	copied := *e
	copied.Comments = append([]expenseDatamodel.Comment(nil), e.Comments...)
	return &copied
}
