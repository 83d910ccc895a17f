package memory

import (
	"sync"

	"github.com/hanifadr/reimbursement-hub/internal"
	categoryDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/category"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*categoryDatamodel.ReimbursementCategory
	order      []string
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[string]*categoryDatamodel.ReimbursementCategory),
	}
}

func (r *CategoryRepository) Create(c *categoryDatamodel.ReimbursementCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[c.ID]; exists {
		return internal.NewConflictError("category id already exists", internal.ErrCodeDuplicateID)
	}

	stored := *c
	r.categories[c.ID] = &stored
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CategoryRepository) GetByID(id string) (*categoryDatamodel.ReimbursementCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.categories[id]
	if !exists {
		return nil, internal.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

// GetAll returns categories in insertion order.
func (r *CategoryRepository) GetAll() ([]*categoryDatamodel.ReimbursementCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*categoryDatamodel.ReimbursementCategory, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.categories[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (r *CategoryRepository) Update(c *categoryDatamodel.ReimbursementCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[c.ID]; !exists {
		return internal.ErrCategoryNotFound
	}

	stored := *c
	r.categories[c.ID] = &stored
	return nil
}
