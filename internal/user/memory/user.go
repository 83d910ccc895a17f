// Package memory holds the in-process user store. There is no
// persistence in this system: collections live for the lifetime of the
// process and reset on restart.
package memory

import (
	"sync"

	"github.com/hanifadr/reimbursement-hub/internal"
	userDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*userDatamodel.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*userDatamodel.User),
	}
}

func (r *UserRepository) Create(u *userDatamodel.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return internal.NewConflictError("user id already exists", internal.ErrCodeDuplicateID)
	}

	stored := *u
	r.users[u.ID] = &stored
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) GetByID(id string) (*userDatamodel.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, internal.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *UserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.users[id].Email == email {
			copied := *r.users[id]
			return &copied, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

// GetAll returns users in insertion order.
func (r *UserRepository) GetAll() ([]*userDatamodel.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*userDatamodel.User, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.users[id]
		result = append(result, &copied)
	}
	return result, nil
}
