package memory

import (
	"sync"

	"github.com/hanifadr/reimbursement-hub/internal"
	notificationDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/notification"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*notificationDatamodel.AppNotification
	order         []string
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		notifications: make(map[string]*notificationDatamodel.AppNotification),
	}
}

func (r *NotificationRepository) Create(n *notificationDatamodel.AppNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.notifications[n.ID]; exists {
		return internal.NewConflictError("notification id already exists", internal.ErrCodeDuplicateID)
	}

	stored := *n
	r.notifications[n.ID] = &stored
	r.order = append(r.order, n.ID)
	return nil
}

// GetByUserID returns the user's notifications, newest first.
func (r *NotificationRepository) GetByUserID(userID string) ([]*notificationDatamodel.AppNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*notificationDatamodel.AppNotification
	for i := len(r.order) - 1; i >= 0; i-- {
		n := r.notifications[r.order[i]]
		if n.UserID == userID {
			copied := *n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *NotificationRepository) MarkRead(id string) (*notificationDatamodel.AppNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, exists := r.notifications[id]
	if !exists {
		return nil, internal.ErrNotificationNotFound
	}

	n.Read = true
	copied := *n
	return &copied, nil
}
