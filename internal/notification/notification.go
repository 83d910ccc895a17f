package notification

import (
	"time"

	notificationDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/notification"
)

type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

type AppNotification struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	Read            bool      `json:"read"`
	Timestamp       time.Time `json:"timestamp"`
	Type            Type      `json:"type"`
	RelatedItemID   string    `json:"related_item_id,omitempty"`
	RelatedItemType string    `json:"related_item_type,omitempty"`
}

func (n *AppNotification) MarkRead() {
	n.Read = true
}

func ToDataModel(n *AppNotification) *notificationDatamodel.AppNotification {
	return &notificationDatamodel.AppNotification{
		ID:              n.ID,
		UserID:          n.UserID,
		Title:           n.Title,
		Message:         n.Message,
		Read:            n.Read,
		Timestamp:       n.Timestamp,
		Type:            string(n.Type),
		RelatedItemID:   n.RelatedItemID,
		RelatedItemType: n.RelatedItemType,
	}
}

func FromDataModel(n *notificationDatamodel.AppNotification) *AppNotification {
	return &AppNotification{
		ID:              n.ID,
		UserID:          n.UserID,
		Title:           n.Title,
		Message:         n.Message,
		Read:            n.Read,
		Timestamp:       n.Timestamp,
		Type:            Type(n.Type),
		RelatedItemID:   n.RelatedItemID,
		RelatedItemType: n.RelatedItemType,
	}
}

func FromDataModelSlice(notifications []*notificationDatamodel.AppNotification) []*AppNotification {
	result := make([]*AppNotification, len(notifications))
	for i, n := range notifications {
		result[i] = FromDataModel(n)
	}
	return result
}
