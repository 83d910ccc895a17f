package notification

import "time"

// AppNotification is the stored representation of an in-app
// notification. Only the Read flag ever changes after creation.
type AppNotification struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	Read            bool      `json:"read"`
	Timestamp       time.Time `json:"timestamp"`
	Type            string    `json:"type"`
	RelatedItemID   string    `json:"related_item_id,omitempty"`
	RelatedItemType string    `json:"related_item_type,omitempty"`
}
