package category

import "time"

// ReimbursementCategory is the stored representation of an expense
// category. Categories are never hard-deleted; deactivation hides them
// from employees while keeping historic expenses resolvable.
type ReimbursementCategory struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	ShortDescription        string    `json:"short_description"`
	FullDescription         string    `json:"full_description"`
	ReimbursementConditions string    `json:"reimbursement_conditions"`
	CreatedAt               time.Time `json:"created_at"`
	CreatedBy               string    `json:"created_by"`
	IsActive                bool      `json:"is_active"`
	UpdatedAt               time.Time `json:"updated_at"`
}
