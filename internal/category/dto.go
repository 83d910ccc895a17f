package category

import (
	"strings"

	"github.com/hanifadr/reimbursement-hub/internal"
)

type CreateCategoryDTO struct {
	Name                    string `json:"name"`
	ShortDescription        string `json:"short_description"`
	FullDescription         string `json:"full_description"`
	ReimbursementConditions string `json:"reimbursement_conditions"`
}

func (dto CreateCategoryDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeInvalidCategory)
	}
	if strings.TrimSpace(dto.ShortDescription) == "" {
		return internal.NewValidationFieldError("short_description", "short description is required", internal.ErrCodeInvalidCategory)
	}
	return nil
}

type CategoryResponse struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	ShortDescription        string `json:"short_description"`
	FullDescription         string `json:"full_description,omitempty"`
	ReimbursementConditions string `json:"reimbursement_conditions,omitempty"`
	IsActive                bool   `json:"is_active"`
	CreatedByName           string `json:"created_by_name,omitempty"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
