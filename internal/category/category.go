package category

import (
	"time"

	categoryDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/category"
)

type Category struct {
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

func (c *Category) IsActiveCategory() bool {
	return c.IsActive
}

func (c *Category) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

func (c *Category) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

func NewCategory(id string, dto CreateCategoryDTO, createdBy string) *Category {
	now := time.Now()
	return &Category{
		ID:                      id,
		Name:                    dto.Name,
		ShortDescription:        dto.ShortDescription,
		FullDescription:         dto.FullDescription,
		ReimbursementConditions: dto.ReimbursementConditions,
		CreatedAt:               now,
		CreatedBy:               createdBy,
		IsActive:                true,
		UpdatedAt:               now,
	}
}

func ToDataModel(c *Category) *categoryDatamodel.ReimbursementCategory {
	return &categoryDatamodel.ReimbursementCategory{
		ID:                      c.ID,
		Name:                    c.Name,
		ShortDescription:        c.ShortDescription,
		FullDescription:         c.FullDescription,
		ReimbursementConditions: c.ReimbursementConditions,
		CreatedAt:               c.CreatedAt,
		CreatedBy:               c.CreatedBy,
		IsActive:                c.IsActive,
		UpdatedAt:               c.UpdatedAt,
	}
}

func FromDataModel(c *categoryDatamodel.ReimbursementCategory) *Category {
	return &Category{
		ID:                      c.ID,
		Name:                    c.Name,
		ShortDescription:        c.ShortDescription,
		FullDescription:         c.FullDescription,
		ReimbursementConditions: c.ReimbursementConditions,
		CreatedAt:               c.CreatedAt,
		CreatedBy:               c.CreatedBy,
		IsActive:                c.IsActive,
		UpdatedAt:               c.UpdatedAt,
	}
}

func FromDataModelSlice(categories []*categoryDatamodel.ReimbursementCategory) []*Category {
	result := make([]*Category, len(categories))
	for i, c := range categories {
		result[i] = FromDataModel(c)
	}
	return result
}
