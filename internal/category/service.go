package category

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/hanifadr/reimbursement-hub/internal"
	categoryDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/category"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

type RepositoryAPI interface {
	GetAll() ([]*categoryDatamodel.ReimbursementCategory, error)
	GetByID(id string) (*categoryDatamodel.ReimbursementCategory, error)
	Create(c *categoryDatamodel.ReimbursementCategory) error
	Update(c *categoryDatamodel.ReimbursementCategory) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetCategories lists categories. Inactive ones are only included when
// the actor is hr and asked for them; everyone else browses the active
// catalogue.
func (s *Service) GetCategories(actor *user.User, includeInactive bool) ([]*Category, error) {
	dataCategories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, err
	}

	showInactive := includeInactive && actor != nil && actor.IsHR()

	var result []*Category
	for _, dc := range dataCategories {
		domainCategory := FromDataModel(dc)
		if domainCategory.IsActiveCategory() || showInactive {
			result = append(result, domainCategory)
		}
	}

	return result, nil
}

func (s *Service) GetByID(id string) (*Category, error) {
	dataCategory, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("category lookup failed", "category_id", id, "error", err)
		return nil, internal.ErrCategoryNotFound
	}
	return FromDataModel(dataCategory), nil
}

// IsActiveCategory reports whether the id resolves to a category an
// employee may currently submit against.
func (s *Service) IsActiveCategory(id string) bool {
	c, err := s.GetByID(id)
	if err != nil {
		return false
	}
	return c.IsActiveCategory()
}

// CategoryNames maps every category id to its display name, inactive
// ones included so historic expenses still resolve.
func (s *Service) CategoryNames() (map[string]string, error) {
	dataCategories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to resolve category names", "error", err)
		return nil, err
	}

	names := make(map[string]string, len(dataCategories))
	for _, dc := range dataCategories {
		names[dc.ID] = dc.Name
	}
	return names, nil
}

func (s *Service) CreateCategory(actor *user.User, dto CreateCategoryDTO) (*Category, error) {
	if actor == nil || !actor.IsHR() {
		s.logger.Warn("create category denied: hr role required", "actor_id", actorID(actor))
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err, "actor_id", actor.ID)
		return nil, err
	}

	c := NewCategory(uuid.NewString(), dto, actor.ID)
	if err := s.repo.Create(ToDataModel(c)); err != nil {
		s.logger.Error("failed to create category", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("category created",
		"category_id", c.ID,
		"name", c.Name,
		"created_by", actor.ID)

	return c, nil
}

// SetActive toggles the two-state category status. Only hr may flip
// it; the operation is idempotent when the flag already matches.
func (s *Service) SetActive(actor *user.User, id string, active bool) (*Category, error) {
	if actor == nil || !actor.IsHR() {
		s.logger.Warn("toggle category denied: hr role required", "category_id", id, "actor_id", actorID(actor))
		return nil, internal.ErrRoleNotAllowed
	}

	dataCategory, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("category not found for toggle", "category_id", id, "error", err)
		return nil, internal.ErrCategoryNotFound
	}

	c := FromDataModel(dataCategory)
	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}

	if err := s.repo.Update(ToDataModel(c)); err != nil {
		s.logger.Error("failed to update category status", "error", err, "category_id", id)
		return nil, err
	}

	s.logger.Info("category status updated",
		"category_id", id,
		"is_active", active,
		"actor_id", actor.ID)

	return c, nil
}

func actorID(actor *user.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
