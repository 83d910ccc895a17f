package user

import (
	"log/slog"

	"github.com/hanifadr/reimbursement-hub/internal"
	userDatamodel "github.com/hanifadr/reimbursement-hub/internal/core/datamodel/user"
)

type RepositoryAPI interface {
	GetAll() ([]*userDatamodel.User, error)
	GetByID(id string) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	Create(u *userDatamodel.User) error
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

func (s *Service) GetByID(id string) (*User, error) {
	dataUser, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Warn("user lookup failed", "user_id", id, "error", err)
		return nil, internal.ErrUserNotFound
	}
	return FromDataModel(dataUser), nil
}

func (s *Service) GetByEmail(email string) (*User, error) {
	dataUser, err := s.repo.GetByEmail(email)
	if err != nil {
		s.logger.Warn("user lookup by email failed", "email", email, "error", err)
		return nil, internal.ErrUserNotFound
	}
	return FromDataModel(dataUser), nil
}

func (s *Service) GetAll() ([]*User, error) {
	dataUsers, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return FromDataModelSlice(dataUsers), nil
}

// UserNames maps every user id to its display name for boundary-time
// resolution of the weak references expenses carry.
func (s *Service) UserNames() (map[string]string, error) {
	dataUsers, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to resolve user names", "error", err)
		return nil, err
	}

	names := make(map[string]string, len(dataUsers))
	for _, du := range dataUsers {
		names[du.ID] = du.Name
	}
	return names, nil
}

// FindSoleUserWithRole resolves a role to the one stored user holding
// it. Zero or multiple matches are rejected rather than silently
// picking the first, so role switching stays deterministic.
func (s *Service) FindSoleUserWithRole(role Role) (*User, error) {
	dataUsers, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users for role lookup", "role", role, "error", err)
		return nil, err
	}

	var matches []*User
	for _, du := range dataUsers {
		if Role(du.Role) == role {
			matches = append(matches, FromDataModel(du))
		}
	}

	switch len(matches) {
	case 0:
		return nil, internal.NewNotFoundError("no user holds the requested role", internal.ErrCodeNoActorWithRole)
	case 1:
		return matches[0], nil
	default:
		return nil, internal.NewConflictError("multiple users hold the requested role; switch by actor id instead", internal.ErrCodeAmbiguousActor)
	}
}
