package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hanifadr/reimbursement-hub/internal"
	"github.com/hanifadr/reimbursement-hub/internal/user"
)

// UserAPI is the slice of the user service the session needs to
// resolve actors.
type UserAPI interface {
	GetByID(id string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	FindSoleUserWithRole(role user.Role) (*user.User, error)
}

// Service owns the process-wide current actor. It starts in a loading
// state and resolves to the default actor exactly once; it never
// reverts to loading afterwards. Role switching is explicit: callers
// either name a concrete actor id or a role held by exactly one user.
type Service struct {
	users  UserAPI
	logger *slog.Logger

	mu      sync.RWMutex
	current *user.User
	ready   bool

	bootstrapOnce sync.Once
}

func NewService(users UserAPI, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Bootstrap resolves the default actor. The optional delay mimics the
// reference environment's simulated async load; zero makes resolution
// synchronous. Repeat calls are no-ops.
func (s *Service) Bootstrap(defaultActorEmail string, delay time.Duration) {
	s.bootstrapOnce.Do(func() {
		resolve := func() {
			if delay > 0 {
				time.Sleep(delay)
			}

			u, err := s.users.GetByEmail(defaultActorEmail)
			if err != nil {
				s.logger.Error("session bootstrap failed: default actor not found",
					"email", defaultActorEmail,
					"error", err)
				return
			}

			s.mu.Lock()
			s.current = u
			s.ready = true
			s.mu.Unlock()

			s.logger.Info("session resolved",
				"actor_id", u.ID,
				"actor_role", u.Role)
		}

		if delay > 0 {
			go resolve()
		} else {
			resolve()
		}
	})
}

// CurrentActor returns the acting user, or a session-loading error
// until Bootstrap has resolved.
func (s *Service) CurrentActor() (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, internal.ErrSessionLoading
	}
	return s.current, nil
}

// SwitchActor makes the named user the current actor.
func (s *Service) SwitchActor(actorID string) (*user.User, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(actorID)
	if err != nil {
		s.logger.Warn("switch actor failed", "actor_id", actorID, "error", err)
		return nil, err
	}

	s.setCurrent(u)
	return u, nil
}

// SwitchRole resolves a role to its sole holder and switches to them.
// Ambiguous or empty roles fail explicitly rather than picking an
// arbitrary user.
func (s *Service) SwitchRole(role user.Role) (*user.User, error) {
	if err := s.requireReady(); err != nil {
		return nil, err
	}

	if !role.Valid() {
		return nil, internal.NewValidationFieldError("role", "unknown role", internal.ErrCodeValidationFailed)
	}

	u, err := s.users.FindSoleUserWithRole(role)
	if err != nil {
		s.logger.Warn("switch role failed", "role", role, "error", err)
		return nil, err
	}

	s.setCurrent(u)
	return u, nil
}

func (s *Service) requireReady() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return internal.ErrSessionLoading
	}
	return nil
}

func (s *Service) setCurrent(u *user.User) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()

	s.logger.Info("actor switched",
		"actor_id", u.ID,
		"actor_role", u.Role)
}
