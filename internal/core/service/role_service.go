package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// RoleService implements the admin-only role operations.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

// Create adds a new role. The existence check gives a clean Conflict for the
// common case; the repository's unique index covers the race.
func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	if _, err := s.roles.FindByName(ctx, name); err == nil {
		return nil, domain.ErrRoleExists
	} else if err != domain.ErrRoleNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	role := &domain.Role{Name: name, CreatedAt: now, UpdatedAt: now}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) Update(ctx context.Context, id string, name string) (*domain.Role, error) {
	updated, err := s.roles.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role_id", id).Str("role", updated.Name).Msg("role renamed")
	return updated, nil
}

func (s *RoleService) Delete(ctx context.Context, id string) (*domain.Role, error) {
	deleted, err := s.roles.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role_id", id).Str("role", deleted.Name).Msg("role deleted")
	return deleted, nil
}
