package ports

import (
	"context"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Create must enforce username uniqueness at the write path and return
// domain.ErrUserExists on collision; the service-level existence check is an
// optimization, not the correctness guarantee.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// UserUpdate carries the admin-mutable user fields.
type UserUpdate struct {
	FirstName string
	LastName  string
	Username  string
	Roles     []string
}

// RoleRepository defines the persistence contract for roles. Create must
// enforce name uniqueness and return domain.ErrRoleExists on collision.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]*domain.Role, error)
	Update(ctx context.Context, id string, name string) (*domain.Role, error)
	Delete(ctx context.Context, id string) (*domain.Role, error)
}
