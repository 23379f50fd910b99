package ports

import (
	"context"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// AuthService implements registration, login and profile retrieval.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetMe(ctx context.Context, token string) (*domain.User, error)
}

// UserService exposes the admin-only user operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// RoleService exposes the admin-only role operations.
type RoleService interface {
	Create(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	Update(ctx context.Context, id string, name string) (*domain.Role, error)
	Delete(ctx context.Context, id string) (*domain.Role, error)
}
