package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// AuthService implements registration, login and profile retrieval.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new account with the default role and returns a signed
// token for it. The username existence check here is only an early exit; the
// repository's unique index is what actually guarantees uniqueness, so a
// concurrent duplicate registration still surfaces as ErrUserExists.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	var defaultRole *domain.Role
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.users.FindByUsername(gctx, username)
		if err == nil {
			return domain.ErrUserExists
		}
		if err != domain.ErrUserNotFound {
			return err
		}
		return nil
	})
	g.Go(func() error {
		role, err := s.roles.FindByName(gctx, domain.DefaultRole)
		if err != nil {
			return err
		}
		defaultRole = role
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		PasswordHash: hash,
		Roles:        []string{defaultRole.Name},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")

	return s.tokens.Issue(created.ID, created.Roles)
}

// Login verifies the credentials and returns a signed token over the stored
// identity and role set.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Roles)
}

// GetMe resolves the token to the full user record. The password hash stays
// out of responses via the domain type's JSON mapping.
func (s *AuthService) GetMe(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, claims.UserID)
}
