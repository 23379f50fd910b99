package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		FirstName:    "Jane",
		LastName:     "Doe",
		Username:     username,
		PasswordHash: "$2a$10$hash",
		Roles:        []string{domain.DefaultRole},
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_Update(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "jdoe")

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UserUpdate{
		FirstName: "Janet",
		LastName:  "Doe",
		Username:  "jdoe",
		Roles:     []string{"user", "admin"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FirstName != "Janet" {
		t.Fatalf("expected first name Janet, got %s", updated.FirstName)
	}
	if !updated.HasAnyRole("admin") {
		t.Fatalf("expected admin role, got %v", updated.Roles)
	}
}

func TestUserService_Update_EmptyRolesFallsBackToDefault(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "jdoe")

	updated, err := svc.Update(context.Background(), seeded.ID, ports.UserUpdate{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jdoe",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != domain.DefaultRole {
		t.Fatalf("expected roles [%s], got %v", domain.DefaultRole, updated.Roles)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seeded := seedUser(t, repo, "jdoe")

	deleted, err := svc.Delete(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.Username != "jdoe" {
		t.Fatalf("unexpected user: %+v", deleted)
	}

	if _, err := svc.Get(context.Background(), seeded.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
