package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/userhub/user-management-api/internal/core/domain"
)

type stubRoleService struct {
	createFn func(ctx context.Context, name string) (*domain.Role, error)
	listFn   func(ctx context.Context) ([]*domain.Role, error)
	getFn    func(ctx context.Context, id string) (*domain.Role, error)
	updateFn func(ctx context.Context, id, name string) (*domain.Role, error)
	deleteFn func(ctx context.Context, id string) (*domain.Role, error)
}

func (s *stubRoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	return s.createFn(ctx, name)
}

func (s *stubRoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.listFn(ctx)
}

func (s *stubRoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.getFn(ctx, id)
}

func (s *stubRoleService) Update(ctx context.Context, id, name string) (*domain.Role, error) {
	return s.updateFn(ctx, id, name)
}

func (s *stubRoleService) Delete(ctx context.Context, id string) (*domain.Role, error) {
	return s.deleteFn(ctx, id)
}

func TestRoleHandler_Create_Success(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{
		createFn: func(ctx context.Context, name string) (*domain.Role, error) {
			if name != "moderator" {
				t.Fatalf("unexpected name: %s", name)
			}
			return &domain.Role{ID: "role_1", Name: name}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/admin/roles", `{"role":"moderator"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	role, ok := resp["role"].(map[string]any)
	if !ok || role["role"] != "moderator" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestRoleHandler_Create_Conflict(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{
		createFn: func(ctx context.Context, name string) (*domain.Role, error) {
			return nil, domain.ErrRoleExists
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/admin/roles", `{"role":"user"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRoleHandler_Get_NotFound(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{
		getFn: func(ctx context.Context, id string) (*domain.Role, error) {
			return nil, domain.ErrRoleNotFound
		},
	})

	c, rec := newTestContext(t, http.MethodGet, "/admin/roles/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
