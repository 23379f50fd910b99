package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

const roleCacheTTL = 5 * time.Minute

// CachedRoleRepository decorates a RoleRepository with a Redis read-through
// cache on name lookups. Registration resolves the default role on every
// request, so that lookup is the hot path worth caching. Writes invalidate
// by name; a cache miss or Redis failure falls back to the inner repository.
// Key format: role:<name>
type CachedRoleRepository struct {
	inner  ports.RoleRepository
	client *redis.Client
}

func NewCachedRoleRepository(inner ports.RoleRepository, client *redis.Client) *CachedRoleRepository {
	return &CachedRoleRepository{inner: inner, client: client}
}

func (c *CachedRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if raw, err := c.client.Get(ctx, c.key(name)).Bytes(); err == nil {
		var role domain.Role
		if err := json.Unmarshal(raw, &role); err == nil {
			return &role, nil
		}
	}

	role, err := c.inner.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(role); err == nil {
		_ = c.client.Set(ctx, c.key(role.Name), raw, roleCacheTTL).Err()
	}
	return role, nil
}

func (c *CachedRoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	created, err := c.inner.Create(ctx, role)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, created.Name)
	return created, nil
}

func (c *CachedRoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachedRoleRepository) FindAll(ctx context.Context) ([]*domain.Role, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachedRoleRepository) Update(ctx context.Context, id string, name string) (*domain.Role, error) {
	// The old name is unknown without an extra read; fetch it so the stale
	// entry does not outlive the rename.
	if old, err := c.inner.FindByID(ctx, id); err == nil {
		c.invalidate(ctx, old.Name)
	}

	updated, err := c.inner.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, updated.Name)
	return updated, nil
}

func (c *CachedRoleRepository) Delete(ctx context.Context, id string) (*domain.Role, error) {
	deleted, err := c.inner.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, deleted.Name)
	return deleted, nil
}

func (c *CachedRoleRepository) invalidate(ctx context.Context, name string) {
	_ = c.client.Del(ctx, c.key(name)).Err()
}

func (c *CachedRoleRepository) key(name string) string {
	return fmt.Sprintf("role:%s", name)
}
