package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/domain/user"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// OwnersClient is a role-scoped view over the user and property
// endpoints. The backend has no separate owner resource; this client
// exists so callers working with landlords never pass role filters by
// hand.
type OwnersClient struct {
	t *transport.Client
}

func (c *OwnersClient) ListOwners(ctx context.Context) ([]user.User, error) {
	query := url.Values{}
	query.Set("role", string(user.RoleOwner))
	var out []user.User
	if err := c.t.Get(ctx, "/api/users", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOwner fetches one user and rejects it if the record is not an
// owner, so a tenant id never masquerades as a landlord.
func (c *OwnersClient) GetOwner(ctx context.Context, id string) (user.User, error) {
	var out user.User
	if err := c.t.Get(ctx, "/api/users/"+url.PathEscape(id), &out, nil); err != nil {
		return user.User{}, err
	}
	if out.Role != user.RoleOwner {
		return user.User{}, fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	return out, nil
}

// ListOwnerProperties lists the listings held by one owner.
func (c *OwnersClient) ListOwnerProperties(ctx context.Context, ownerID string) ([]property.Property, error) {
	query := url.Values{}
	query.Set("ownerId", ownerID)
	var out []property.Property
	if err := c.t.Get(ctx, "/api/properties", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}
