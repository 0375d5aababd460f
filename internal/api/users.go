package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/user"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// UsersClient is the user service module.
type UsersClient struct {
	t *transport.Client
}

var _ storage.UserStore = (*UsersClient)(nil)

func (c *UsersClient) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	var out user.User
	if err := c.t.Post(ctx, "/api/users", u, &out); err != nil {
		return user.User{}, err
	}
	return out, nil
}

func (c *UsersClient) UpdateUser(ctx context.Context, u user.User) (user.User, error) {
	var out user.User
	if err := c.t.Put(ctx, "/api/users/"+url.PathEscape(u.ID), u, &out); err != nil {
		return user.User{}, err
	}
	return out, nil
}

func (c *UsersClient) GetUser(ctx context.Context, id string) (user.User, error) {
	var out user.User
	if err := c.t.Get(ctx, "/api/users/"+url.PathEscape(id), &out, nil); err != nil {
		return user.User{}, err
	}
	return out, nil
}

func (c *UsersClient) ListUsers(ctx context.Context, role user.Role) ([]user.User, error) {
	query := url.Values{}
	if role != "" {
		query.Set("role", string(role))
	}
	var out []user.User
	if err := c.t.Get(ctx, "/api/users", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UsersClient) VerifyUser(ctx context.Context, id string) (user.User, error) {
	var out user.User
	if err := c.t.Post(ctx, "/api/users/"+url.PathEscape(id)+"/verify", nil, &out); err != nil {
		return user.User{}, err
	}
	return out, nil
}
