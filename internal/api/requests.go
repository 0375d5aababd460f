package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/request"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// RequestsClient is the tenant request service module.
type RequestsClient struct {
	t *transport.Client
}

var _ storage.RequestStore = (*RequestsClient)(nil)

func (c *RequestsClient) CreateRequest(ctx context.Context, r request.TenantRequest) (request.TenantRequest, error) {
	var out request.TenantRequest
	if err := c.t.Post(ctx, "/api/requests", r, &out); err != nil {
		return request.TenantRequest{}, err
	}
	return out, nil
}

func (c *RequestsClient) GetRequest(ctx context.Context, id string) (request.TenantRequest, error) {
	var out request.TenantRequest
	if err := c.t.Get(ctx, "/api/requests/"+url.PathEscape(id), &out, nil); err != nil {
		return request.TenantRequest{}, err
	}
	return out, nil
}

func (c *RequestsClient) ListRequests(ctx context.Context, propertyID, tenantID string) ([]request.TenantRequest, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("propertyId", propertyID)
	}
	if tenantID != "" {
		query.Set("tenantId", tenantID)
	}
	var out []request.TenantRequest
	if err := c.t.Get(ctx, "/api/requests", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RequestsClient) AcceptRequest(ctx context.Context, id string) (request.TenantRequest, error) {
	var out request.TenantRequest
	if err := c.t.Post(ctx, "/api/requests/"+url.PathEscape(id)+"/accept", nil, &out); err != nil {
		return request.TenantRequest{}, err
	}
	return out, nil
}

func (c *RequestsClient) RejectRequest(ctx context.Context, id string) (request.TenantRequest, error) {
	var out request.TenantRequest
	if err := c.t.Post(ctx, "/api/requests/"+url.PathEscape(id)+"/reject", nil, &out); err != nil {
		return request.TenantRequest{}, err
	}
	return out, nil
}
