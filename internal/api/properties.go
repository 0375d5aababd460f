package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// PropertiesClient is the property and room service module.
type PropertiesClient struct {
	t *transport.Client
}

var _ storage.PropertyStore = (*PropertiesClient)(nil)

func (c *PropertiesClient) CreateProperty(ctx context.Context, p property.Property) (property.Property, error) {
	var out property.Property
	if err := c.t.Post(ctx, "/api/properties", p, &out); err != nil {
		return property.Property{}, err
	}
	return out, nil
}

func (c *PropertiesClient) UpdateProperty(ctx context.Context, p property.Property) (property.Property, error) {
	var out property.Property
	if err := c.t.Put(ctx, "/api/properties/"+url.PathEscape(p.ID), p, &out); err != nil {
		return property.Property{}, err
	}
	return out, nil
}

func (c *PropertiesClient) GetProperty(ctx context.Context, id string) (property.Property, error) {
	var out property.Property
	if err := c.t.Get(ctx, "/api/properties/"+url.PathEscape(id), &out, nil); err != nil {
		return property.Property{}, err
	}
	return out, nil
}

func (c *PropertiesClient) ListProperties(ctx context.Context, filter storage.PropertyFilter) ([]property.Property, error) {
	query := url.Values{}
	if filter.OwnerID != "" {
		query.Set("ownerId", filter.OwnerID)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	var out []property.Property
	if err := c.t.Get(ctx, "/api/properties", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PropertiesClient) DeleteProperty(ctx context.Context, id string) error {
	return c.t.Delete(ctx, "/api/properties/"+url.PathEscape(id), nil)
}

func (c *PropertiesClient) CreateRoom(ctx context.Context, r property.Room) (property.Room, error) {
	var out property.Room
	if err := c.t.Post(ctx, "/api/rooms", r, &out); err != nil {
		return property.Room{}, err
	}
	return out, nil
}

func (c *PropertiesClient) GetRoom(ctx context.Context, id string) (property.Room, error) {
	var out property.Room
	if err := c.t.Get(ctx, "/api/rooms/"+url.PathEscape(id), &out, nil); err != nil {
		return property.Room{}, err
	}
	return out, nil
}

func (c *PropertiesClient) ListRooms(ctx context.Context, propertyID string) ([]property.Room, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("propertyId", propertyID)
	}
	var out []property.Room
	if err := c.t.Get(ctx, "/api/rooms", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PropertiesClient) SetRoomAvailability(ctx context.Context, id string, available bool) (property.Room, error) {
	body := map[string]bool{"available": available}
	var out property.Room
	if err := c.t.Post(ctx, "/api/rooms/"+url.PathEscape(id)+"/availability", body, &out); err != nil {
		return property.Room{}, err
	}
	return out, nil
}

func (c *PropertiesClient) AppendRoomHistory(ctx context.Context, id string, rec property.RentalRecord) (property.Room, error) {
	var out property.Room
	if err := c.t.Post(ctx, "/api/rooms/"+url.PathEscape(id)+"/history", rec, &out); err != nil {
		return property.Room{}, err
	}
	return out, nil
}
