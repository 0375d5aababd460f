package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/rating"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// RatingsClient is the rating service module.
type RatingsClient struct {
	t *transport.Client
}

var _ storage.RatingStore = (*RatingsClient)(nil)

func (c *RatingsClient) CreateRating(ctx context.Context, r rating.Rating) (rating.Rating, error) {
	var out rating.Rating
	if err := c.t.Post(ctx, "/api/ratings", r, &out); err != nil {
		return rating.Rating{}, err
	}
	return out, nil
}

func (c *RatingsClient) ListRatings(ctx context.Context, propertyID string) ([]rating.Rating, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("propertyId", propertyID)
	}
	var out []rating.Rating
	if err := c.t.Get(ctx, "/api/ratings", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}
