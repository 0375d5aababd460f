package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// AddressesClient is the address lookup service module.
type AddressesClient struct {
	t *transport.Client
}

var _ storage.AddressStore = (*AddressesClient)(nil)

func (c *AddressesClient) LookupAddresses(ctx context.Context, postalCode string) ([]property.Address, error) {
	query := url.Values{}
	query.Set("postalCode", postalCode)
	var out []property.Address
	if err := c.t.Get(ctx, "/api/addresses", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}
