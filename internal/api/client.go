// Package api exposes the live backend as typed service modules, one
// sub-client per resource. Each method builds a path, delegates to the
// transport façade and propagates its failures unchanged — no validation,
// no retries, no coordination between calls. The sub-clients implement
// the storage interfaces, so the live backend is injectable anywhere the
// fixture store is.
package api

import (
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// Client groups the per-resource service modules over one transport.
type Client struct {
	t *transport.Client
}

// New creates an API client over the given transport.
func New(t *transport.Client) *Client {
	return &Client{t: t}
}

// Users returns the user service module.
func (c *Client) Users() *UsersClient { return &UsersClient{t: c.t} }

// Owners returns the owner view. Owner profiles are users with the
// OWNER role; there is no separate owner endpoint surface.
func (c *Client) Owners() *OwnersClient { return &OwnersClient{t: c.t} }

// Properties returns the property and room service module.
func (c *Client) Properties() *PropertiesClient { return &PropertiesClient{t: c.t} }

// Agreements returns the rental agreement service module.
func (c *Client) Agreements() *AgreementsClient { return &AgreementsClient{t: c.t} }

// Payments returns the payment service module.
func (c *Client) Payments() *PaymentsClient { return &PaymentsClient{t: c.t} }

// Complaints returns the complaint service module.
func (c *Client) Complaints() *ComplaintsClient { return &ComplaintsClient{t: c.t} }

// Documents returns the document service module.
func (c *Client) Documents() *DocumentsClient { return &DocumentsClient{t: c.t} }

// Requests returns the tenant request service module.
func (c *Client) Requests() *RequestsClient { return &RequestsClient{t: c.t} }

// Ratings returns the rating service module.
func (c *Client) Ratings() *RatingsClient { return &RatingsClient{t: c.t} }

// Notifications returns the notification service module.
func (c *Client) Notifications() *NotificationsClient { return &NotificationsClient{t: c.t} }

// Addresses returns the address lookup service module.
func (c *Client) Addresses() *AddressesClient { return &AddressesClient{t: c.t} }
