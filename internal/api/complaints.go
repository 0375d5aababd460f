package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/complaint"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// ComplaintsClient is the complaint service module.
type ComplaintsClient struct {
	t *transport.Client
}

var _ storage.ComplaintStore = (*ComplaintsClient)(nil)

func (c *ComplaintsClient) CreateComplaint(ctx context.Context, cm complaint.Complaint) (complaint.Complaint, error) {
	var out complaint.Complaint
	if err := c.t.Post(ctx, "/api/complaints", cm, &out); err != nil {
		return complaint.Complaint{}, err
	}
	return out, nil
}

func (c *ComplaintsClient) GetComplaint(ctx context.Context, id string) (complaint.Complaint, error) {
	var out complaint.Complaint
	if err := c.t.Get(ctx, "/api/complaints/"+url.PathEscape(id), &out, nil); err != nil {
		return complaint.Complaint{}, err
	}
	return out, nil
}

func (c *ComplaintsClient) ListComplaints(ctx context.Context, propertyID, agreementID string) ([]complaint.Complaint, error) {
	query := url.Values{}
	if propertyID != "" {
		query.Set("propertyId", propertyID)
	}
	if agreementID != "" {
		query.Set("agreementId", agreementID)
	}
	var out []complaint.Complaint
	if err := c.t.Get(ctx, "/api/complaints", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ComplaintsClient) AdvanceComplaint(ctx context.Context, id, actor string) (complaint.Complaint, error) {
	body := map[string]string{"actor": actor}
	var out complaint.Complaint
	if err := c.t.Post(ctx, "/api/complaints/"+url.PathEscape(id)+"/advance", body, &out); err != nil {
		return complaint.Complaint{}, err
	}
	return out, nil
}

func (c *ComplaintsClient) ResolveComplaint(ctx context.Context, id, actor, note string) (complaint.Complaint, error) {
	body := map[string]string{"actor": actor, "note": note}
	var out complaint.Complaint
	if err := c.t.Post(ctx, "/api/complaints/"+url.PathEscape(id)+"/resolve", body, &out); err != nil {
		return complaint.Complaint{}, err
	}
	return out, nil
}

func (c *ComplaintsClient) CloseComplaint(ctx context.Context, id, actor string) (complaint.Complaint, error) {
	body := map[string]string{"actor": actor}
	var out complaint.Complaint
	if err := c.t.Post(ctx, "/api/complaints/"+url.PathEscape(id)+"/close", body, &out); err != nil {
		return complaint.Complaint{}, err
	}
	return out, nil
}
