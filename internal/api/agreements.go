package api

import (
	"context"
	"net/url"
	"time"

	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// AgreementsClient is the rental agreement service module.
type AgreementsClient struct {
	t *transport.Client
}

var _ storage.AgreementStore = (*AgreementsClient)(nil)

func (c *AgreementsClient) CreateAgreement(ctx context.Context, a agreement.Agreement) (agreement.Agreement, error) {
	var out agreement.Agreement
	if err := c.t.Post(ctx, "/api/agreements", a, &out); err != nil {
		return agreement.Agreement{}, err
	}
	return out, nil
}

func (c *AgreementsClient) GetAgreement(ctx context.Context, id string) (agreement.Agreement, error) {
	var out agreement.Agreement
	if err := c.t.Get(ctx, "/api/agreements/"+url.PathEscape(id), &out, nil); err != nil {
		return agreement.Agreement{}, err
	}
	return out, nil
}

func (c *AgreementsClient) ListAgreements(ctx context.Context, partyID string) ([]agreement.Agreement, error) {
	query := url.Values{}
	if partyID != "" {
		query.Set("partyId", partyID)
	}
	var out []agreement.Agreement
	if err := c.t.Get(ctx, "/api/agreements", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AgreementsClient) SignAgreement(ctx context.Context, id string, party agreement.Party, at time.Time) (agreement.Agreement, error) {
	body := struct {
		Party agreement.Party `json:"party"`
		At    time.Time       `json:"at"`
	}{Party: party, At: at}
	var out agreement.Agreement
	if err := c.t.Post(ctx, "/api/agreements/"+url.PathEscape(id)+"/sign", body, &out); err != nil {
		return agreement.Agreement{}, err
	}
	return out, nil
}

func (c *AgreementsClient) TerminateAgreement(ctx context.Context, id string) (agreement.Agreement, error) {
	var out agreement.Agreement
	if err := c.t.Post(ctx, "/api/agreements/"+url.PathEscape(id)+"/terminate", nil, &out); err != nil {
		return agreement.Agreement{}, err
	}
	return out, nil
}

func (c *AgreementsClient) ExpireAgreement(ctx context.Context, id string) (agreement.Agreement, error) {
	var out agreement.Agreement
	if err := c.t.Post(ctx, "/api/agreements/"+url.PathEscape(id)+"/expire", nil, &out); err != nil {
		return agreement.Agreement{}, err
	}
	return out, nil
}
