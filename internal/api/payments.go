package api

import (
	"context"
	"net/url"

	"github.com/RoomLink-Network/client_layer/internal/domain/payment"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

// PaymentsClient is the payment service module.
type PaymentsClient struct {
	t *transport.Client
}

var _ storage.PaymentStore = (*PaymentsClient)(nil)

func (c *PaymentsClient) CreatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	var out payment.Payment
	if err := c.t.Post(ctx, "/api/payments", p, &out); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}

func (c *PaymentsClient) GetPayment(ctx context.Context, id string) (payment.Payment, error) {
	var out payment.Payment
	if err := c.t.Get(ctx, "/api/payments/"+url.PathEscape(id), &out, nil); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}

func (c *PaymentsClient) ListPayments(ctx context.Context, agreementID string) ([]payment.Payment, error) {
	query := url.Values{}
	if agreementID != "" {
		query.Set("agreementId", agreementID)
	}
	var out []payment.Payment
	if err := c.t.Get(ctx, "/api/payments", &out, &transport.RequestOptions{Query: query}); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PaymentsClient) MarkPaymentPaid(ctx context.Context, id, transactionID string) (payment.Payment, error) {
	body := map[string]string{"transactionId": transactionID}
	var out payment.Payment
	if err := c.t.Post(ctx, "/api/payments/"+url.PathEscape(id)+"/pay", body, &out); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}

func (c *PaymentsClient) MarkPaymentFailed(ctx context.Context, id string) (payment.Payment, error) {
	var out payment.Payment
	if err := c.t.Post(ctx, "/api/payments/"+url.PathEscape(id)+"/fail", nil, &out); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}
