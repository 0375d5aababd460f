package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/transport"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// newRecordingClient returns a client whose backend records each request
// and answers with the given payload.
func newRecordingClient(t *testing.T, respond any) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		rec.Body = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"statusCode": 200, "status": "success", "data": respond})
	}))
	t.Cleanup(srv.Close)

	tc, err := transport.New(transport.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return New(tc), rec
}

func TestUsersClientPaths(t *testing.T) {
	client, rec := newRecordingClient(t, map[string]any{"id": "u1"})
	ctx := context.Background()

	_, err := client.Users().GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/users/u1", rec.Path)

	_, err = client.Users().VerifyUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/users/u1/verify", rec.Path)
}

func TestPropertiesClientListQuery(t *testing.T) {
	client, rec := newRecordingClient(t, []any{})

	_, err := client.Properties().ListProperties(context.Background(), storage.PropertyFilter{OwnerID: "own_1", Status: "available"})
	require.NoError(t, err)
	assert.Equal(t, "/api/properties", rec.Path)
	assert.Equal(t, "ownerId=own_1&status=available", rec.Query)
}

func TestAgreementsClientSignBody(t *testing.T) {
	client, rec := newRecordingClient(t, map[string]any{"id": "agr_1"})

	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	_, err := client.Agreements().SignAgreement(context.Background(), "agr_1", agreement.PartyTenant, at)
	require.NoError(t, err)
	assert.Equal(t, "/api/agreements/agr_1/sign", rec.Path)
	assert.Equal(t, "TENANT", rec.Body["party"])
	assert.Equal(t, "2026-04-01T12:00:00Z", rec.Body["at"])
}

func TestPaymentsClientPayBody(t *testing.T) {
	client, rec := newRecordingClient(t, map[string]any{"id": "pay_1"})

	_, err := client.Payments().MarkPaymentPaid(context.Background(), "pay_1", "tx_42")
	require.NoError(t, err)
	assert.Equal(t, "/api/payments/pay_1/pay", rec.Path)
	assert.Equal(t, "tx_42", rec.Body["transactionId"])
}

func TestComplaintsClientResolveBody(t *testing.T) {
	client, rec := newRecordingClient(t, map[string]any{"id": "c1"})

	_, err := client.Complaints().ResolveComplaint(context.Background(), "c1", "own_1", "AC serviced")
	require.NoError(t, err)
	assert.Equal(t, "/api/complaints/c1/resolve", rec.Path)
	assert.Equal(t, "own_1", rec.Body["actor"])
	assert.Equal(t, "AC serviced", rec.Body["note"])
}

func TestNotificationsClientReadBody(t *testing.T) {
	client, rec := newRecordingClient(t, map[string]any{"marked": 2})

	marked, err := client.Notifications().MarkNotificationsRead(context.Background(), "ten_1", "n1", "n2")
	require.NoError(t, err)
	assert.Equal(t, 2, marked)
	assert.Equal(t, "/api/notifications/read", rec.Path)
	assert.Equal(t, "ten_1", rec.Body["userId"])
	assert.Equal(t, []any{"n1", "n2"}, rec.Body["ids"])
}

func TestAddressesClientQuery(t *testing.T) {
	client, rec := newRecordingClient(t, []any{})

	_, err := client.Addresses().LookupAddresses(context.Background(), "62704")
	require.NoError(t, err)
	assert.Equal(t, "/api/addresses", rec.Path)
	assert.Equal(t, "postalCode=62704", rec.Query)
}

func TestOwnersClientScopesByRole(t *testing.T) {
	client, rec := newRecordingClient(t, []any{})

	_, err := client.Owners().ListOwners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/users", rec.Path)
	assert.Equal(t, "role=OWNER", rec.Query)
}

func TestOwnersClientRejectsNonOwner(t *testing.T) {
	client, _ := newRecordingClient(t, map[string]any{"id": "ten_1", "role": "TENANT"})

	_, err := client.Owners().GetOwner(context.Background(), "ten_1")
	require.Error(t, err)
}

func TestRequestsClientIDsAreEscaped(t *testing.T) {
	client, rec := newRecordingClient(t, map[string]any{"id": "weird id"})

	_, err := client.Requests().GetRequest(context.Background(), "weird id")
	require.NoError(t, err)
	assert.Equal(t, "/api/requests/weird id", rec.Path)
}
