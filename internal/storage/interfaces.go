// Package storage defines the data-source contract shared by the live
// backend client and the in-memory fixture store. Callers depend only on
// these interfaces; which implementation they get is decided once, at
// composition time.
package storage

import (
	"context"
	"time"

	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/domain/complaint"
	"github.com/RoomLink-Network/client_layer/internal/domain/document"
	"github.com/RoomLink-Network/client_layer/internal/domain/notification"
	"github.com/RoomLink-Network/client_layer/internal/domain/payment"
	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/domain/rating"
	"github.com/RoomLink-Network/client_layer/internal/domain/request"
	"github.com/RoomLink-Network/client_layer/internal/domain/user"
)

// UserStore persists user records.
type UserStore interface {
	CreateUser(ctx context.Context, u user.User) (user.User, error)
	UpdateUser(ctx context.Context, u user.User) (user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
	ListUsers(ctx context.Context, role user.Role) ([]user.User, error)
	VerifyUser(ctx context.Context, id string) (user.User, error)
}

// PropertyFilter narrows property listings.
type PropertyFilter struct {
	OwnerID string
	Status  property.Status
}

// PropertyStore persists listings and rooms.
type PropertyStore interface {
	CreateProperty(ctx context.Context, p property.Property) (property.Property, error)
	UpdateProperty(ctx context.Context, p property.Property) (property.Property, error)
	GetProperty(ctx context.Context, id string) (property.Property, error)
	ListProperties(ctx context.Context, filter PropertyFilter) ([]property.Property, error)
	DeleteProperty(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, r property.Room) (property.Room, error)
	GetRoom(ctx context.Context, id string) (property.Room, error)
	ListRooms(ctx context.Context, propertyID string) ([]property.Room, error)
	SetRoomAvailability(ctx context.Context, id string, available bool) (property.Room, error)
	AppendRoomHistory(ctx context.Context, id string, rec property.RentalRecord) (property.Room, error)
}

// AgreementStore persists rental agreements.
type AgreementStore interface {
	CreateAgreement(ctx context.Context, a agreement.Agreement) (agreement.Agreement, error)
	GetAgreement(ctx context.Context, id string) (agreement.Agreement, error)
	ListAgreements(ctx context.Context, partyID string) ([]agreement.Agreement, error)
	// SignAgreement records one party's signature. Once both parties have
	// signed, the agreement activates and the listing flips to rented.
	SignAgreement(ctx context.Context, id string, party agreement.Party, at time.Time) (agreement.Agreement, error)
	TerminateAgreement(ctx context.Context, id string) (agreement.Agreement, error)
	ExpireAgreement(ctx context.Context, id string) (agreement.Agreement, error)
}

// PaymentStore persists rent payments.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p payment.Payment) (payment.Payment, error)
	GetPayment(ctx context.Context, id string) (payment.Payment, error)
	ListPayments(ctx context.Context, agreementID string) ([]payment.Payment, error)
	MarkPaymentPaid(ctx context.Context, id, transactionID string) (payment.Payment, error)
	MarkPaymentFailed(ctx context.Context, id string) (payment.Payment, error)
}

// ComplaintStore persists complaints and their timelines.
type ComplaintStore interface {
	CreateComplaint(ctx context.Context, c complaint.Complaint) (complaint.Complaint, error)
	GetComplaint(ctx context.Context, id string) (complaint.Complaint, error)
	ListComplaints(ctx context.Context, propertyID, agreementID string) ([]complaint.Complaint, error)
	AdvanceComplaint(ctx context.Context, id, actor string) (complaint.Complaint, error)
	ResolveComplaint(ctx context.Context, id, actor, note string) (complaint.Complaint, error)
	CloseComplaint(ctx context.Context, id, actor string) (complaint.Complaint, error)
}

// DocumentUpload is the datasource-neutral input for a file upload. The
// live client sends it as multipart form data; the fixture store keeps
// the bytes in memory.
type DocumentUpload struct {
	OwnerID     string
	Kind        string
	FileName    string
	ContentType string
	Data        []byte
}

// DocumentStore persists documents and their verification state.
type DocumentStore interface {
	UploadDocument(ctx context.Context, up DocumentUpload) (document.Document, error)
	GetDocument(ctx context.Context, id string) (document.Document, error)
	ListDocuments(ctx context.Context, ownerID string) ([]document.Document, error)
	VerifyDocument(ctx context.Context, id string) (document.Document, error)
	RejectDocument(ctx context.Context, id, reason string) (document.Document, error)
}

// RequestStore persists tenant applications.
type RequestStore interface {
	CreateRequest(ctx context.Context, r request.TenantRequest) (request.TenantRequest, error)
	GetRequest(ctx context.Context, id string) (request.TenantRequest, error)
	ListRequests(ctx context.Context, propertyID, tenantID string) ([]request.TenantRequest, error)
	AcceptRequest(ctx context.Context, id string) (request.TenantRequest, error)
	RejectRequest(ctx context.Context, id string) (request.TenantRequest, error)
}

// RatingStore persists property ratings.
type RatingStore interface {
	CreateRating(ctx context.Context, r rating.Rating) (rating.Rating, error)
	ListRatings(ctx context.Context, propertyID string) ([]rating.Rating, error)
}

// NotificationStore persists per-user notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, n notification.Notification) (notification.Notification, error)
	ListNotifications(ctx context.Context, userID string) ([]notification.Notification, error)
	// MarkNotificationsRead marks the given notifications read. Already-read
	// ids are left untouched, so repeated calls converge on the same state.
	MarkNotificationsRead(ctx context.Context, userID string, ids ...string) (int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
}

// AddressStore resolves postal codes to address suggestions.
type AddressStore interface {
	LookupAddresses(ctx context.Context, postalCode string) ([]property.Address, error)
}
