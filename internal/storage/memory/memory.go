// Package memory provides the in-memory fixture implementation of the
// storage interfaces. It is safe for concurrent use and stands in for the
// live backend in demo mode and in tests.
package memory

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/domain/complaint"
	"github.com/RoomLink-Network/client_layer/internal/domain/document"
	"github.com/RoomLink-Network/client_layer/internal/domain/notification"
	"github.com/RoomLink-Network/client_layer/internal/domain/payment"
	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/domain/rating"
	"github.com/RoomLink-Network/client_layer/internal/domain/request"
	"github.com/RoomLink-Network/client_layer/internal/domain/user"
	"github.com/RoomLink-Network/client_layer/internal/storage"
)

// Store is the in-memory implementation of every storage interface. One
// instance is constructed per process or test run and passed by
// reference to whoever needs it; there is no package-level state.
type Store struct {
	mu            sync.RWMutex
	cdnBase       string
	users         map[string]user.User
	properties    map[string]property.Property
	rooms         map[string]property.Room
	agreements    map[string]agreement.Agreement
	payments      map[string]payment.Payment
	complaints    map[string]complaint.Complaint
	documents     map[string]document.Document
	documentData  map[string][]byte
	requests      map[string]request.TenantRequest
	ratings       map[string]rating.Rating
	notifications map[string]notification.Notification
	addresses     map[string][]property.Address
}

var _ storage.UserStore = (*Store)(nil)
var _ storage.PropertyStore = (*Store)(nil)
var _ storage.AgreementStore = (*Store)(nil)
var _ storage.PaymentStore = (*Store)(nil)
var _ storage.ComplaintStore = (*Store)(nil)
var _ storage.DocumentStore = (*Store)(nil)
var _ storage.RequestStore = (*Store)(nil)
var _ storage.RatingStore = (*Store)(nil)
var _ storage.NotificationStore = (*Store)(nil)
var _ storage.AddressStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		cdnBase:       "https://cdn.roomlink.example",
		users:         make(map[string]user.User),
		properties:    make(map[string]property.Property),
		rooms:         make(map[string]property.Room),
		agreements:    make(map[string]agreement.Agreement),
		payments:      make(map[string]payment.Payment),
		complaints:    make(map[string]complaint.Complaint),
		documents:     make(map[string]document.Document),
		documentData:  make(map[string][]byte),
		requests:      make(map[string]request.TenantRequest),
		ratings:       make(map[string]rating.Rating),
		notifications: make(map[string]notification.Notification),
		addresses:     make(map[string][]property.Address),
	}
}

// NewWithCDN creates an empty store whose document URLs are rooted at base.
func NewWithCDN(base string) *Store {
	s := New()
	if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
		s.cdnBase = trimmed
	}
	return s
}

func newID() string {
	return uuid.NewString()
}

// UserStore implementation ----------------------------------------------------

func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Name == "" || u.Email == "" {
		return user.User{}, fmt.Errorf("name and email are required")
	}
	if u.Role == "" {
		u.Role = user.RoleTenant
	}
	if u.ID == "" {
		u.ID = newID()
	} else if _, exists := s.users[u.ID]; exists {
		return user.User{}, fmt.Errorf("user %s already exists", u.ID)
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) UpdateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.users[u.ID]
	if !ok {
		return user.User{}, storage.NotFound("user", u.ID)
	}

	// Identity fields never change after registration.
	u.Role = original.Role
	u.CreatedAt = original.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, storage.NotFound("user", id)
	}
	return u, nil
}

func (s *Store) ListUsers(_ context.Context, role user.Role) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]user.User, 0)
	for _, u := range s.users {
		if role == "" || u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

func (s *Store) VerifyUser(_ context.Context, id string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, storage.NotFound("user", id)
	}
	if !u.Verified {
		u.Verified = true
		u.UpdatedAt = time.Now().UTC()
		s.users[id] = u
	}
	return u, nil
}

// PropertyStore implementation ------------------------------------------------

func (s *Store) CreateProperty(_ context.Context, p property.Property) (property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.OwnerID == "" {
		return property.Property{}, fmt.Errorf("owner_id is required")
	}
	if p.Title == "" {
		return property.Property{}, fmt.Errorf("title is required")
	}
	if p.Rent < 0 || p.Deposit < 0 {
		return property.Property{}, fmt.Errorf("rent and deposit must be non-negative")
	}
	if p.ID == "" {
		p.ID = newID()
	} else if _, exists := s.properties[p.ID]; exists {
		return property.Property{}, fmt.Errorf("property %s already exists", p.ID)
	}
	if p.Status == "" {
		p.Status = property.StatusAvailable
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Features = cloneStrings(p.Features)
	p.Images = cloneStrings(p.Images)
	s.properties[p.ID] = p
	return cloneProperty(p), nil
}

func (s *Store) UpdateProperty(_ context.Context, p property.Property) (property.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.properties[p.ID]
	if !ok {
		return property.Property{}, storage.NotFound("property", p.ID)
	}
	if p.Rent < 0 || p.Deposit < 0 {
		return property.Property{}, fmt.Errorf("rent and deposit must be non-negative")
	}

	p.OwnerID = original.OwnerID
	p.CreatedAt = original.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	p.Features = cloneStrings(p.Features)
	p.Images = cloneStrings(p.Images)
	s.properties[p.ID] = p
	return cloneProperty(p), nil
}

func (s *Store) GetProperty(_ context.Context, id string) (property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return property.Property{}, storage.NotFound("property", id)
	}
	return cloneProperty(p), nil
}

func (s *Store) ListProperties(_ context.Context, filter storage.PropertyFilter) ([]property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]property.Property, 0)
	for _, p := range s.properties {
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		result = append(result, cloneProperty(p))
	}
	return result, nil
}

func (s *Store) DeleteProperty(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return storage.NotFound("property", id)
	}
	delete(s.properties, id)
	for roomID, r := range s.rooms {
		if r.PropertyID == id {
			delete(s.rooms, roomID)
		}
	}
	return nil
}

func (s *Store) CreateRoom(_ context.Context, r property.Room) (property.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[r.PropertyID]; !ok {
		return property.Room{}, storage.NotFound("property", r.PropertyID)
	}
	if r.Number == "" {
		return property.Room{}, fmt.Errorf("room number is required")
	}
	if r.Rent < 0 {
		return property.Room{}, fmt.Errorf("rent must be non-negative")
	}
	if r.ID == "" {
		r.ID = newID()
	} else if _, exists := s.rooms[r.ID]; exists {
		return property.Room{}, fmt.Errorf("room %s already exists", r.ID)
	}

	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Available = true
	r.History = cloneHistory(r.History)
	s.rooms[r.ID] = r
	return cloneRoom(r), nil
}

func (s *Store) GetRoom(_ context.Context, id string) (property.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return property.Room{}, storage.NotFound("room", id)
	}
	return cloneRoom(r), nil
}

func (s *Store) ListRooms(_ context.Context, propertyID string) ([]property.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]property.Room, 0)
	for _, r := range s.rooms {
		if propertyID == "" || r.PropertyID == propertyID {
			result = append(result, cloneRoom(r))
		}
	}
	return result, nil
}

func (s *Store) SetRoomAvailability(_ context.Context, id string, available bool) (property.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setRoomAvailabilityLocked(id, available)
}

func (s *Store) setRoomAvailabilityLocked(id string, available bool) (property.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return property.Room{}, storage.NotFound("room", id)
	}
	if r.Available != available {
		r.Available = available
		r.UpdatedAt = time.Now().UTC()
		s.rooms[id] = r
	}
	return cloneRoom(r), nil
}

func (s *Store) AppendRoomHistory(_ context.Context, id string, rec property.RentalRecord) (property.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendRoomHistoryLocked(id, rec)
}

func (s *Store) appendRoomHistoryLocked(id string, rec property.RentalRecord) (property.Room, error) {
	r, ok := s.rooms[id]
	if !ok {
		return property.Room{}, storage.NotFound("room", id)
	}
	if rec.TenantID == "" {
		return property.Room{}, fmt.Errorf("tenant_id is required")
	}
	r.History = append(cloneHistory(r.History), rec)
	r.UpdatedAt = time.Now().UTC()
	s.rooms[id] = r
	return cloneRoom(r), nil
}

// AgreementStore implementation -----------------------------------------------

func (s *Store) CreateAgreement(_ context.Context, a agreement.Agreement) (agreement.Agreement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.PropertyID == "" || a.OwnerID == "" || a.TenantID == "" {
		return agreement.Agreement{}, fmt.Errorf("property_id, owner_id and tenant_id are required")
	}
	if _, ok := s.properties[a.PropertyID]; !ok {
		return agreement.Agreement{}, storage.NotFound("property", a.PropertyID)
	}
	if a.MonthlyRent < 0 || a.Deposit < 0 {
		return agreement.Agreement{}, fmt.Errorf("rent and deposit must be non-negative")
	}
	if !a.EndDate.IsZero() && a.EndDate.Before(a.StartDate) {
		return agreement.Agreement{}, fmt.Errorf("end_date precedes start_date")
	}
	if a.ID == "" {
		a.ID = newID()
	} else if _, exists := s.agreements[a.ID]; exists {
		return agreement.Agreement{}, fmt.Errorf("agreement %s already exists", a.ID)
	}

	now := time.Now().UTC()
	a.Status = agreement.StatusDraft
	a.OwnerSigned = false
	a.TenantSigned = false
	a.OwnerSignedAt = nil
	a.TenantSignedAt = nil
	a.CreatedAt = now
	a.UpdatedAt = now
	a.DocumentIDs = cloneStrings(a.DocumentIDs)
	s.agreements[a.ID] = a
	return cloneAgreement(a), nil
}

func (s *Store) GetAgreement(_ context.Context, id string) (agreement.Agreement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.agreements[id]
	if !ok {
		return agreement.Agreement{}, storage.NotFound("agreement", id)
	}
	return cloneAgreement(a), nil
}

func (s *Store) ListAgreements(_ context.Context, partyID string) ([]agreement.Agreement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]agreement.Agreement, 0)
	for _, a := range s.agreements {
		if partyID == "" || a.OwnerID == partyID || a.TenantID == partyID {
			result = append(result, cloneAgreement(a))
		}
	}
	return result, nil
}

func (s *Store) SignAgreement(_ context.Context, id string, party agreement.Party, at time.Time) (agreement.Agreement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.agreements[id]
	if !ok {
		return agreement.Agreement{}, storage.NotFound("agreement", id)
	}
	if a.Status != agreement.StatusDraft {
		return agreement.Agreement{}, fmt.Errorf("agreement %s is %s; only drafts can be signed", id, a.Status)
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	stamp := at.UTC()

	switch party {
	case agreement.PartyOwner:
		a.OwnerSigned = true
		a.OwnerSignedAt = &stamp
	case agreement.PartyTenant:
		a.TenantSigned = true
		a.TenantSignedAt = &stamp
	default:
		return agreement.Agreement{}, fmt.Errorf("unknown signing party %q", party)
	}

	a.UpdatedAt = time.Now().UTC()
	if a.FullySigned() {
		if err := a.Transition(agreement.StatusActive); err != nil {
			return agreement.Agreement{}, err
		}
		s.agreements[id] = a
		s.onAgreementActivatedLocked(a)
	} else {
		s.agreements[id] = a
	}
	return cloneAgreement(a), nil
}

func (s *Store) TerminateAgreement(ctx context.Context, id string) (agreement.Agreement, error) {
	return s.endAgreement(ctx, id, agreement.StatusTerminated)
}

func (s *Store) ExpireAgreement(ctx context.Context, id string) (agreement.Agreement, error) {
	return s.endAgreement(ctx, id, agreement.StatusExpired)
}

func (s *Store) endAgreement(_ context.Context, id string, to agreement.Status) (agreement.Agreement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.agreements[id]
	if !ok {
		return agreement.Agreement{}, storage.NotFound("agreement", id)
	}
	if err := a.Transition(to); err != nil {
		return agreement.Agreement{}, err
	}
	a.UpdatedAt = time.Now().UTC()
	s.agreements[id] = a
	s.onAgreementEndedLocked(a)
	return cloneAgreement(a), nil
}

// onAgreementActivatedLocked applies the side effects of activation: the
// listing flips to rented, the room (if any) becomes unavailable and
// gains a tenancy record, and both parties are notified.
func (s *Store) onAgreementActivatedLocked(a agreement.Agreement) {
	if p, ok := s.properties[a.PropertyID]; ok && p.Status != property.StatusRented {
		p.Status = property.StatusRented
		p.UpdatedAt = time.Now().UTC()
		s.properties[p.ID] = p
	}
	if a.RoomID != "" {
		_, _ = s.setRoomAvailabilityLocked(a.RoomID, false)
		_, _ = s.appendRoomHistoryLocked(a.RoomID, property.RentalRecord{
			TenantID: a.TenantID,
			Start:    a.StartDate,
		})
	}
	s.notifyLocked(a.OwnerID, "agreement", "Agreement active", fmt.Sprintf("Agreement %s is now active.", a.ID))
	s.notifyLocked(a.TenantID, "agreement", "Agreement active", fmt.Sprintf("Agreement %s is now active.", a.ID))
}

// onAgreementEndedLocked reverses the activation side effects.
func (s *Store) onAgreementEndedLocked(a agreement.Agreement) {
	if p, ok := s.properties[a.PropertyID]; ok && p.Status != property.StatusAvailable {
		p.Status = property.StatusAvailable
		p.UpdatedAt = time.Now().UTC()
		s.properties[p.ID] = p
	}
	if a.RoomID != "" {
		_, _ = s.setRoomAvailabilityLocked(a.RoomID, true)
		if r, ok := s.rooms[a.RoomID]; ok && len(r.History) > 0 {
			last := len(r.History) - 1
			if r.History[last].TenantID == a.TenantID && r.History[last].End == nil {
				end := time.Now().UTC()
				r.History = cloneHistory(r.History)
				r.History[last].End = &end
				s.rooms[r.ID] = r
			}
		}
	}
	s.notifyLocked(a.OwnerID, "agreement", "Agreement ended", fmt.Sprintf("Agreement %s is now %s.", a.ID, a.Status))
	s.notifyLocked(a.TenantID, "agreement", "Agreement ended", fmt.Sprintf("Agreement %s is now %s.", a.ID, a.Status))
}

// PaymentStore implementation -------------------------------------------------

func (s *Store) CreatePayment(_ context.Context, p payment.Payment) (payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.agreements[p.AgreementID]; !ok {
		return payment.Payment{}, storage.NotFound("agreement", p.AgreementID)
	}
	if p.Amount < 0 {
		return payment.Payment{}, fmt.Errorf("amount must be non-negative")
	}
	if p.ID == "" {
		p.ID = newID()
	} else if _, exists := s.payments[p.ID]; exists {
		return payment.Payment{}, fmt.Errorf("payment %s already exists", p.ID)
	}

	now := time.Now().UTC()
	p.Status = payment.StatusPending
	p.TransactionID = ""
	p.PaidAt = nil
	p.CreatedAt = now
	p.UpdatedAt = now
	s.payments[p.ID] = p
	return clonePayment(p), nil
}

func (s *Store) GetPayment(_ context.Context, id string) (payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return payment.Payment{}, storage.NotFound("payment", id)
	}
	return clonePayment(p), nil
}

func (s *Store) ListPayments(_ context.Context, agreementID string) ([]payment.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]payment.Payment, 0)
	for _, p := range s.payments {
		if agreementID == "" || p.AgreementID == agreementID {
			result = append(result, clonePayment(p))
		}
	}
	return result, nil
}

func (s *Store) MarkPaymentPaid(_ context.Context, id, transactionID string) (payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return payment.Payment{}, storage.NotFound("payment", id)
	}
	if transactionID == "" {
		return payment.Payment{}, fmt.Errorf("transaction_id is required")
	}
	if err := p.Transition(payment.StatusPaid); err != nil {
		return payment.Payment{}, err
	}
	now := time.Now().UTC()
	p.TransactionID = transactionID
	p.PaidAt = &now
	p.UpdatedAt = now
	s.payments[id] = p

	if a, ok := s.agreements[p.AgreementID]; ok {
		s.notifyLocked(a.OwnerID, "payment", "Payment received", fmt.Sprintf("Payment %s settled (%s).", p.ID, transactionID))
	}
	return clonePayment(p), nil
}

func (s *Store) MarkPaymentFailed(_ context.Context, id string) (payment.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return payment.Payment{}, storage.NotFound("payment", id)
	}
	if err := p.Transition(payment.StatusFailed); err != nil {
		return payment.Payment{}, err
	}
	p.UpdatedAt = time.Now().UTC()
	s.payments[id] = p
	return clonePayment(p), nil
}

// ComplaintStore implementation -----------------------------------------------

func (s *Store) CreateComplaint(_ context.Context, c complaint.Complaint) (complaint.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.AgreementID == "" && c.PropertyID == "" {
		return complaint.Complaint{}, fmt.Errorf("either agreement_id or property_id is required")
	}
	if c.RaisedByID == "" {
		return complaint.Complaint{}, fmt.Errorf("raised_by_id is required")
	}
	if c.Description == "" {
		return complaint.Complaint{}, fmt.Errorf("description is required")
	}
	if c.ID == "" {
		c.ID = newID()
	} else if _, exists := s.complaints[c.ID]; exists {
		return complaint.Complaint{}, fmt.Errorf("complaint %s already exists", c.ID)
	}

	now := time.Now().UTC()
	c.Status = complaint.StatusOpen
	c.Resolution = ""
	c.CreatedAt = now
	c.UpdatedAt = now
	c.Timeline = []complaint.Event{{
		At:     now,
		Actor:  c.RaisedByID,
		Status: complaint.StatusOpen,
		Note:   "complaint opened",
	}}
	s.complaints[c.ID] = c
	return cloneComplaint(c), nil
}

func (s *Store) GetComplaint(_ context.Context, id string) (complaint.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.complaints[id]
	if !ok {
		return complaint.Complaint{}, storage.NotFound("complaint", id)
	}
	return cloneComplaint(c), nil
}

func (s *Store) ListComplaints(_ context.Context, propertyID, agreementID string) ([]complaint.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]complaint.Complaint, 0)
	for _, c := range s.complaints {
		if propertyID != "" && c.PropertyID != propertyID {
			continue
		}
		if agreementID != "" && c.AgreementID != agreementID {
			continue
		}
		result = append(result, cloneComplaint(c))
	}
	return result, nil
}

func (s *Store) AdvanceComplaint(_ context.Context, id, actor string) (complaint.Complaint, error) {
	return s.stepComplaint(id, actor, complaint.StatusInProgress, "")
}

func (s *Store) ResolveComplaint(_ context.Context, id, actor, note string) (complaint.Complaint, error) {
	if note == "" {
		return complaint.Complaint{}, fmt.Errorf("resolution note is required")
	}
	return s.stepComplaint(id, actor, complaint.StatusResolved, note)
}

func (s *Store) CloseComplaint(_ context.Context, id, actor string) (complaint.Complaint, error) {
	return s.stepComplaint(id, actor, complaint.StatusClosed, "")
}

func (s *Store) stepComplaint(id, actor string, to complaint.Status, note string) (complaint.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.complaints[id]
	if !ok {
		return complaint.Complaint{}, storage.NotFound("complaint", id)
	}
	if err := c.Transition(to); err != nil {
		return complaint.Complaint{}, err
	}
	now := time.Now().UTC()
	if to == complaint.StatusResolved {
		c.Resolution = note
	}
	c.Timeline = append(cloneTimeline(c.Timeline), complaint.Event{
		At:     now,
		Actor:  actor,
		Status: to,
		Note:   note,
	})
	c.UpdatedAt = now
	s.complaints[id] = c

	s.notifyLocked(c.RaisedByID, "complaint", "Complaint updated", fmt.Sprintf("Complaint %s is now %s.", c.ID, to))
	return cloneComplaint(c), nil
}

// DocumentStore implementation ------------------------------------------------

func (s *Store) UploadDocument(_ context.Context, up storage.DocumentUpload) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if up.OwnerID == "" {
		return document.Document{}, fmt.Errorf("owner_id is required")
	}
	if up.FileName == "" {
		return document.Document{}, fmt.Errorf("file name is required")
	}
	if len(up.Data) == 0 {
		return document.Document{}, fmt.Errorf("file payload is empty")
	}

	now := time.Now().UTC()
	doc := document.Document{
		ID:        newID(),
		OwnerID:   up.OwnerID,
		Kind:      up.Kind,
		FileName:  up.FileName,
		Status:    document.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc.URL = s.cdnBase + "/documents/" + doc.ID + path.Ext(up.FileName)
	s.documents[doc.ID] = doc
	s.documentData[doc.ID] = append([]byte(nil), up.Data...)
	return doc, nil
}

func (s *Store) GetDocument(_ context.Context, id string) (document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return document.Document{}, storage.NotFound("document", id)
	}
	return doc, nil
}

func (s *Store) ListDocuments(_ context.Context, ownerID string) ([]document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]document.Document, 0)
	for _, doc := range s.documents {
		if ownerID == "" || doc.OwnerID == ownerID {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (s *Store) VerifyDocument(_ context.Context, id string) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return document.Document{}, storage.NotFound("document", id)
	}
	if err := doc.Transition(document.StatusVerified); err != nil {
		return document.Document{}, err
	}
	doc.UpdatedAt = time.Now().UTC()
	s.documents[id] = doc
	s.notifyLocked(doc.OwnerID, "document", "Document verified", fmt.Sprintf("Document %s was verified.", doc.FileName))
	return doc, nil
}

func (s *Store) RejectDocument(_ context.Context, id, reason string) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return document.Document{}, storage.NotFound("document", id)
	}
	if err := doc.Transition(document.StatusRejected); err != nil {
		return document.Document{}, err
	}
	doc.RejectionReason = reason
	doc.UpdatedAt = time.Now().UTC()
	s.documents[id] = doc
	s.notifyLocked(doc.OwnerID, "document", "Document rejected", fmt.Sprintf("Document %s was rejected: %s", doc.FileName, reason))
	return doc, nil
}

// RequestStore implementation -------------------------------------------------

func (s *Store) CreateRequest(_ context.Context, r request.TenantRequest) (request.TenantRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.TenantID == "" {
		return request.TenantRequest{}, fmt.Errorf("tenant_id is required")
	}
	if _, ok := s.properties[r.PropertyID]; !ok {
		return request.TenantRequest{}, storage.NotFound("property", r.PropertyID)
	}
	if r.ID == "" {
		r.ID = newID()
	} else if _, exists := s.requests[r.ID]; exists {
		return request.TenantRequest{}, fmt.Errorf("request %s already exists", r.ID)
	}

	now := time.Now().UTC()
	r.Status = request.StatusPending
	r.CreatedAt = now
	r.UpdatedAt = now
	r.DocumentIDs = cloneStrings(r.DocumentIDs)
	s.requests[r.ID] = r

	if p, ok := s.properties[r.PropertyID]; ok {
		s.notifyLocked(p.OwnerID, "request", "New tenant request", fmt.Sprintf("A tenant applied for %s.", p.Title))
	}
	return cloneRequest(r), nil
}

func (s *Store) GetRequest(_ context.Context, id string) (request.TenantRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return request.TenantRequest{}, storage.NotFound("request", id)
	}
	return cloneRequest(r), nil
}

func (s *Store) ListRequests(_ context.Context, propertyID, tenantID string) ([]request.TenantRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]request.TenantRequest, 0)
	for _, r := range s.requests {
		if propertyID != "" && r.PropertyID != propertyID {
			continue
		}
		if tenantID != "" && r.TenantID != tenantID {
			continue
		}
		result = append(result, cloneRequest(r))
	}
	return result, nil
}

func (s *Store) AcceptRequest(ctx context.Context, id string) (request.TenantRequest, error) {
	return s.decideRequest(ctx, id, request.StatusAccepted)
}

func (s *Store) RejectRequest(ctx context.Context, id string) (request.TenantRequest, error) {
	return s.decideRequest(ctx, id, request.StatusRejected)
}

func (s *Store) decideRequest(_ context.Context, id string, to request.Status) (request.TenantRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return request.TenantRequest{}, storage.NotFound("request", id)
	}
	if err := r.Transition(to); err != nil {
		return request.TenantRequest{}, err
	}
	r.UpdatedAt = time.Now().UTC()
	s.requests[id] = r
	s.notifyLocked(r.TenantID, "request", "Request "+strings.ToLower(string(to)), fmt.Sprintf("Your request for property %s was %s.", r.PropertyID, strings.ToLower(string(to))))
	return cloneRequest(r), nil
}

// RatingStore implementation --------------------------------------------------

func (s *Store) CreateRating(_ context.Context, r rating.Rating) (rating.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Score < 1 || r.Score > 5 {
		return rating.Rating{}, fmt.Errorf("score must be between 1 and 5")
	}
	if _, ok := s.properties[r.PropertyID]; !ok {
		return rating.Rating{}, storage.NotFound("property", r.PropertyID)
	}
	if r.ID == "" {
		r.ID = newID()
	} else if _, exists := s.ratings[r.ID]; exists {
		return rating.Rating{}, fmt.Errorf("rating %s already exists", r.ID)
	}

	r.CreatedAt = time.Now().UTC()
	s.ratings[r.ID] = r
	return r, nil
}

func (s *Store) ListRatings(_ context.Context, propertyID string) ([]rating.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]rating.Rating, 0)
	for _, r := range s.ratings {
		if propertyID == "" || r.PropertyID == propertyID {
			result = append(result, r)
		}
	}
	return result, nil
}

// NotificationStore implementation --------------------------------------------

func (s *Store) CreateNotification(_ context.Context, n notification.Notification) (notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.UserID == "" {
		return notification.Notification{}, fmt.Errorf("user_id is required")
	}
	if n.ID == "" {
		n.ID = newID()
	} else if _, exists := s.notifications[n.ID]; exists {
		return notification.Notification{}, fmt.Errorf("notification %s already exists", n.ID)
	}
	n.Read = false
	n.CreatedAt = time.Now().UTC()
	s.notifications[n.ID] = n
	return n, nil
}

func (s *Store) ListNotifications(_ context.Context, userID string) ([]notification.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]notification.Notification, 0)
	for _, n := range s.notifications {
		if userID == "" || n.UserID == userID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (s *Store) MarkNotificationsRead(_ context.Context, userID string, ids ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := 0
	for _, id := range ids {
		n, ok := s.notifications[id]
		if !ok {
			return marked, storage.NotFound("notification", id)
		}
		if n.UserID != userID {
			return marked, fmt.Errorf("notification %s does not belong to user %s", id, userID)
		}
		if !n.Read {
			n.Read = true
			s.notifications[id] = n
			marked++
		}
	}
	return marked, nil
}

func (s *Store) CountUnread(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// notifyLocked appends a notification without taking the lock again.
func (s *Store) notifyLocked(userID, kind, title, body string) {
	if userID == "" {
		return
	}
	id := newID()
	s.notifications[id] = notification.Notification{
		ID:        id,
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// AddressStore implementation -------------------------------------------------

func (s *Store) LookupAddresses(_ context.Context, postalCode string) ([]property.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches, ok := s.addresses[strings.TrimSpace(postalCode)]
	if !ok {
		return []property.Address{}, nil
	}
	return append([]property.Address(nil), matches...), nil
}

// AddAddresses registers lookup entries for a postal code.
func (s *Store) AddAddresses(postalCode string, addrs ...property.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[postalCode] = append(s.addresses[postalCode], addrs...)
}

// Clone helpers ---------------------------------------------------------------

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneHistory(in []property.RentalRecord) []property.RentalRecord {
	if in == nil {
		return nil
	}
	out := make([]property.RentalRecord, len(in))
	copy(out, in)
	for i, rec := range in {
		if rec.End != nil {
			end := *rec.End
			out[i].End = &end
		}
	}
	return out
}

func cloneTimeline(in []complaint.Event) []complaint.Event {
	if in == nil {
		return nil
	}
	return append([]complaint.Event(nil), in...)
}

func cloneProperty(p property.Property) property.Property {
	p.Features = cloneStrings(p.Features)
	p.Images = cloneStrings(p.Images)
	return p
}

func cloneRoom(r property.Room) property.Room {
	r.History = cloneHistory(r.History)
	return r
}

func cloneAgreement(a agreement.Agreement) agreement.Agreement {
	a.DocumentIDs = cloneStrings(a.DocumentIDs)
	if a.OwnerSignedAt != nil {
		at := *a.OwnerSignedAt
		a.OwnerSignedAt = &at
	}
	if a.TenantSignedAt != nil {
		at := *a.TenantSignedAt
		a.TenantSignedAt = &at
	}
	return a
}

func clonePayment(p payment.Payment) payment.Payment {
	if p.PaidAt != nil {
		at := *p.PaidAt
		p.PaidAt = &at
	}
	return p
}

func cloneComplaint(c complaint.Complaint) complaint.Complaint {
	c.Timeline = cloneTimeline(c.Timeline)
	return c
}

func cloneRequest(r request.TenantRequest) request.TenantRequest {
	r.DocumentIDs = cloneStrings(r.DocumentIDs)
	return r
}
