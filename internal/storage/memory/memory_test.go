package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/domain/complaint"
	"github.com/RoomLink-Network/client_layer/internal/domain/document"
	"github.com/RoomLink-Network/client_layer/internal/domain/payment"
	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/domain/rating"
	"github.com/RoomLink-Network/client_layer/internal/domain/request"
	"github.com/RoomLink-Network/client_layer/internal/domain/user"
	"github.com/RoomLink-Network/client_layer/internal/storage"
)

var ctx = context.Background()

// ===== Properties =====

func TestPropertyCreateFetchRoundTrip(t *testing.T) {
	s := New()

	created, err := s.CreateProperty(ctx, property.Property{
		OwnerID: "own_9",
		Title:   "Loft with skylight",
		Address: property.Address{Line1: "1 Elm St", City: "Springfield", State: "IL", PostalCode: "62704"},
		Rent:    120000,
		Deposit: 240000,
	})
	if err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateProperty did not assign an id")
	}
	if created.Status != property.StatusAvailable {
		t.Errorf("Status = %q, want %q", created.Status, property.StatusAvailable)
	}

	got, err := s.GetProperty(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got.Title != created.Title || got.OwnerID != created.OwnerID || got.Rent != created.Rent {
		t.Errorf("GetProperty = %+v, want %+v", got, created)
	}
}

func TestPropertyCreateValidation(t *testing.T) {
	s := New()

	if _, err := s.CreateProperty(ctx, property.Property{Title: "No owner"}); err == nil {
		t.Error("CreateProperty without owner succeeded, want error")
	}
	if _, err := s.CreateProperty(ctx, property.Property{OwnerID: "o", Title: "Bad rent", Rent: -1}); err == nil {
		t.Error("CreateProperty with negative rent succeeded, want error")
	}
}

func TestPropertyListFilters(t *testing.T) {
	s := NewSeeded()

	rented, err := s.ListProperties(ctx, storage.PropertyFilter{OwnerID: "own_1", Status: property.StatusRented})
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(rented) != 1 || rented[0].ID != "prop_1" {
		t.Errorf("rented listings = %v, want [prop_1]", rented)
	}
}

func TestDeletePropertyRemovesRooms(t *testing.T) {
	s := NewSeeded()

	if err := s.DeleteProperty(ctx, "prop_1"); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if _, err := s.GetRoom(ctx, "room_1"); !storage.IsNotFound(err) {
		t.Errorf("GetRoom after property delete = %v, want not found", err)
	}
}

// ===== Agreements =====

func TestSignAgreementActivatesAndFlipsListing(t *testing.T) {
	s := NewSeeded()

	// agr_2 is a draft signed only by the owner; prop_2 is available.
	a, err := s.SignAgreement(ctx, "agr_2", agreement.PartyTenant, time.Time{})
	if err != nil {
		t.Fatalf("SignAgreement: %v", err)
	}
	if a.Status != agreement.StatusActive {
		t.Fatalf("Status after both signatures = %q, want %q", a.Status, agreement.StatusActive)
	}
	if a.TenantSignedAt == nil {
		t.Error("TenantSignedAt not stamped")
	}

	p, err := s.GetProperty(ctx, "prop_2")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if p.Status != property.StatusRented {
		t.Errorf("property status = %q, want %q", p.Status, property.StatusRented)
	}

	// Both parties are told.
	for _, userID := range []string{"own_1", "ten_2"} {
		list, err := s.ListNotifications(ctx, userID)
		if err != nil {
			t.Fatalf("ListNotifications(%s): %v", userID, err)
		}
		found := false
		for _, n := range list {
			if n.Kind == "agreement" && strings.Contains(n.Body, "agr_2") {
				found = true
			}
		}
		if !found {
			t.Errorf("no activation notification for %s", userID)
		}
	}
}

func TestSignAgreementPartialKeepsDraft(t *testing.T) {
	s := NewSeeded()

	created, err := s.CreateAgreement(ctx, agreement.Agreement{
		PropertyID: "prop_2", OwnerID: "own_1", TenantID: "ten_2",
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateAgreement: %v", err)
	}
	a, err := s.SignAgreement(ctx, created.ID, agreement.PartyOwner, time.Time{})
	if err != nil {
		t.Fatalf("SignAgreement: %v", err)
	}
	if a.Status != agreement.StatusDraft {
		t.Errorf("Status after one signature = %q, want %q", a.Status, agreement.StatusDraft)
	}
}

func TestAgreementTransitionBoundaries(t *testing.T) {
	s := NewSeeded()

	// Drafts cannot expire or terminate.
	if _, err := s.ExpireAgreement(ctx, "agr_2"); err == nil {
		t.Error("ExpireAgreement on draft succeeded, want error")
	}
	if _, err := s.TerminateAgreement(ctx, "agr_2"); err == nil {
		t.Error("TerminateAgreement on draft succeeded, want error")
	}

	// Active agreements cannot be signed again.
	if _, err := s.SignAgreement(ctx, "agr_1", agreement.PartyOwner, time.Time{}); err == nil {
		t.Error("SignAgreement on active agreement succeeded, want error")
	}

	// Terminal states reject further movement.
	if _, err := s.TerminateAgreement(ctx, "agr_1"); err != nil {
		t.Fatalf("TerminateAgreement on active: %v", err)
	}
	if _, err := s.ExpireAgreement(ctx, "agr_1"); err == nil {
		t.Error("ExpireAgreement on terminated agreement succeeded, want error")
	}
}

func TestTerminateAgreementReleasesRoom(t *testing.T) {
	s := NewSeeded()

	if _, err := s.TerminateAgreement(ctx, "agr_1"); err != nil {
		t.Fatalf("TerminateAgreement: %v", err)
	}

	p, _ := s.GetProperty(ctx, "prop_1")
	if p.Status != property.StatusAvailable {
		t.Errorf("property status = %q, want %q", p.Status, property.StatusAvailable)
	}
	r, _ := s.GetRoom(ctx, "room_1")
	if !r.Available {
		t.Error("room still unavailable after termination")
	}
	if len(r.History) == 0 || r.History[len(r.History)-1].End == nil {
		t.Error("open tenancy record was not closed")
	}
}

// ===== Payments =====

func TestMarkPaymentPaid(t *testing.T) {
	s := NewSeeded()

	p, err := s.GetPayment(ctx, "pay_1")
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if p.Status != payment.StatusPending {
		t.Fatalf("seed payment status = %q, want %q", p.Status, payment.StatusPending)
	}

	paid, err := s.MarkPaymentPaid(ctx, "pay_1", "pay_999")
	if err != nil {
		t.Fatalf("MarkPaymentPaid: %v", err)
	}
	if paid.Status != payment.StatusPaid {
		t.Errorf("Status = %q, want %q", paid.Status, payment.StatusPaid)
	}
	if paid.TransactionID != "pay_999" {
		t.Errorf("TransactionID = %q, want %q", paid.TransactionID, "pay_999")
	}
	if paid.PaidAt == nil {
		t.Error("PaidAt not set")
	}

	// Settled payments cannot settle again or fail afterwards.
	if _, err := s.MarkPaymentPaid(ctx, "pay_1", "pay_1000"); err == nil {
		t.Error("double settlement succeeded, want error")
	}
	if _, err := s.MarkPaymentFailed(ctx, "pay_1"); err == nil {
		t.Error("MarkPaymentFailed on paid payment succeeded, want error")
	}
}

func TestMarkPaymentPaidRequiresTransactionID(t *testing.T) {
	s := NewSeeded()

	if _, err := s.MarkPaymentPaid(ctx, "pay_1", ""); err == nil {
		t.Error("MarkPaymentPaid without transaction id succeeded, want error")
	}
}

func TestCreatePaymentRequiresAgreement(t *testing.T) {
	s := NewSeeded()

	_, err := s.CreatePayment(ctx, payment.Payment{AgreementID: "missing", Amount: 100})
	if !storage.IsNotFound(err) {
		t.Errorf("CreatePayment against missing agreement = %v, want not found", err)
	}
}

// ===== Complaints =====

func TestResolveComplaintAppendsOneTimelineEntry(t *testing.T) {
	s := NewSeeded()

	before, err := s.GetComplaint(ctx, "c1")
	if err != nil {
		t.Fatalf("GetComplaint: %v", err)
	}

	resolved, err := s.ResolveComplaint(ctx, "c1", "own_1", "AC serviced")
	if err != nil {
		t.Fatalf("ResolveComplaint: %v", err)
	}
	if resolved.Status != complaint.StatusResolved {
		t.Errorf("Status = %q, want %q", resolved.Status, complaint.StatusResolved)
	}
	if resolved.Resolution != "AC serviced" {
		t.Errorf("Resolution = %q, want %q", resolved.Resolution, "AC serviced")
	}
	if got, want := len(resolved.Timeline), len(before.Timeline)+1; got != want {
		t.Fatalf("timeline length = %d, want %d", got, want)
	}
	last := resolved.Timeline[len(resolved.Timeline)-1]
	if last.Status != complaint.StatusResolved || last.Actor != "own_1" || last.Note != "AC serviced" {
		t.Errorf("last timeline entry = %+v", last)
	}
}

func TestResolveComplaintRequiresNote(t *testing.T) {
	s := NewSeeded()

	if _, err := s.ResolveComplaint(ctx, "c1", "own_1", ""); err == nil {
		t.Error("ResolveComplaint without note succeeded, want error")
	}
}

func TestComplaintLifecycle(t *testing.T) {
	s := NewSeeded()

	c, err := s.AdvanceComplaint(ctx, "c1", "own_1")
	if err != nil {
		t.Fatalf("AdvanceComplaint: %v", err)
	}
	if c.Status != complaint.StatusInProgress {
		t.Fatalf("Status = %q, want %q", c.Status, complaint.StatusInProgress)
	}

	// IN_PROGRESS cannot advance again.
	if _, err := s.AdvanceComplaint(ctx, "c1", "own_1"); err == nil {
		t.Error("second advance succeeded, want error")
	}

	c, err = s.CloseComplaint(ctx, "c1", "adm_1")
	if err != nil {
		t.Fatalf("CloseComplaint: %v", err)
	}
	if c.Status != complaint.StatusClosed {
		t.Errorf("Status = %q, want %q", c.Status, complaint.StatusClosed)
	}
	// CLOSED is terminal.
	if _, err := s.ResolveComplaint(ctx, "c1", "adm_1", "too late"); err == nil {
		t.Error("resolve after close succeeded, want error")
	}
}

// ===== Documents =====

func TestGetDocumentNotFound(t *testing.T) {
	s := NewSeeded()

	_, err := s.GetDocument(ctx, "does-not-exist")
	if !storage.IsNotFound(err) {
		t.Errorf("GetDocument(does-not-exist) = %v, want not found", err)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error does not unwrap to ErrNotFound: %v", err)
	}
}

func TestUploadDocument(t *testing.T) {
	s := NewWithCDN("https://cdn.test.example/")

	doc, err := s.UploadDocument(ctx, storage.DocumentUpload{
		OwnerID:     "ten_1",
		Kind:        "id-proof",
		FileName:    "license.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}
	if doc.Status != document.StatusPending {
		t.Errorf("Status = %q, want %q", doc.Status, document.StatusPending)
	}
	wantURL := "https://cdn.test.example/documents/" + doc.ID + ".pdf"
	if doc.URL != wantURL {
		t.Errorf("URL = %q, want %q", doc.URL, wantURL)
	}

	if _, err := s.UploadDocument(ctx, storage.DocumentUpload{OwnerID: "ten_1", FileName: "empty.pdf"}); err == nil {
		t.Error("empty upload succeeded, want error")
	}
}

func TestDocumentVerificationIsFinal(t *testing.T) {
	s := NewSeeded()

	doc, err := s.VerifyDocument(ctx, "doc_2")
	if err != nil {
		t.Fatalf("VerifyDocument: %v", err)
	}
	if doc.Status != document.StatusVerified {
		t.Fatalf("Status = %q, want %q", doc.Status, document.StatusVerified)
	}
	if _, err := s.RejectDocument(ctx, "doc_2", "blurry"); err == nil {
		t.Error("reject after verify succeeded, want error")
	}
}

// ===== Requests =====

func TestRequestDecisionIsFinal(t *testing.T) {
	s := NewSeeded()

	req, err := s.AcceptRequest(ctx, "req_1")
	if err != nil {
		t.Fatalf("AcceptRequest: %v", err)
	}
	if req.Status != request.StatusAccepted {
		t.Fatalf("Status = %q, want %q", req.Status, request.StatusAccepted)
	}
	if _, err := s.RejectRequest(ctx, "req_1"); err == nil {
		t.Error("reject after accept succeeded, want error")
	}
}

// ===== Ratings =====

func TestCreateRatingBounds(t *testing.T) {
	s := NewSeeded()

	for _, score := range []int{0, 6, -1} {
		if _, err := s.CreateRating(ctx, rating.Rating{PropertyID: "prop_1", TenantID: "ten_1", Score: score}); err == nil {
			t.Errorf("CreateRating with score %d succeeded, want error", score)
		}
	}
	if _, err := s.CreateRating(ctx, rating.Rating{PropertyID: "prop_1", TenantID: "ten_1", Score: 5}); err != nil {
		t.Errorf("CreateRating with score 5: %v", err)
	}
}

// ===== Notifications =====

func TestMarkNotificationsReadIdempotent(t *testing.T) {
	s := NewSeeded()

	marked, err := s.MarkNotificationsRead(ctx, "ten_1", "note_2")
	if err != nil {
		t.Fatalf("MarkNotificationsRead: %v", err)
	}
	if marked != 1 {
		t.Errorf("first mark = %d, want 1", marked)
	}

	marked, err = s.MarkNotificationsRead(ctx, "ten_1", "note_2")
	if err != nil {
		t.Fatalf("MarkNotificationsRead again: %v", err)
	}
	if marked != 0 {
		t.Errorf("second mark = %d, want 0", marked)
	}

	count, err := s.CountUnread(ctx, "ten_1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if count != 0 {
		t.Errorf("unread count = %d, want 0", count)
	}
}

func TestMarkNotificationsReadWrongUser(t *testing.T) {
	s := NewSeeded()

	if _, err := s.MarkNotificationsRead(ctx, "ten_2", "note_2"); err == nil {
		t.Error("marking another user's notification succeeded, want error")
	}
	if _, err := s.MarkNotificationsRead(ctx, "ten_1", "missing"); !storage.IsNotFound(err) {
		t.Errorf("marking missing notification = %v, want not found", err)
	}
}

// ===== Users =====

func TestUpdateUserKeepsIdentity(t *testing.T) {
	s := NewSeeded()

	u, err := s.GetUser(ctx, "ten_1")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	u.Name = "Diego M."
	u.Role = user.RoleAdmin // must be ignored

	updated, err := s.UpdateUser(ctx, u)
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.Name != "Diego M." {
		t.Errorf("Name = %q, want %q", updated.Name, "Diego M.")
	}
	if updated.Role != user.RoleTenant {
		t.Errorf("Role = %q, want %q: role must not change on update", updated.Role, user.RoleTenant)
	}
}

// ===== Addresses =====

func TestLookupAddresses(t *testing.T) {
	s := NewSeeded()

	addrs, err := s.LookupAddresses(ctx, "62704")
	if err != nil {
		t.Fatalf("LookupAddresses: %v", err)
	}
	if len(addrs) != 2 {
		t.Errorf("len(addrs) = %d, want 2", len(addrs))
	}

	none, err := s.LookupAddresses(ctx, "00000")
	if err != nil {
		t.Fatalf("LookupAddresses(00000): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown postal code returned %d addresses, want 0", len(none))
	}
}

// ===== Isolation =====

func TestReadsAreIsolatedFromCallerMutation(t *testing.T) {
	s := NewSeeded()

	p1, _ := s.GetProperty(ctx, "prop_1")
	p1.Features[0] = "tampered"

	p2, _ := s.GetProperty(ctx, "prop_1")
	if p2.Features[0] == "tampered" {
		t.Error("caller mutation leaked into the store")
	}
}
