package memory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

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

// Seed is a fixture dataset. Records are written into the store as-is,
// bypassing the create-time status resets, so seeds can place records in
// any lifecycle state.
type Seed struct {
	Users         []user.User
	Properties    []property.Property
	Rooms         []property.Room
	Agreements    []agreement.Agreement
	Payments      []payment.Payment
	Complaints    []complaint.Complaint
	Documents     []document.Document
	Requests      []request.TenantRequest
	Ratings       []rating.Rating
	Notifications []notification.Notification
	Addresses     map[string][]property.Address
}

// Apply writes the seed dataset into the store.
func (s *Store) Apply(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stamp := func(created, updated *time.Time) {
		if created.IsZero() {
			*created = now
		}
		if updated.IsZero() {
			*updated = *created
		}
	}

	for _, u := range seed.Users {
		stamp(&u.CreatedAt, &u.UpdatedAt)
		s.users[u.ID] = u
	}
	for _, p := range seed.Properties {
		if p.Status == "" {
			p.Status = property.StatusAvailable
		}
		stamp(&p.CreatedAt, &p.UpdatedAt)
		s.properties[p.ID] = cloneProperty(p)
	}
	for _, r := range seed.Rooms {
		stamp(&r.CreatedAt, &r.UpdatedAt)
		s.rooms[r.ID] = cloneRoom(r)
	}
	for _, a := range seed.Agreements {
		if a.Status == "" {
			a.Status = agreement.StatusDraft
		}
		stamp(&a.CreatedAt, &a.UpdatedAt)
		s.agreements[a.ID] = cloneAgreement(a)
	}
	for _, p := range seed.Payments {
		if p.Status == "" {
			p.Status = payment.StatusPending
		}
		stamp(&p.CreatedAt, &p.UpdatedAt)
		s.payments[p.ID] = clonePayment(p)
	}
	for _, c := range seed.Complaints {
		if c.Status == "" {
			c.Status = complaint.StatusOpen
		}
		stamp(&c.CreatedAt, &c.UpdatedAt)
		s.complaints[c.ID] = cloneComplaint(c)
	}
	for _, d := range seed.Documents {
		if d.Status == "" {
			d.Status = document.StatusPending
		}
		stamp(&d.CreatedAt, &d.UpdatedAt)
		s.documents[d.ID] = d
	}
	for _, r := range seed.Requests {
		if r.Status == "" {
			r.Status = request.StatusPending
		}
		stamp(&r.CreatedAt, &r.UpdatedAt)
		s.requests[r.ID] = cloneRequest(r)
	}
	for _, r := range seed.Ratings {
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		s.ratings[r.ID] = r
	}
	for _, n := range seed.Notifications {
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		s.notifications[n.ID] = n
	}
	for code, addrs := range seed.Addresses {
		s.addresses[code] = append(s.addresses[code], addrs...)
	}
}

// NewSeeded creates a store preloaded with the demo dataset.
func NewSeeded() *Store {
	s := New()
	s.Apply(DemoSeed())
	return s
}

// DemoSeed returns the built-in demo dataset. IDs are stable so demos and
// tests can reference them directly.
func DemoSeed() Seed {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return Seed{
		Users: []user.User{
			{ID: "own_1", Name: "Asha Verma", Email: "asha@roomlink.example", Phone: "+1-555-0101", Role: user.RoleOwner, Verified: true},
			{ID: "ten_1", Name: "Diego Morales", Email: "diego@roomlink.example", Phone: "+1-555-0102", Role: user.RoleTenant, Verified: true},
			{ID: "ten_2", Name: "Mei Lin", Email: "mei@roomlink.example", Phone: "+1-555-0103", Role: user.RoleTenant},
			{ID: "adm_1", Name: "Site Admin", Email: "admin@roomlink.example", Role: user.RoleAdmin, Verified: true},
		},
		Properties: []property.Property{
			{
				ID: "prop_1", OwnerID: "own_1", Title: "Sunny 2BR near the park",
				Address: property.Address{Line1: "14 Laurel Ave", City: "Springfield", State: "IL", PostalCode: "62704"},
				Rent:    145000, Deposit: 290000,
				Features: []string{"furnished", "parking", "pets"},
				Images:   []string{"https://cdn.roomlink.example/img/prop_1_a.jpg"},
				Status:   property.StatusRented,
			},
			{
				ID: "prop_2", OwnerID: "own_1", Title: "Studio downtown",
				Address: property.Address{Line1: "902 Main St", City: "Springfield", State: "IL", PostalCode: "62701"},
				Rent:    98000, Deposit: 98000,
				Status: property.StatusAvailable,
			},
		},
		Rooms: []property.Room{
			{ID: "room_1", PropertyID: "prop_1", Number: "A", Type: "double", Rent: 78000, Available: false,
				History: []property.RentalRecord{{TenantID: "ten_1", Start: start}}},
			{ID: "room_2", PropertyID: "prop_1", Number: "B", Type: "single", Rent: 67000, Available: true},
		},
		Agreements: []agreement.Agreement{
			{
				ID: "agr_1", PropertyID: "prop_1", RoomID: "room_1", OwnerID: "own_1", TenantID: "ten_1",
				StartDate: start, EndDate: start.AddDate(1, 0, 0),
				MonthlyRent: 78000, Deposit: 156000,
				Status:      agreement.StatusActive,
				OwnerSigned: true, TenantSigned: true,
				DocumentIDs: []string{"doc_1"},
			},
			{
				ID: "agr_2", PropertyID: "prop_2", OwnerID: "own_1", TenantID: "ten_2",
				StartDate: start.AddDate(0, 2, 0), EndDate: start.AddDate(1, 2, 0),
				MonthlyRent: 98000, Deposit: 98000,
				Status:      agreement.StatusDraft,
				OwnerSigned: true,
			},
		},
		Payments: []payment.Payment{
			{ID: "pay_1", AgreementID: "agr_1", Amount: 78000, DueDate: start.AddDate(0, 1, 0), Status: payment.StatusPending},
		},
		Complaints: []complaint.Complaint{
			{
				ID: "c1", AgreementID: "agr_1", PropertyID: "prop_1", RaisedByID: "ten_1",
				Subject: "AC not cooling", Description: "The bedroom AC unit stopped cooling last week.",
				Status:   complaint.StatusOpen,
				Timeline: []complaint.Event{{At: start.AddDate(0, 3, 2), Actor: "ten_1", Status: complaint.StatusOpen, Note: "complaint opened"}},
			},
		},
		Documents: []document.Document{
			{ID: "doc_1", OwnerID: "ten_1", Kind: "id-proof", FileName: "passport.pdf",
				URL: "https://cdn.roomlink.example/documents/doc_1.pdf", Status: document.StatusVerified},
			{ID: "doc_2", OwnerID: "ten_2", Kind: "income-proof", FileName: "payslip.pdf",
				URL: "https://cdn.roomlink.example/documents/doc_2.pdf", Status: document.StatusPending},
		},
		Requests: []request.TenantRequest{
			{ID: "req_1", PropertyID: "prop_2", TenantID: "ten_2", Message: "Available from May?",
				Status: request.StatusPending, DocumentIDs: []string{"doc_2"}},
		},
		Ratings: []rating.Rating{
			{ID: "rat_1", PropertyID: "prop_1", TenantID: "ten_1", Score: 4, Comment: "Great landlord, quick fixes."},
		},
		Notifications: []notification.Notification{
			{ID: "note_1", UserID: "own_1", Kind: "request", Title: "New tenant request", Body: "A tenant applied for Studio downtown."},
			{ID: "note_2", UserID: "ten_1", Kind: "payment", Title: "Rent due", Body: "Your April rent is due soon."},
		},
		Addresses: map[string][]property.Address{
			"62704": {
				{Line1: "14 Laurel Ave", City: "Springfield", State: "IL", PostalCode: "62704"},
				{Line1: "16 Laurel Ave", City: "Springfield", State: "IL", PostalCode: "62704"},
			},
		},
	}
}

// Seed file format ------------------------------------------------------------

type seedFile struct {
	Users []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Phone    string `yaml:"phone"`
		Role     string `yaml:"role"`
		Verified bool   `yaml:"verified"`
	} `yaml:"users"`
	Properties []struct {
		ID         string   `yaml:"id"`
		OwnerID    string   `yaml:"owner_id"`
		Title      string   `yaml:"title"`
		Line1      string   `yaml:"line1"`
		City       string   `yaml:"city"`
		State      string   `yaml:"state"`
		PostalCode string   `yaml:"postal_code"`
		Rent       int64    `yaml:"rent"`
		Deposit    int64    `yaml:"deposit"`
		Features   []string `yaml:"features"`
		Status     string   `yaml:"status"`
	} `yaml:"properties"`
	Agreements []struct {
		ID         string `yaml:"id"`
		PropertyID string `yaml:"property_id"`
		RoomID     string `yaml:"room_id"`
		OwnerID    string `yaml:"owner_id"`
		TenantID   string `yaml:"tenant_id"`
		StartDate  string `yaml:"start_date"`
		EndDate    string `yaml:"end_date"`
		Rent       int64  `yaml:"rent"`
		Deposit    int64  `yaml:"deposit"`
		Status     string `yaml:"status"`
	} `yaml:"agreements"`
	Payments []struct {
		ID          string `yaml:"id"`
		AgreementID string `yaml:"agreement_id"`
		Amount      int64  `yaml:"amount"`
		DueDate     string `yaml:"due_date"`
		Status      string `yaml:"status"`
	} `yaml:"payments"`
}

// LoadSeedFile parses a YAML seed file into a Seed. Dates are RFC 3339
// dates (2026-03-01) or timestamps.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}

	var seed Seed
	for _, u := range raw.Users {
		seed.Users = append(seed.Users, user.User{
			ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone,
			Role: user.Role(u.Role), Verified: u.Verified,
		})
	}
	for _, p := range raw.Properties {
		seed.Properties = append(seed.Properties, property.Property{
			ID: p.ID, OwnerID: p.OwnerID, Title: p.Title,
			Address: property.Address{Line1: p.Line1, City: p.City, State: p.State, PostalCode: p.PostalCode},
			Rent:    p.Rent, Deposit: p.Deposit, Features: p.Features,
			Status: property.Status(p.Status),
		})
	}
	for _, a := range raw.Agreements {
		start, err := parseSeedDate(a.StartDate)
		if err != nil {
			return Seed{}, fmt.Errorf("agreement %s: %w", a.ID, err)
		}
		end, err := parseSeedDate(a.EndDate)
		if err != nil {
			return Seed{}, fmt.Errorf("agreement %s: %w", a.ID, err)
		}
		seed.Agreements = append(seed.Agreements, agreement.Agreement{
			ID: a.ID, PropertyID: a.PropertyID, RoomID: a.RoomID,
			OwnerID: a.OwnerID, TenantID: a.TenantID,
			StartDate: start, EndDate: end,
			MonthlyRent: a.Rent, Deposit: a.Deposit,
			Status: agreement.Status(a.Status),
		})
	}
	for _, p := range raw.Payments {
		due, err := parseSeedDate(p.DueDate)
		if err != nil {
			return Seed{}, fmt.Errorf("payment %s: %w", p.ID, err)
		}
		seed.Payments = append(seed.Payments, payment.Payment{
			ID: p.ID, AgreementID: p.AgreementID, Amount: p.Amount,
			DueDate: due, Status: payment.Status(p.Status),
		})
	}
	return seed, nil
}

func parseSeedDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return t, nil
}
