package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RoomLink-Network/client_layer/internal/domain/agreement"
	"github.com/RoomLink-Network/client_layer/internal/domain/payment"
)

const sampleSeed = `
users:
  - id: u_1
    name: Test Owner
    email: owner@test.example
    role: OWNER
    verified: true
properties:
  - id: p_1
    owner_id: u_1
    title: Seeded flat
    line1: 5 Oak Rd
    city: Springfield
    state: IL
    postal_code: "62704"
    rent: 100000
    deposit: 200000
    status: available
agreements:
  - id: a_1
    property_id: p_1
    owner_id: u_1
    tenant_id: u_2
    start_date: "2026-04-01"
    end_date: "2027-04-01"
    rent: 100000
    status: ACTIVE
payments:
  - id: pm_1
    agreement_id: a_1
    amount: 100000
    due_date: "2026-05-01"
    status: PENDING
`

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sampleSeed), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile: %v", err)
	}

	s := New()
	s.Apply(seed)

	p, err := s.GetProperty(ctx, "p_1")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if p.Title != "Seeded flat" || p.Address.PostalCode != "62704" {
		t.Errorf("seeded property = %+v", p)
	}

	a, err := s.GetAgreement(ctx, "a_1")
	if err != nil {
		t.Fatalf("GetAgreement: %v", err)
	}
	if a.Status != agreement.StatusActive {
		t.Errorf("agreement status = %q, want ACTIVE", a.Status)
	}
	if a.StartDate.Year() != 2026 || a.StartDate.Month() != 4 {
		t.Errorf("StartDate = %v, want 2026-04-01", a.StartDate)
	}

	pm, err := s.GetPayment(ctx, "pm_1")
	if err != nil {
		t.Fatalf("GetPayment: %v", err)
	}
	if pm.Status != payment.StatusPending {
		t.Errorf("payment status = %q, want PENDING", pm.Status)
	}
}

func TestLoadSeedFileBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	bad := `
agreements:
  - id: a_1
    property_id: p_1
    owner_id: u_1
    tenant_id: u_2
    start_date: "not-a-date"
`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := LoadSeedFile(path); err == nil {
		t.Error("LoadSeedFile with bad date succeeded, want error")
	}
}

func TestLoadSeedFileMissing(t *testing.T) {
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadSeedFile on missing file succeeded, want error")
	}
}
