package app

import (
	"context"
	"testing"

	"github.com/RoomLink-Network/client_layer/internal/api"
	"github.com/RoomLink-Network/client_layer/internal/config"
	"github.com/RoomLink-Network/client_layer/internal/domain/property"
	"github.com/RoomLink-Network/client_layer/internal/storage/memory"
)

func fixtureConfig() config.Config {
	return config.Config{
		BaseURL:        "http://localhost:8080",
		CDNURL:         "https://cdn.test.example",
		MaxUploadBytes: 1 << 20,
	}
}

func TestNewFixtureModeSharesOneStore(t *testing.T) {
	application, err := New(fixtureConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()

	// The seed is loaded.
	p, err := application.Stores.Properties.GetProperty(ctx, "prop_1")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if p.Status != property.StatusRented {
		t.Errorf("prop_1 status = %q, want rented", p.Status)
	}

	// All store fields point at the same fixture instance, so a write
	// through one is visible through another.
	if _, err := application.Stores.Payments.MarkPaymentPaid(ctx, "pay_1", "tx_1"); err != nil {
		t.Fatalf("MarkPaymentPaid: %v", err)
	}
	count, err := application.Stores.Notifications.CountUnread(ctx, "own_1")
	if err != nil {
		t.Fatalf("CountUnread: %v", err)
	}
	if count == 0 {
		t.Error("payment settlement produced no owner notification; stores are not shared")
	}
}

func TestNewBackendModeUsesServiceModules(t *testing.T) {
	cfg := fixtureConfig()
	cfg.UseBackend = true

	application, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := application.Stores.Users.(*api.UsersClient); !ok {
		t.Errorf("Users store is %T, want *api.UsersClient", application.Stores.Users)
	}
	if _, ok := application.Stores.Documents.(*api.DocumentsClient); !ok {
		t.Errorf("Documents store is %T, want *api.DocumentsClient", application.Stores.Documents)
	}
}

func TestNewBackendModeRequiresBaseURL(t *testing.T) {
	cfg := fixtureConfig()
	cfg.UseBackend = true
	cfg.BaseURL = ""

	if _, err := New(cfg); err == nil {
		t.Error("New without base URL succeeded, want error")
	}
}

func TestNewWithStoresFillsNilFields(t *testing.T) {
	explicit := memory.New()
	application := NewWithStores(fixtureConfig(), Stores{Users: explicit})

	if application.Stores.Users != explicit {
		t.Error("explicit store was replaced")
	}
	if application.Stores.Properties == nil || application.Stores.Notifications == nil {
		t.Fatal("nil fields were not defaulted")
	}

	// Defaults share one seeded store.
	if application.Stores.Properties.(*memory.Store) != application.Stores.Payments.(*memory.Store) {
		t.Error("defaulted stores are not shared")
	}
	if _, err := application.Stores.Properties.GetProperty(context.Background(), "prop_1"); err != nil {
		t.Errorf("defaulted store is not seeded: %v", err)
	}
}

func TestNewFixtureModeSeedFileOverride(t *testing.T) {
	cfg := fixtureConfig()
	cfg.SeedFile = "/nonexistent/seed.yaml"

	if _, err := New(cfg); err == nil {
		t.Error("New with missing seed file succeeded, want error")
	}
}
