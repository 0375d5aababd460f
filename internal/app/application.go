// Package app composes the client layer. It decides once, from
// configuration, whether reads and writes go to the live backend or to
// the seeded in-memory fixture store, and hands out one Stores value
// that the rest of the program treats as the only data source.
package app

import (
	"fmt"

	"github.com/RoomLink-Network/client_layer/internal/api"
	"github.com/RoomLink-Network/client_layer/internal/config"
	"github.com/RoomLink-Network/client_layer/internal/storage"
	"github.com/RoomLink-Network/client_layer/internal/storage/memory"
	"github.com/RoomLink-Network/client_layer/internal/transport"
	"github.com/RoomLink-Network/client_layer/pkg/logger"
)

// Stores groups one implementation per resource. All fields are
// interfaces so live and fixture backends are interchangeable.
type Stores struct {
	Users         storage.UserStore
	Properties    storage.PropertyStore
	Agreements    storage.AgreementStore
	Payments      storage.PaymentStore
	Complaints    storage.ComplaintStore
	Documents     storage.DocumentStore
	Requests      storage.RequestStore
	Ratings       storage.RatingStore
	Notifications storage.NotificationStore
	Addresses     storage.AddressStore
}

// Application is the wired client layer.
type Application struct {
	Config config.Config
	Stores Stores
	Log    *logger.Logger
}

// New wires an Application from configuration. With UseBackend set the
// stores are HTTP service modules over one shared transport; otherwise
// every store is the same seeded fixture instance, so cross-resource
// side effects (signing an agreement marks the listing rented) stay
// visible across stores.
func New(cfg config.Config) (*Application, error) {
	log := logger.NewDefault("app")

	var stores Stores
	if cfg.UseBackend {
		headers := map[string]string{}
		if cfg.OAuthClientID != "" {
			headers["X-Client-ID"] = cfg.OAuthClientID
		}
		if cfg.PaymentGatewayKey != "" {
			headers["X-Payment-Key"] = cfg.PaymentGatewayKey
		}
		t, err := transport.New(transport.Config{
			BaseURL:           cfg.BaseURL,
			Timeout:           cfg.RequestTimeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
			Headers:           headers,
			Log:               logger.NewDefault("transport"),
		})
		if err != nil {
			return nil, fmt.Errorf("create transport: %w", err)
		}
		client := api.New(t)
		stores = Stores{
			Users:         client.Users(),
			Properties:    client.Properties(),
			Agreements:    client.Agreements(),
			Payments:      client.Payments(),
			Complaints:    client.Complaints(),
			Documents:     client.Documents(),
			Requests:      client.Requests(),
			Ratings:       client.Ratings(),
			Notifications: client.Notifications(),
			Addresses:     client.Addresses(),
		}
		log.WithField("base_url", cfg.BaseURL).Info("using live backend data source")
	} else {
		store, err := fixtureStore(cfg)
		if err != nil {
			return nil, err
		}
		stores = storesFrom(store)
		log.Info("using in-memory fixture data source")
	}

	return &Application{Config: cfg, Stores: stores, Log: log}, nil
}

// NewWithStores builds an Application around explicit stores. Nil
// fields fall back to one shared seeded fixture store.
func NewWithStores(cfg config.Config, stores Stores) *Application {
	var fallback *memory.Store
	shared := func() *memory.Store {
		if fallback == nil {
			fallback = memory.NewSeeded()
		}
		return fallback
	}

	if stores.Users == nil {
		stores.Users = shared()
	}
	if stores.Properties == nil {
		stores.Properties = shared()
	}
	if stores.Agreements == nil {
		stores.Agreements = shared()
	}
	if stores.Payments == nil {
		stores.Payments = shared()
	}
	if stores.Complaints == nil {
		stores.Complaints = shared()
	}
	if stores.Documents == nil {
		stores.Documents = shared()
	}
	if stores.Requests == nil {
		stores.Requests = shared()
	}
	if stores.Ratings == nil {
		stores.Ratings = shared()
	}
	if stores.Notifications == nil {
		stores.Notifications = shared()
	}
	if stores.Addresses == nil {
		stores.Addresses = shared()
	}

	return &Application{Config: cfg, Stores: stores, Log: logger.NewDefault("app")}
}

func fixtureStore(cfg config.Config) (*memory.Store, error) {
	store := memory.NewWithCDN(cfg.CDNURL)
	seed := memory.DemoSeed()
	if cfg.SeedFile != "" {
		loaded, err := memory.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load seed file %s: %w", cfg.SeedFile, err)
		}
		seed = loaded
	}
	store.Apply(seed)
	return store, nil
}

func storesFrom(store *memory.Store) Stores {
	return Stores{
		Users:         store,
		Properties:    store,
		Agreements:    store,
		Payments:      store,
		Complaints:    store,
		Documents:     store,
		Requests:      store,
		Ratings:       store,
		Notifications: store,
		Addresses:     store,
	}
}
