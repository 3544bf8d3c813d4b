package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/furnihome/internal/checkout"
	"github.com/Skotchmaster/furnihome/internal/db"
	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
	"github.com/Skotchmaster/furnihome/internal/repo"
)

type recordedEvent struct {
	Topic string
	Key   string
	Type  string
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	ev, _ := event.(mykafka.Event)
	p.events = append(p.events, recordedEvent{Topic: topic, Key: key, Type: ev.Type})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	Repo    *repo.GormRepo
	Events  *recordingPublisher
	Catalog *CatalogService
	Orders  *OrderService
	Reviews *ReviewService
	Reports *ReportService
	Stores  *StoreService
	Auth    *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.OpenMemory(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := repo.New(gdb)
	events := &recordingPublisher{}
	return &testEnv{
		Repo:    r,
		Events:  events,
		Catalog: &CatalogService{Repo: r, Events: events},
		Orders: &OrderService{
			Repo:     r,
			Calc:     checkout.NewCalculator(decimal.NewFromInt(500), decimal.RequireFromString("0.13")),
			Currency: "NPR",
			Events:   events,
		},
		Reviews: &ReviewService{Repo: r, Events: events},
		Reports: &ReportService{Repo: r},
		Stores:  &StoreService{Repo: r},
		Auth:    &AuthService{Repo: r, JWTSecret: []byte("test-secret"), TokenTTL: time.Hour},
	}
}

func validProduct(sku string) *models.Product {
	return &models.Product{
		Name:        "Modern Velvet Sofa",
		Category:    models.CategorySofas,
		Price:       decimal.NewFromInt(1000),
		Images:      []string{"sofa-1.jpg", "sofa-2.jpg"},
		Colors:      []string{"#2d5a47", "#1e3a5f"},
		ColorNames:  []string{"Emerald Green", "Navy Blue"},
		Description: "Three-seat velvet sofa",
		SKU:         sku,
		InStock:     true,
	}
}

func (e *testEnv) product(t *testing.T, sku string) *models.Product {
	t.Helper()
	p, err := e.Catalog.CreateProduct(context.Background(), validProduct(sku))
	require.NoError(t, err)
	return p
}

func (e *testEnv) user(t *testing.T, email string) *models.User {
	t.Helper()
	u, err := e.Auth.Register(context.Background(), "Jane Doe", email, "demo123")
	require.NoError(t, err)
	return u
}

var shipping = models.ShippingInfo{
	Name:    "Jane Doe",
	Email:   "demo@furnihome.com",
	Address: "Durbar Marg 12",
	City:    "Kathmandu",
	Phone:   "9800000000",
}

func (e *testEnv) deliveredOrder(t *testing.T, userID uuid.UUID, p *models.Product) *models.Order {
	t.Helper()
	ctx := context.Background()

	o, err := e.Orders.PlaceOrder(ctx, userID, CartLine{ProductID: p.ID, Quantity: 1}, shipping)
	require.NoError(t, err)
	_, err = e.Orders.UpdateStatus(ctx, o.ID, "shipped")
	require.NoError(t, err)
	o, err = e.Orders.UpdateStatus(ctx, o.ID, "delivered")
	require.NoError(t, err)
	return o
}

var errBoom = errors.New("boom")
