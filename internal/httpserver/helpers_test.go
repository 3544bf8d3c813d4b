package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/furnihome/internal/checkout"
	"github.com/Skotchmaster/furnihome/internal/db"
	"github.com/Skotchmaster/furnihome/internal/logging"
	"github.com/Skotchmaster/furnihome/internal/middleware/csrf"
	"github.com/Skotchmaster/furnihome/internal/models"
	"github.com/Skotchmaster/furnihome/internal/mykafka"
	"github.com/Skotchmaster/furnihome/internal/repo"
	"github.com/Skotchmaster/furnihome/internal/service"
)

var testSecret = []byte("test-secret")

type testEnv struct {
	E       *echo.Echo
	Repo    *repo.GormRepo
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Orders  *service.OrderService
	Stores  *service.StoreService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := db.OpenMemory(context.Background(), uuid.NewString())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	r := repo.New(gdb)
	events := mykafka.Noop{}

	auth := &service.AuthService{Repo: r, JWTSecret: testSecret, TokenTTL: time.Hour}
	catalog := &service.CatalogService{Repo: r, Events: events}
	orders := &service.OrderService{
		Repo:     r,
		Calc:     checkout.NewCalculator(decimal.NewFromInt(500), decimal.RequireFromString("0.13")),
		Currency: "NPR",
		Events:   events,
	}
	stores := &service.StoreService{Repo: r}

	e := New(logging.NewWithWriter(io.Discard, "error"), &Deps{
		AuthHandler:    &AuthHTTP{Svc: auth, CookieSecure: true},
		CatalogHandler: &CatalogHTTP{Svc: catalog},
		OrderHandler:   &OrderHTTP{Svc: orders},
		ReviewHandler:  &ReviewHTTP{Svc: &service.ReviewService{Repo: r, Events: events}, Users: auth},
		StoreHandler:   &StoreHTTP{Svc: stores},
		ReportHandler:  &ReportHTTP{Svc: &service.ReportService{Repo: r}},
		JWTSecret:      testSecret,
		CSRF:           csrf.DefaultConfig(),
		Ready:          r.Ping,
	})

	return &testEnv{E: e, Repo: r, Auth: auth, Catalog: catalog, Orders: orders, Stores: stores}
}

// doJSONRequest sends body as JSON through the full middleware chain. A
// non-empty token is sent as a bearer header.
func (e *testEnv) doJSONRequest(t *testing.T, method, path string, body any, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	e.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

func (e *testEnv) account(t *testing.T, email, role string) (string, *models.User) {
	t.Helper()
	ctx := context.Background()

	u, err := e.Auth.CreateAccount(ctx, "Jane Doe", email, "demo123", role)
	require.NoError(t, err)
	res, err := e.Auth.Login(ctx, email, "demo123")
	require.NoError(t, err)
	return res.AccessToken, u
}

func (e *testEnv) customer(t *testing.T) (string, *models.User) {
	return e.account(t, "demo@furnihome.com", models.RoleCustomer)
}

func (e *testEnv) admin(t *testing.T) string {
	tok, _ := e.account(t, "admin@furnihome.com", models.RoleAdmin)
	return tok
}

func productBody(sku string) map[string]any {
	return map[string]any{
		"name":        "Modern Velvet Sofa",
		"category":    "sofas",
		"price":       1000,
		"images":      []string{"sofa-1.jpg"},
		"colors":      []string{"#2d5a47", "#1e3a5f"},
		"colorNames":  []string{"Emerald Green", "Navy Blue"},
		"description": "Three-seat velvet sofa",
		"sku":         sku,
	}
}

func (e *testEnv) product(t *testing.T, sku string) *models.Product {
	t.Helper()
	p, err := e.Catalog.CreateProduct(context.Background(), &models.Product{
		Name:        "Modern Velvet Sofa",
		Category:    models.CategorySofas,
		Price:       decimal.NewFromInt(1000),
		Images:      []string{"sofa-1.jpg"},
		ColorNames:  []string{"Emerald Green", "Navy Blue"},
		Description: "Three-seat velvet sofa",
		SKU:         sku,
		InStock:     true,
	})
	require.NoError(t, err)
	return p
}

var shippingBody = map[string]string{
	"name":    "Jane Doe",
	"email":   "demo@furnihome.com",
	"address": "Durbar Marg 12",
	"city":    "Kathmandu",
	"phone":   "9800000000",
}

func orderBody(productID uuid.UUID, qty int) map[string]any {
	return map[string]any{
		"items":        []map[string]any{{"productId": productID, "quantity": qty}},
		"shippingInfo": shippingBody,
	}
}
