package httpserver

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/furnihome/internal/report"
)

func TestReports(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.customer(t)
	admin := env.admin(t)
	p := env.product(t, "A-1")

	for range 2 {
		rec := env.doJSONRequest(t, http.MethodPost, "/api/orders", orderBody(p.ID, 1), token)
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	now := time.Now().UTC()

	rec := env.doJSONRequest(t, http.MethodGet, "/api/admin/reports", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rows := decode[[]report.Row](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, fmt.Sprintf("%d-%d", now.Year(), int(now.Month())), rows[0].Period)
	assert.Equal(t, 2, rows[0].Count)
	assert.True(t, rows[0].Sales.Equal(decimal.NewFromInt(3260)), rows[0].Sales.String())

	rec = env.doJSONRequest(t, http.MethodGet, "/api/admin/reports?type=yearly", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	rows = decode[[]report.Row](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, fmt.Sprint(now.Year()), rows[0].Period)

	rec = env.doJSONRequest(t, http.MethodGet, "/api/admin/reports?type=weekly", nil, admin)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/api/admin/reports", nil, token)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSummary(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.customer(t)
	admin := env.admin(t)
	p := env.product(t, "A-1")
	env.product(t, "A-2")

	rec := env.doJSONRequest(t, http.MethodPost, "/api/orders", orderBody(p.ID, 1), token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/api/admin/summary", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	sum := decode[report.Summary](t, rec)
	assert.Equal(t, 1, sum.OrderCount)
	assert.EqualValues(t, 2, sum.ProductCount)
	assert.True(t, sum.TotalSales.Equal(decimal.NewFromInt(1630)))
}
