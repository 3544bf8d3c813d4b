package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/health/live", "/health/ready", "/api/health"} {
		rec := env.doJSONRequest(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestUnknownRoute_JSONError(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSONRequest(t, http.MethodGet, "/api/nope", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, errorMessage(t, rec))
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	ErrorHandler(errors.New("pq: connection refused"), c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, errorMessage(t, rec))
}

func TestCSRF_CookieAuthenticatedWrites(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.customer(t)
	p := env.product(t, "A-1")
	access := &http.Cookie{Name: "accessToken", Value: token}

	rec := env.doJSONRequest(t, http.MethodPost, "/api/orders", orderBody(p.ID, 1), "", access)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.doJSONRequest(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var xsrf *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "XSRF-TOKEN" {
			xsrf = ck
		}
	}
	require.NotNil(t, xsrf)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("X-CSRF-Token", xsrf.Value)
	req.AddCookie(access)
	req.AddCookie(&http.Cookie{Name: xsrf.Name, Value: xsrf.Value})
	rec = httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Bearer clients are not subject to the check.
	rec = env.doJSONRequest(t, http.MethodPost, "/api/orders", orderBody(p.ID, 1), token)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
