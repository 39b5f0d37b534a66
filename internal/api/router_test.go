package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
	service "github.com/aaravmahajanofficial/sneaker-inventory/internal/services"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage/memory"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c *client) do(method, path string, body any) (*httptest.ResponseRecorder, response.APIResponse) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, httptest.NewRequest(method, path, &buf))

	var resp response.APIResponse
	if rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(c.t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}

	return rr, resp
}

func newClient(t *testing.T) *client {
	t.Helper()

	store := memory.New()
	identity, err := service.NewIdentityStore(context.Background(), store, service.IdentityOptions{})
	require.NoError(t, err)

	inventory := service.NewInventoryStore(store, identity)

	return &client{t: t, handler: api.NewRouter(api.Deps{Identity: identity, Inventory: inventory})}
}

func dataAs[T any](t *testing.T, resp response.APIResponse) T {
	t.Helper()

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))

	return out
}

func TestRouterInventoryFlow(t *testing.T) {
	c := newClient(t)

	// inventory routes need a user
	rr, resp := c.do(http.MethodGet, "/api/v1/sneakers", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, resp.Success)

	rr, resp = c.do(http.MethodPost, "/api/v1/auth/signup", models.SignupRequest{
		Name: "Ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, dataAs[models.AuthState](t, resp).IsAuthenticated)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr, resp = c.do(http.MethodGet, "/api/v1/sneakers", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, dataAs[[]models.Sneaker](t, resp), 5)

	rr, resp = c.do(http.MethodGet, "/api/v1/sneakers?category=Casual", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, dataAs[[]models.Sneaker](t, resp), 2)

	rr, resp = c.do(http.MethodPost, "/api/v1/sneakers", models.SneakerFormData{
		Name: "Chuck 70", Price: 8500, Quantity: 7, Category: models.CategoryCasual,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	added := dataAs[models.Sneaker](t, resp)

	rr, _ = c.do(http.MethodGet, "/api/v1/sneakers/"+added.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, resp = c.do(http.MethodPatch, "/api/v1/sneakers/"+added.ID, map[string]any{"price": 9000})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 9000.0, dataAs[models.Sneaker](t, resp).Price)

	rr, _ = c.do(http.MethodPatch, "/api/v1/sneakers/missing", map[string]any{"price": 9000})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = c.do(http.MethodDelete, "/api/v1/sneakers/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = c.do(http.MethodDelete, "/api/v1/sneakers/4", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, resp = c.do(http.MethodGet, "/api/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	stats := dataAs[models.DashboardStats](t, resp)
	assert.Equal(t, 5, stats.TotalProducts)
	assert.Equal(t, 132, stats.TotalStock)
	assert.Equal(t, 2, stats.LowStockCount)

	rr, _ = c.do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, resp = c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, dataAs[models.AuthState](t, resp).IsAuthenticated)

	rr, _ = c.do(http.MethodGet, "/api/v1/dashboard/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// logging back in restores the edited collection
	rr, _ = c.do(http.MethodPost, "/api/v1/auth/login", models.LoginRequest{Email: "ann@example.com", Password: "other"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr, resp = c.do(http.MethodGet, "/api/v1/sneakers", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, dataAs[[]models.Sneaker](t, resp), 5)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	c := newClient(t)

	c.do(http.MethodGet, "/api/v1/auth/me", nil)

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `path="GET /api/v1/auth/me"`)
}

func TestRouterUnknownRoute(t *testing.T) {
	c := newClient(t)

	rr, _ := c.do(http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
