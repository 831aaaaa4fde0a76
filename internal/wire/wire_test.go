package wire

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"book-my-property/internal/data/entity"
	"book-my-property/internal/data/repository/mocks"
	"book-my-property/pkg/ratelimit"
	"book-my-property/pkg/token"
	"book-my-property/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (ratelimit.Result, error) {
	return ratelimit.Result{Allowed: false, Limit: 1, RetryAfter: 30 * time.Second}, nil
}

func newTestApp(t *testing.T, mutate func(*Deps)) (*App, *token.Manager) {
	t.Helper()

	tokens, err := token.NewManager(token.Config{
		Secret:   "wire-secret",
		Issuer:   "BookMyPropertyAPI",
		Audience: "BookMyPropertyClient",
		TTL:      time.Hour,
	})
	require.NoError(t, err)

	deps := Deps{
		Store:    mocks.NewMockStore(),
		DB:       pinger{},
		Tokens:   tokens,
		Registry: prometheus.NewRegistry(),
		Config: &utils.Config{
			App:  utils.AppConfig{CORSOrigins: []string{"*"}},
			Auth: utils.AuthConfig{DefaultRole: entity.RoleUser, BcryptCost: 4},
		},
		Logger: zap.NewNop(),
	}
	if mutate != nil {
		mutate(&deps)
	}

	app, err := Wiring(deps)
	require.NoError(t, err)
	return app, tokens
}

func bearer(t *testing.T, tokens *token.Manager, role string) string {
	t.Helper()
	raw, _, err := tokens.Issue(token.Identity{UserID: 5, Email: "u@example.com", Role: role})
	require.NoError(t, err)
	return "Bearer " + raw
}

func serve(app *App, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestRouteGuards(t *testing.T) {
	app, tokens := newTestApp(t, nil)
	user := bearer(t, tokens, entity.RoleUser)
	agent := bearer(t, tokens, entity.RoleAgent)
	admin := bearer(t, tokens, entity.RoleAdmin)

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		code   int
	}{
		{"create property anonymous", http.MethodPost, "/api/properties", "", http.StatusUnauthorized},
		{"create property as user", http.MethodPost, "/api/properties", user, http.StatusForbidden},
		{"create property as agent reaches handler", http.MethodPost, "/api/properties", agent, http.StatusBadRequest},
		{"catalog write as agent", http.MethodPost, "/api/locations", agent, http.StatusForbidden},
		{"catalog write as admin reaches handler", http.MethodPost, "/api/locations", admin, http.StatusBadRequest},
		{"property inquiries as user", http.MethodGet, "/api/properties/1/inquiries", user, http.StatusForbidden},
		{"delete inquiry as agent", http.MethodDelete, "/api/inquiries/1", agent, http.StatusForbidden},
		{"list users as agent", http.MethodGet, "/api/users", agent, http.StatusForbidden},
		{"wishlist anonymous", http.MethodGet, "/api/wishlist", "", http.StatusUnauthorized},
		{"wishlist bad id as user", http.MethodDelete, "/api/wishlist/abc", user, http.StatusBadRequest},
		{"image write as user", http.MethodDelete, "/api/property-images/1", user, http.StatusForbidden},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(app, tt.method, tt.path, tt.auth)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, nil)
	rec := serve(app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	down, _ := newTestApp(t, func(d *Deps) { d.DB = pinger{err: errors.New("refused")} })
	rec = serve(down, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t, nil)

	serve(app, http.MethodGet, "/health", "")
	rec := serve(app, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `http_requests_total{method="GET",path="/health",status="200"} 1`))

	disabled, _ := newTestApp(t, func(d *Deps) { d.Registry = nil })
	assert.Equal(t, http.StatusNotFound, serve(disabled, http.MethodGet, "/metrics", "").Code)
}

func TestAuthRoutesRateLimited(t *testing.T) {
	app, _ := newTestApp(t, func(d *Deps) { d.Limiter = denyAll{} })

	rec := serve(app, http.MethodPost, "/api/auth/login", "")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))

	// other routes are not throttled
	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/health", "").Code)
}
