package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lldap-gateway/internal/model"
	"lldap-gateway/internal/user"
	"lldap-gateway/pkg/log"
	"lldap-gateway/pkg/metrics"
	"lldap-gateway/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// directory is an in-memory user.UseCase.
type directory struct {
	passwords map[string]string
	groups    map[string][]string
}

func (d *directory) Bind(_ context.Context, ip user.BindInput) error {
	if pw, ok := d.passwords[ip.Username]; ok && pw == ip.Password {
		return nil
	}
	return user.ErrInvalidCredentials
}

func (d *directory) GetUserGroups(_ context.Context, username string) ([]string, error) {
	return d.groups[username], nil
}

func (d *directory) ListUsers(context.Context, user.ListUsersInput) ([]model.User, error) {
	return []model.User{{UserID: "alice", DisplayName: "Alice", CreationDate: testNow}}, nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newManager(t *testing.T, now time.Time) scope.Manager {
	t.Helper()
	m, err := scope.New(testSecret, scope.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return m
}

func newTestServer(t *testing.T, dir user.UseCase, db pinger) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := &HTTPServer{
		gin:          gin.New(),
		l:            log.NewNop(),
		db:           db,
		scopeManager: newManager(t, testNow),
		metrics:      metrics.New(prometheus.NewRegistry()),
	}
	srv.mapHandlers(dir)
	return srv
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)
	return w
}

func authorizeReq(name, password string) *http.Request {
	body, _ := json.Marshal(map[string]string{"name": name, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/authorize", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func listUsersReq() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"filters":{"And":[]}}`))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEndToEnd(t *testing.T) {
	dir := &directory{
		passwords: map[string]string{"alice": "hunter2", "bob": "pw"},
		groups:    map[string][]string{"alice": {model.AdminGroup}},
	}
	srv := newTestServer(t, dir, fakePinger{})

	t.Run("issue then call with the cookie", func(t *testing.T) {
		w := serve(srv, authorizeReq("alice", "hunter2"))
		require.Equal(t, http.StatusOK, w.Code)
		token := w.Body.String()

		var tokenCookie *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == "token" {
				tokenCookie = c
			}
		}
		require.NotNil(t, tokenCookie)
		assert.Equal(t, token, tokenCookie.Value)

		req := listUsersReq()
		req.AddCookie(tokenCookie)
		w = serve(srv, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"alice"`)
	})

	t.Run("issue then call with the header", func(t *testing.T) {
		token := serve(srv, authorizeReq("alice", "hunter2")).Body.String()

		req := listUsersReq()
		req.Header.Set("Authorization", "Bearer "+token)
		w := serve(srv, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token older than a day", func(t *testing.T) {
		old, err := newManager(t, testNow.Add(-25*time.Hour)).
			CreateToken(scope.Payload{User: "alice", Groups: []string{model.AdminGroup}})
		require.NoError(t, err)

		req := listUsersReq()
		req.Header.Set("Authorization", "Bearer "+old)
		w := serve(srv, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Expired JWT", w.Body.String())
	})

	t.Run("user without groups", func(t *testing.T) {
		w := serve(srv, authorizeReq("bob", "pw"))
		require.Equal(t, http.StatusOK, w.Code)

		req := listUsersReq()
		req.Header.Set("Authorization", "Bearer "+w.Body.String())
		w = serve(srv, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "User is not in group lldap_admin", w.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		w := serve(srv, authorizeReq("alice", "nope"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication error for `alice`", w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestHealth(t *testing.T) {
	tcs := map[string]struct {
		path     string
		db       pinger
		wantCode int
	}{
		"health ok":       {path: "/health", db: fakePinger{}, wantCode: http.StatusOK},
		"health db down":  {path: "/health", db: fakePinger{err: errors.New("down")}, wantCode: http.StatusServiceUnavailable},
		"ready ok":        {path: "/ready", db: fakePinger{}, wantCode: http.StatusOK},
		"ready db down":   {path: "/ready", db: fakePinger{err: errors.New("down")}, wantCode: http.StatusServiceUnavailable},
		"ready no db":     {path: "/ready", wantCode: http.StatusServiceUnavailable},
		"live ignores db": {path: "/live", db: fakePinger{err: errors.New("down")}, wantCode: http.StatusOK},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t, &directory{}, tc.db)
			w := serve(srv, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, &directory{}, fakePinger{})
	serve(srv, httptest.NewRequest(http.MethodGet, "/live", nil))

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `lldap_gateway_http_requests_total{method="GET",route="/live",status="200"} 1`)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, &directory{}, fakePinger{})
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 17170})
	assert.EqualError(t, err, "PostgresDB is required")

	_, err = New(log.NewNop(), Config{})
	assert.EqualError(t, err, "port is required")
}
