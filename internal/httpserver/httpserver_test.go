package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/config"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/pkg/log"
	pkgSQL "task-assistant/pkg/sqldb"
)

func newTestServer(t *testing.T) (*HTTPServer, *pkgSQL.DB) {
	t.Helper()
	db, err := pkgSQL.Open(context.Background(), "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
		DB:          db,
		Assistant:   assistantUC.New(l, nil, nil, 0),
	})
	require.NoError(t, err)
	return srv, db
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Mode: gin.TestMode, Port: 8080})
	assert.EqualError(t, err, "database is required")

	_, err = New(l, Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestReady_DatabaseDown(t *testing.T) {
	srv, db := newTestServer(t)
	require.NoError(t, db.Close())

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTaskRoutesMounted(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString(`{"title":"Buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Buy milk")
}
