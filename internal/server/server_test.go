package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipe-extract/backend/config"
	"github.com/pageza/recipe-extract/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Environment = config.Test
	return New(cfg, testhelpers.NewSQLiteDB(t), nil, zap.NewNop())
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/parse_ingredients?text=2%20eggs", http.StatusOK},
		{http.MethodGet, "/api/v1/parse_ingredients?text=2%20eggs", http.StatusOK},
		{http.MethodGet, "/parse_ingredients", http.StatusUnprocessableEntity},
		{http.MethodGet, "/parse_recipe_link", http.StatusUnprocessableEntity},
		{http.MethodGet, "/api/v1/imports", http.StatusOK},
		{http.MethodGet, "/api/v1/imports/nope", http.StatusBadRequest},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestMetricsExposeRequests(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/parse_ingredients?text=1%20cup%20rice", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipeparse_http_requests_total")
	assert.Contains(t, w.Body.String(), "recipeparse_ingredient_lines_total")
}

func TestStartAndShutdown(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<script type="application/ld+json">{"@graph":[{"@type":"Recipe","name":"Tea","recipeIngredient":["1 cup water"]}]}</script>`)
	}))
	defer page.Close()

	// Reserve a free port for the server under test
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := fmt.Sprint(ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, ln.Close())

	cfg := config.Default()
	cfg.Environment = config.Test
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = port
	s := New(cfg, testhelpers.NewSQLiteDB(t), nil, zap.NewNop())

	errChan := make(chan error, 1)
	go func() { errChan <- s.Start() }()

	base := "http://" + cfg.Addr()
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(base + "/parse_recipe_link?link=" + url.QueryEscape(page.URL))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-errChan)
}
