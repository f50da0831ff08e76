package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/domain/services"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/internal/infrastructure/database"
)

const adminPassword = "s3cret-admin"

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	router    *gin.Engine
	container *container.ServiceContainer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	pool, err := database.Open("test", sqlite.Open("file::memory:"), "warn")
	require.NoError(t, err)
	pool.MaxOpenConns = 1
	require.NoError(t, pool.ConfigurePool())
	t.Cleanup(func() { pool.Close() })

	db := pool.GetDB()
	require.NoError(t, database.Migrate(db, database.MigrationAuto))
	require.NoError(t, database.SeedReferenceData(db))
	require.NoError(t, database.EnsureAdminExists(db, adminPassword))

	cfg := &config.Config{
		JWTSecretKey:     "routes-test-secret",
		JWTTTL:           time.Hour,
		CacheTTL:         time.Minute,
		CORSAllowOrigins: []string{"*"},
	}
	registry := prometheus.NewRegistry()
	c := container.NewServiceContainer(container.Dependencies{
		DB:         db,
		Config:     cfg,
		Store:      cache.NewMemoryStore(time.Minute),
		Registerer: registry,
	})
	t.Cleanup(c.Close)

	return &testServer{router: SetupRouter(c, registry), container: c}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *testServer) login(t *testing.T, username, password string) (*httptest.ResponseRecorder, envelope) {
	return s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": username, "password": password})
}

func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	w, env := s.login(t, "admin", adminPassword)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result services.LoginResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func (s *testServer) userToken(t *testing.T) string {
	t.Helper()
	jwt := s.container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwt.GenerateToken(&models.User{BaseModel: models.BaseModel{ID: 99}, Username: "bente", Role: models.RoleUser, MailAddress: "bente@example.dk"})
	require.NoError(t, err)
	return token
}

func TestPingAndHealth(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, code.ErrSuccess, env.Code)

	w, env = s.do(t, http.MethodGet, "/api/health/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var status map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "ok", status["database"])
	assert.Equal(t, "ok", status["cache"])
	assert.Equal(t, "disabled", status["calendar"])

	w, _ = s.do(t, http.MethodGet, "/api/health/cache-stats", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPingRendersXML(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Accept", "application/xml")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "xml")
	assert.Contains(t, w.Body.String(), "<response>")
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	w, env := s.login(t, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrUserPasswordIncorrect, env.Code)

	w, env = s.login(t, "nobody", adminPassword)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrUserPasswordIncorrect, env.Code)

	assert.NotEmpty(t, s.adminToken(t))
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/common/letterheads", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrTokenInvalid, env.Code)

	w, _ = s.do(t, http.MethodPost, "/api/foodwaste/system/translations", s.userToken(t), gin.H{})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLetterheadRoundTrip(t *testing.T) {
	s := newTestServer(t)
	token := s.adminToken(t)

	w, env := s.do(t, http.MethodPost, "/api/common/letterheads", token, gin.H{
		"number": 42,
		"name":   "Ordrebekræftelse",
		"line1":  "OS Development",
		"line2":  "Bakkevej 1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, code.ErrSuccess, env.Code)

	w, env = s.do(t, http.MethodPost, "/api/common/letterheads", token, gin.H{"number": 42, "name": "Igen", "line1": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, code.ErrLetterheadAlreadyExists, env.Code)

	w, env = s.do(t, http.MethodGet, "/api/common/letterheads/42", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	var letterhead map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &letterhead))
	assert.Equal(t, "Ordrebekræftelse", letterhead["name"])

	w, _ = s.do(t, http.MethodGet, "/api/common/letterheads/42", token, nil)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))

	w, _ = s.do(t, http.MethodPut, "/api/common/letterheads/42", token, gin.H{"name": "Faktura", "line1": "OS Development"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = s.do(t, http.MethodGet, "/api/common/letterheads/42", token, nil)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
	require.NoError(t, json.Unmarshal(env.Data, &letterhead))
	assert.Equal(t, "Faktura", letterhead["name"])

	w, env = s.do(t, http.MethodGet, "/api/common/letterheads/100", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrValidation, env.Code)

	w, env = s.do(t, http.MethodGet, "/api/common/letterheads/17", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrLetterheadNotFound, env.Code)
}

func TestSystemDataReadableByUsers(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/foodwaste/system/translation-infos", s.userToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var infos []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &infos))
	assert.Len(t, infos, 2)

	path := "/api/foodwaste/system/storage-types?translation_info=" + database.TranslationInfoDanish.String()
	w, env = s.do(t, http.MethodGet, path, s.userToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var storageTypes []interface{}
	require.NoError(t, json.Unmarshal(env.Data, &storageTypes))
	assert.NotEmpty(t, storageTypes)

	w, _ = s.do(t, http.MethodGet, "/api/foodwaste/system/storage-types?translation_info=nope", s.userToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarWithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/calendar/systems", s.userToken(t), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, code.ErrNoHandler, env.Code)
}

func TestMetricsExposeBusCounters(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/common/letterheads", s.userToken(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "osintranet_bus_dispatched_total")
}
