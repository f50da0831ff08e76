package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/domain/services"
	"osintranet-http-service/internal/error/response"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCacheHitAndPurgeOnSuccess(t *testing.T) {
	store := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { store.Close() })
	InitCacheMiddleware(store)
	t.Cleanup(func() { InitCacheMiddleware(nil) })

	calls := 0
	r := gin.New()
	group := r.Group("/api/common", PurgeOnSuccess("/api/common"))
	group.GET("/letterheads", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		calls++
		response.Success(c, gin.H{"calls": calls})
	})
	group.POST("/letterheads", func(c *gin.Context) {
		response.Success(c, nil)
	})

	first := do(r, http.MethodGet, "/api/common/letterheads", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := do(r, http.MethodGet, "/api/common/letterheads", nil)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)

	// 不同语言是不同的缓存条目
	english := do(r, http.MethodGet, "/api/common/letterheads", map[string]string{"Accept-Language": "en"})
	assert.Equal(t, "MISS", english.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/common/letterheads", nil).Code)

	third := do(r, http.MethodGet, "/api/common/letterheads", nil)
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 3, calls)
}

func TestCacheSkipsFailedResponses(t *testing.T) {
	store := cache.NewMemoryStore(time.Minute)
	t.Cleanup(func() { store.Close() })
	InitCacheMiddleware(store)
	t.Cleanup(func() { InitCacheMiddleware(nil) })

	r := gin.New()
	r.GET("/missing", Cache(), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{})
	})

	do(r, http.MethodGet, "/missing", nil)
	w := do(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))
}

func TestCacheStatsWithoutStore(t *testing.T) {
	InitCacheMiddleware(nil)
	assert.Equal(t, false, CacheStats()["enabled"])
}

func TestRateLimiterRejectsBurst(t *testing.T) {
	r := gin.New()
	r.GET("/limited", IPRateLimiter(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/limited", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/limited", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/limited", nil).Code)
}

func TestLimiterSetCleanup(t *testing.T) {
	set := newLimiterSet(1, 1, time.Minute)
	now := time.Now()

	assert.True(t, set.allow("a", now))
	assert.False(t, set.allow("a", now))
	assert.True(t, set.allow("b", now.Add(30*time.Second)))

	assert.Equal(t, 1, set.cleanup(now.Add(80*time.Second)))
	assert.Equal(t, 1, set.size())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://intranet.local"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := do(r, http.MethodOptions, "/ping", map[string]string{"Origin": "http://intranet.local"})
	assert.Equal(t, http.StatusNoContent, preflight.Code)
	assert.Equal(t, "http://intranet.local", preflight.Header().Get("Access-Control-Allow-Origin"))

	other := do(r, http.MethodGet, "/ping", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusOK, other.Code)
	assert.Empty(t, other.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthentication(t *testing.T) {
	jwt := services.NewJWTService(&config.Config{JWTSecretKey: "test-secret", JWTTTL: time.Hour}, nil, services.UTCClock)
	InitAuthMiddleware(jwt)

	userToken, err := jwt.GenerateToken(&models.User{BaseModel: models.BaseModel{ID: 2}, Username: "bente", Role: models.RoleUser})
	require.NoError(t, err)
	adminToken, err := jwt.GenerateToken(&models.User{BaseModel: models.BaseModel{ID: 1}, Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/user", AuthenticateUser(), func(c *gin.Context) { c.String(http.StatusOK, c.GetString("role")) })
	r.GET("/admin", AuthenticateSystemAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/user", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/user", map[string]string{"Authorization": "Bearer garbage"}).Code)

	w := do(r, http.MethodGet, "/user", map[string]string{"Authorization": "Bearer " + userToken})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoleUser, w.Body.String())

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + userToken}).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + adminToken}).Code)
}
