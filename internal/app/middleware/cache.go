package middleware

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/error/response"
	"osintranet-http-service/internal/infrastructure/cache"
	"osintranet-http-service/pkg/logger"
)

// responsePrefix 响应缓存键前缀，与仓储缓存共用存储
const responsePrefix = "http:"

// 缓存条目
type cacheEntry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

var responseStore cache.Store

// InitCacheMiddleware 设置响应缓存使用的存储
func InitCacheMiddleware(store cache.Store) {
	responseStore = store
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Expiration time.Duration             // 缓存过期时间
	Methods    []string                  // 需要缓存的HTTP方法
	KeyFunc    func(*gin.Context) string // 自定义缓存键生成函数
}

// DefaultCacheConfig 默认缓存配置
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

// defaultKeyFunc keys by path so that PurgeCacheByPrefix can find the
// entries. The query, the negotiated format and the language are hashed.
func defaultKeyFunc(c *gin.Context) string {
	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var variant strings.Builder
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			variant.WriteString(key + "=" + value + "&")
		}
	}
	variant.WriteString("|" + c.GetHeader("Accept"))
	variant.WriteString("|" + string(response.Language(c)))

	hasher := md5.New()
	hasher.Write([]byte(variant.String()))
	return responsePrefix + c.Request.URL.Path + "#" + hex.EncodeToString(hasher.Sum(nil))
}

// Cache 创建缓存中间件
func Cache(config ...CacheConfig) gin.HandlerFunc {
	var cfg CacheConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultCacheConfig
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		methodAllowed := false
		for _, method := range cfg.Methods {
			if c.Request.Method == method {
				methodAllowed = true
				break
			}
		}
		if !methodAllowed || responseStore == nil {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)
		ctx := c.Request.Context()

		var entry cacheEntry
		found, err := responseStore.Get(ctx, key, &entry)
		if err != nil {
			logger.Warning("读取响应缓存失败 key=%s: %v", key, err)
		}
		if found {
			c.Header("X-Cache", "HIT")
			c.Data(entry.Status, entry.ContentType, entry.Content)
			c.Abort()
			return
		}

		// 缓存未命中，捕获响应
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer
		c.Header("X-Cache", "MISS")

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			entry := cacheEntry{
				Status:      http.StatusOK,
				ContentType: c.Writer.Header().Get("Content-Type"),
				Content:     writer.body.Bytes(),
			}
			if err := responseStore.Set(ctx, key, entry, cfg.Expiration); err != nil {
				logger.Warning("写入响应缓存失败 key=%s: %v", key, err)
			}
		}
	}
}

// PurgeCache 清除所有响应缓存
func PurgeCache(ctx context.Context) {
	cache.Invalidate(ctx, responseStore, responsePrefix)
}

// PurgeCacheByPrefix 根据路径前缀清除响应缓存
func PurgeCacheByPrefix(ctx context.Context, pathPrefix string) {
	cache.Invalidate(ctx, responseStore, responsePrefix+pathPrefix)
}

// PurgeOnSuccess clears the cached responses under the given path prefixes
// after a command succeeded.
func PurgeOnSuccess(pathPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet || c.Writer.Status() >= http.StatusMultipleChoices {
			return
		}
		for _, prefix := range pathPrefixes {
			PurgeCacheByPrefix(c.Request.Context(), prefix)
		}
	}
}

// 自定义响应写入器，用于捕获响应内容
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 重写Write方法，同时写入原始响应和缓冲区
func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// WriteString 重写WriteString方法，同时写入原始响应和缓冲区
func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheStats 获取缓存统计信息
func CacheStats() map[string]interface{} {
	if responseStore == nil {
		return map[string]interface{}{"enabled": false}
	}
	return responseStore.Stats()
}
