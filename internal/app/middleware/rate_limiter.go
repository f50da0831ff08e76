package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/response"
)

// 令牌桶及最近使用时间
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet 按键保存令牌桶，空闲超过 expiry 的桶会被清理
type limiterSet struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	expiry  time.Duration
}

func newLimiterSet(r float64, burst int, expiry time.Duration) *limiterSet {
	return &limiterSet{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(r),
		burst:   burst,
		expiry:  expiry,
	}
}

// allow 尝试从 key 对应的令牌桶获取令牌
func (s *limiterSet) allow(key string, now time.Time) bool {
	s.mu.Lock()
	b, exists := s.buckets[key]
	if !exists {
		b = &bucket{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	s.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

// cleanup 删除空闲的令牌桶
func (s *limiterSet) cleanup(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) > s.expiry {
			delete(s.buckets, key)
			removed++
		}
	}
	return removed
}

func (s *limiterSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate       float64                   // 每秒允许的请求数
	Burst      int                       // 允许的突发请求数
	ExpiryTime time.Duration             // 限流器空闲过期时间
	LimitType  string                    // 限流类型: "ip", "path", "combined", "custom"
	KeyFunc    func(*gin.Context) string // 自定义键生成函数
}

// DefaultRateLimiterConfig 默认限流器配置
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       1,             // 每秒1个请求
	Burst:      5,             // 允许5个突发请求
	ExpiryTime: 1 * time.Hour, // 空闲1小时后清理
	LimitType:  "ip",          // 默认按IP限流
}

// limiterKey 根据限流类型生成键
func limiterKey(c *gin.Context, cfg RateLimiterConfig) string {
	switch cfg.LimitType {
	case "path":
		return c.Request.URL.Path
	case "combined":
		return c.ClientIP() + ":" + c.Request.URL.Path
	case "custom":
		if cfg.KeyFunc != nil {
			return cfg.KeyFunc(c)
		}
	}
	return c.ClientIP()
}

// RateLimiter 创建限流中间件
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	// 确保配置有效
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.ExpiryTime <= 0 {
		cfg.ExpiryTime = DefaultRateLimiterConfig.ExpiryTime
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	set := newLimiterSet(cfg.Rate, cfg.Burst, cfg.ExpiryTime)
	go func() {
		ticker := time.NewTicker(cfg.ExpiryTime)
		defer ticker.Stop()
		for now := range ticker.C {
			set.cleanup(now)
		}
	}()

	return func(c *gin.Context) {
		if !set.allow(limiterKey(c, cfg), time.Now()) {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// PathRateLimiter 按路径限流
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "path",
	})
}

// CombinedRateLimiter 按IP和路径组合限流
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}

// CustomRateLimiter 自定义键限流
func CustomRateLimiter(rate float64, burst int, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "custom",
		KeyFunc:   keyFunc,
	})
}
