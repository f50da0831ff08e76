package benchmark

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig 压测配置，未设置 BENCHMARK_BASE_URL 时跳过对运行中服务的压测
type TestConfig struct {
	BaseURL         string  `env:"BENCHMARK_BASE_URL"`
	AdminUser       string  `env:"BENCHMARK_ADMIN_USER" envDefault:"admin"`
	AdminPass       string  `env:"BENCHMARK_ADMIN_PASS"`
	Concurrency     int     `env:"BENCHMARK_CONCURRENCY" envDefault:"10"`
	Requests        int     `env:"BENCHMARK_REQUESTS" envDefault:"100"`
	RequestsPerSec  float64 `env:"BENCHMARK_RATE" envDefault:"25"`
	TranslationInfo string  `env:"BENCHMARK_TRANSLATION_INFO"`
}

var config TestConfig

// TestMain 测试主函数
func TestMain(m *testing.M) {
	if err := env.Parse(&config); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// liveBenchmark 登录运行中的服务
func liveBenchmark(t *testing.T) *APIBenchmark {
	t.Helper()
	if config.BaseURL == "" {
		t.Skip("BENCHMARK_BASE_URL 未设置")
	}
	b := NewAPIBenchmark(config.BaseURL, config.Concurrency, config.Requests, "").
		WithRate(config.RequestsPerSec, config.Concurrency)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, b.Login(ctx, config.AdminUser, config.AdminPass))
	return b
}

func runLive(t *testing.T, name string, run func(context.Context, *APIBenchmark) *BenchmarkResult) {
	b := liveBenchmark(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result := run(ctx, b)
	result.PrintResult()
	if result.FailureCount > 0 {
		t.Errorf("%s接口测试失败: 成功率 %.2f%%", name, result.SuccessRate())
	}
}

// TestLetterheadList 测试信头列表接口
func TestLetterheadList(t *testing.T) {
	runLive(t, "信头列表", func(ctx context.Context, b *APIBenchmark) *BenchmarkResult {
		return b.RunGET(ctx, "/common/letterheads")
	})
}

// TestTelephoneList 测试电话列表接口
func TestTelephoneList(t *testing.T) {
	runLive(t, "电话列表", func(ctx context.Context, b *APIBenchmark) *BenchmarkResult {
		return b.RunGET(ctx, "/addressbook/telephone-list")
	})
}

// TestAccountingList 测试会计列表接口
func TestAccountingList(t *testing.T) {
	runLive(t, "会计列表", func(ctx context.Context, b *APIBenchmark) *BenchmarkResult {
		return b.RunGET(ctx, "/finance/accountings")
	})
}

// TestFoodGroupTree 测试食品组树接口
func TestFoodGroupTree(t *testing.T) {
	if config.TranslationInfo == "" {
		t.Skip("BENCHMARK_TRANSLATION_INFO 未设置")
	}
	runLive(t, "食品组树", func(ctx context.Context, b *APIBenchmark) *BenchmarkResult {
		return b.RunGET(ctx, "/foodwaste/system/food-groups?translation_info="+config.TranslationInfo)
	})
}

// TestRunTestAgainstStub 用本地服务器检查统计逻辑
func TestRunTestAgainstStub(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"code":100000,"message":"OK","data":{"token":"stub-token"}}`)
		case "/api/common/letterheads":
			if r.Header.Get("Authorization") != "Bearer stub-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			calls++
			if calls > 1 {
				w.Header().Set("X-Cache", "HIT")
			}
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer server.Close()

	ctx := context.Background()
	b := NewAPIBenchmark(server.URL+"/api", 1, 5, "")
	require.NoError(t, b.Login(ctx, "admin", "secret"))
	assert.Equal(t, "stub-token", b.AuthToken)

	result := b.RunGET(ctx, "/common/letterheads")
	assert.Equal(t, 5, result.SuccessCount)
	assert.Equal(t, 4, result.CacheHits)
	assert.Equal(t, 100.0, result.SuccessRate())

	limited := b.RunPOST(ctx, "/finance/accountings", map[string]int{"number": 1})
	assert.Equal(t, 5, limited.FailureCount)
	assert.Equal(t, 5, limited.StatusCodes[http.StatusTooManyRequests])
}
