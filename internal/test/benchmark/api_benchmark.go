package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// APIBenchmark 定义API基准测试结构
type APIBenchmark struct {
	BaseURL     string
	Concurrency int
	Requests    int
	AuthToken   string
	Language    string
	Client      *http.Client

	// pacer 限制发送速率，nil 表示不限速
	pacer *rate.Limiter
}

// BenchmarkResult 定义基准测试结果
type BenchmarkResult struct {
	URL            string        `json:"url"`
	Method         string        `json:"method"`
	Concurrency    int           `json:"concurrency"`
	TotalRequests  int           `json:"total_requests"`
	SuccessCount   int           `json:"success_count"`
	FailureCount   int           `json:"failure_count"`
	CacheHits      int           `json:"cache_hits"`
	TotalTime      time.Duration `json:"total_time"`
	AverageTime    time.Duration `json:"average_time"`
	MinTime        time.Duration `json:"min_time"`
	MaxTime        time.Duration `json:"max_time"`
	RequestsPerSec float64       `json:"requests_per_sec"`
	StatusCodes    map[int]int   `json:"status_codes"`
	Errors         []string      `json:"errors"`
}

// RequestResult 定义单个请求的结果
type RequestResult struct {
	Duration   time.Duration
	StatusCode int
	CacheHit   bool
	Error      error
}

// envelope 服务统一响应格式
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewAPIBenchmark 创建新的API基准测试实例
func NewAPIBenchmark(baseURL string, concurrency, requests int, authToken string) *APIBenchmark {
	return &APIBenchmark{
		BaseURL:     baseURL,
		Concurrency: concurrency,
		Requests:    requests,
		AuthToken:   authToken,
		Language:    "da",
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithRate 限制每秒发送的请求数，服务端限流器会拒绝超出的请求
func (b *APIBenchmark) WithRate(perSecond float64, burst int) *APIBenchmark {
	b.pacer = rate.NewLimiter(rate.Limit(perSecond), burst)
	return b
}

// Login 登录并保存令牌
func (b *APIBenchmark) Login(ctx context.Context, username, password string) error {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("解析登录响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("登录失败: %d %s", body.Code, body.Message)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body.Data, &result); err != nil || result.Token == "" {
		return fmt.Errorf("登录响应中没有令牌")
	}
	b.AuthToken = result.Token
	return nil
}

// RunGET 执行GET请求的基准测试
func (b *APIBenchmark) RunGET(ctx context.Context, path string) *BenchmarkResult {
	return b.runTest(ctx, http.MethodGet, b.BaseURL+path, nil)
}

// RunPOST 执行POST请求的基准测试
func (b *APIBenchmark) RunPOST(ctx context.Context, path string, payload interface{}) *BenchmarkResult {
	return b.runWithPayload(ctx, http.MethodPost, path, payload)
}

// RunPUT 执行PUT请求的基准测试
func (b *APIBenchmark) RunPUT(ctx context.Context, path string, payload interface{}) *BenchmarkResult {
	return b.runWithPayload(ctx, http.MethodPut, path, payload)
}

func (b *APIBenchmark) runWithPayload(ctx context.Context, method, path string, payload interface{}) *BenchmarkResult {
	url := b.BaseURL + path
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return &BenchmarkResult{
			URL:    url,
			Method: method,
			Errors: []string{fmt.Sprintf("JSON编码错误: %v", err)},
		}
	}
	return b.runTest(ctx, method, url, jsonData)
}

// send 发送单个请求
func (b *APIBenchmark) send(ctx context.Context, method, url string, payload []byte) RequestResult {
	if b.pacer != nil {
		if err := b.pacer.Wait(ctx); err != nil {
			return RequestResult{Error: err}
		}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return RequestResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", b.Language)
	if b.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.AuthToken)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return RequestResult{Error: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return RequestResult{
		Duration:   time.Since(start),
		StatusCode: resp.StatusCode,
		CacheHit:   resp.Header.Get("X-Cache") == "HIT",
	}
}

// runTest 执行基准测试
func (b *APIBenchmark) runTest(ctx context.Context, method, url string, payload []byte) *BenchmarkResult {
	results := make(chan RequestResult, b.Requests)
	jobs := make(chan struct{})
	var wg sync.WaitGroup

	startTime := time.Now()

	// 创建工作池
	for i := 0; i < b.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				results <- b.send(ctx, method, url, payload)
			}
		}()
	}
	for i := 0; i < b.Requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	close(results)

	result := &BenchmarkResult{
		URL:           url,
		Method:        method,
		Concurrency:   b.Concurrency,
		TotalRequests: b.Requests,
		MinTime:       1<<63 - 1,
		StatusCodes:   make(map[int]int),
	}
	var totalTime time.Duration
	for r := range results {
		if r.Error != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, r.Error.Error())
			continue
		}

		totalTime += r.Duration
		if r.Duration < result.MinTime {
			result.MinTime = r.Duration
		}
		if r.Duration > result.MaxTime {
			result.MaxTime = r.Duration
		}
		if r.CacheHit {
			result.CacheHits++
		}

		result.StatusCodes[r.StatusCode]++
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	result.TotalTime = time.Since(startTime)
	result.RequestsPerSec = float64(b.Requests) / result.TotalTime.Seconds()
	if completed := result.SuccessCount + result.FailureCount; completed > 0 {
		result.AverageTime = totalTime / time.Duration(completed)
	}
	return result
}

// SuccessRate 成功率百分比
func (r *BenchmarkResult) SuccessRate() float64 {
	if r.TotalRequests == 0 {
		return 0
	}
	return float64(r.SuccessCount) / float64(r.TotalRequests) * 100
}

// PrintResult 打印基准测试结果
func (r *BenchmarkResult) PrintResult() {
	fmt.Printf("基准测试结果:\n")
	fmt.Printf("URL: %s\n", r.URL)
	fmt.Printf("方法: %s\n", r.Method)
	fmt.Printf("并发数: %d\n", r.Concurrency)
	fmt.Printf("总请求数: %d\n", r.TotalRequests)
	fmt.Printf("成功请求数: %d\n", r.SuccessCount)
	fmt.Printf("失败请求数: %d\n", r.FailureCount)
	fmt.Printf("缓存命中数: %d\n", r.CacheHits)
	fmt.Printf("总耗时: %s\n", r.TotalTime)
	fmt.Printf("平均耗时: %s\n", r.AverageTime)
	fmt.Printf("最小耗时: %s\n", r.MinTime)
	fmt.Printf("最大耗时: %s\n", r.MaxTime)
	fmt.Printf("每秒请求数: %.2f\n", r.RequestsPerSec)
	fmt.Printf("状态码分布:\n")
	for code, count := range r.StatusCodes {
		fmt.Printf("  %d: %d\n", code, count)
	}
	if len(r.Errors) > 0 {
		fmt.Printf("错误信息 (最多显示5个):\n")
		for i, err := range r.Errors {
			if i >= 5 {
				fmt.Printf("  ... 还有 %d 个错误\n", len(r.Errors)-5)
				break
			}
			fmt.Printf("  %s\n", err)
		}
	}
}
