package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/app/middleware"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1 Ping 健康检查端点
// @Summary      Ping
// @Tags         Health
// @Produce      json,xml
// @Success      200  {object}  SuccessResponse
// @Router       /ping [get]
func (h *HealthCheckController) Ping() {
	response.Success(h.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 2 Status 检查数据库和缓存
// @Summary      Service status
// @Description  Pings the intranet database, the calendar database and the cache
// @Tags         Health
// @Produce      json,xml
// @Success      200  {object}  SuccessResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /health/status [get]
func (h *HealthCheckController) Status() {
	ctx, cancel := context.WithTimeout(h.Ctx.Request.Context(), 3*time.Second)
	defer cancel()

	healthy := true
	status := gin.H{}
	for component, state := range h.Container.HealthCheck(ctx) {
		status[component] = state
		if state != "ok" && state != "disabled" {
			healthy = false
		}
	}
	if !healthy {
		response.Fail(h.Ctx, code.ErrSystem, status)
		return
	}
	response.Success(h.Ctx, status)
}

// 3 CacheStats 缓存统计
// @Summary      Cache statistics
// @Tags         Health
// @Produce      json,xml
// @Success      200  {object}  SuccessResponse
// @Router       /health/cache-stats [get]
func (h *HealthCheckController) CacheStats() {
	// gin.H renders as XML as well
	response.Success(h.Ctx, gin.H(middleware.CacheStats()))
}
