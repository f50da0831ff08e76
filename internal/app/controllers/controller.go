package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/response"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"102000"`
	Message string      `json:"message" example:"Brevhovedet findes ikke"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 表示成功响应
type SuccessResponse struct {
	Code    int         `json:"code" example:"100000"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data"`
}

// invalidMethod 处理未知的方法名
func invalidMethod(ctx *gin.Context) {
	response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
}

// query dispatches q on the bus and writes the result.
func query[R any](ctx *gin.Context, container *container.ServiceContainer, q any) {
	result, err := bus.Query[R](ctx.Request.Context(), container.Bus(), q)
	if err != nil {
		response.Fault(ctx, err)
		return
	}
	response.Success(ctx, result)
}

// execute dispatches command on the bus and writes the result.
func execute[R any](ctx *gin.Context, container *container.ServiceContainer, command any) {
	result, err := bus.Execute[R](ctx.Request.Context(), container.Bus(), command)
	if err != nil {
		response.Fault(ctx, err)
		return
	}
	response.Success(ctx, result)
}

// bindJSON 绑定请求体，失败时写入参数错误
func bindJSON(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		response.ParamError(ctx, err)
		return false
	}
	return true
}

// bindURI 绑定路径参数，失败时写入参数错误
func bindURI(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindUri(obj); err != nil {
		response.ParamError(ctx, err)
		return false
	}
	return true
}

// bindQuery 绑定查询参数，失败时写入参数错误
func bindQuery(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindQuery(obj); err != nil {
		response.ParamError(ctx, err)
		return false
	}
	return true
}

// bindCommand binds the body first so the path parameters win.
func bindCommand(ctx *gin.Context, obj any) bool {
	return bindJSON(ctx, obj) && bindURI(ctx, obj)
}

// uuidParam 解析UUID路径参数
func uuidParam(ctx *gin.Context, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(key))
	if err != nil {
		response.ParamError(ctx, err)
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses an optional UUID query parameter. A missing parameter
// yields uuid.Nil and is left to validation.
func uuidQuery(ctx *gin.Context, key string) (uuid.UUID, bool) {
	value := ctx.Query(key)
	if value == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		response.ParamError(ctx, err)
		return uuid.Nil, false
	}
	return id, true
}
