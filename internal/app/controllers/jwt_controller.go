package controllers

import (
	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/services"
	"osintranet-http-service/internal/domain/services/container"
	"osintranet-http-service/internal/error/response"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"hemmelig"`
}

// HandleJWTFunc 返回一个处理JWT认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			invalidMethod(ctx)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Checks the intranet user's password and returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json,xml
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  SuccessResponse{data=services.LoginResult}  "Success response with token"
// @Failure      400  {object}  ErrorResponse  "Bad request"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "User locked"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(c.Ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fault(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, result)
}
