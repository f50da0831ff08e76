package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/domain/services"
	"osintranet-http-service/internal/error/response"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(s services.InterfaceJWTService) {
	jwtService = s
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate validates the bearer token and stores the principal in the
// request context. It aborts the request and returns false on failure.
func authenticate(c *gin.Context) (contracts.Principal, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		c.Abort()
		return contracts.Principal{}, false
	}

	claims, err := jwtService.ExtractClaims(extractToken(authHeader))
	if err != nil {
		response.Fault(c, err)
		c.Abort()
		return contracts.Principal{}, false
	}

	p := claims.Principal()
	c.Request = c.Request.WithContext(contracts.WithPrincipal(c.Request.Context(), p))
	c.Set("userID", p.UserID)
	c.Set("role", p.Role)
	c.Set("claims", claims)
	return p, true
}

// AuthenticateSystemAdmin 验证系统管理员权限
func AuthenticateSystemAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := authenticate(c)
		if !ok {
			return
		}
		// 检查是否是系统管理员
		if !p.IsAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticateUser 验证普通用户权限
func AuthenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := authenticate(c)
		if !ok {
			return
		}
		// 检查是否有任何有效角色
		if p.Role != models.RoleUser && p.Role != models.RoleAdmin {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
