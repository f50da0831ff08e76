package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/domain/models"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/config"
	"osintranet-http-service/pkg/utils"
)

const tokenIssuer = "osintranet-http-service"

// InterfaceJWTService 定义JWT服务接口
type InterfaceJWTService interface {
	GenerateToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token       string    `json:"token" xml:"token"`
	UserID      uint      `json:"user_id" xml:"user_id"`
	Role        string    `json:"role" xml:"role"`
	Username    string    `json:"username" xml:"username"`
	MailAddress string    `json:"mail_address,omitempty" xml:"mail_address,omitempty"`
	ExpiresAt   time.Time `json:"expires_at" xml:"expires_at"`
}

// JWTService 提供JWT相关服务
type JWTService struct {
	secretKey string
	ttl       time.Duration
	DB        *gorm.DB
	Now       Clock
}

// JWTClaims 定义JWT令牌的声明结构
type JWTClaims struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	MailAddress string `json:"mail_address,omitempty"`
	jwt.RegisteredClaims
}

// Principal returns the caller the token was issued to.
func (c *JWTClaims) Principal() contracts.Principal {
	return contracts.Principal{UserID: c.UserID, Username: c.Username, Role: c.Role, MailAddress: c.MailAddress}
}

// NewJWTService 创建一个新的JWT服务
func NewJWTService(cfg *config.Config, db *gorm.DB, now Clock) InterfaceJWTService {
	ttl := cfg.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		ttl:       ttl,
		DB:        db,
		Now:       now,
	}
}

// 1 GenerateToken 生成JWT令牌
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	now := s.Now()
	claims := &JWTClaims{
		UserID:      user.ID,
		Username:    user.Username,
		Role:        user.Role,
		MailAddress: user.MailAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// 2 ValidateToken 验证JWT令牌
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// 3 ExtractClaims 从令牌中提取声明
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, intranet.NewBusinessError(code.ErrTokenInvalid).WithCause(err)
	}
	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.Issuer != tokenIssuer {
		return nil, intranet.NewBusinessError(code.ErrTokenInvalid)
	}
	return claims, nil
}

// 4 Login 处理用户登录请求
func (s *JWTService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 不区分用户不存在与密码错误
		return nil, intranet.NewBusinessError(code.ErrUserPasswordIncorrect)
	case err != nil:
		return nil, intranet.NewRepositoryError(code.ErrDatabase, err)
	}
	if user.Status != "" && user.Status != "active" {
		return nil, intranet.NewBusinessError(code.ErrForbidden)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, intranet.NewBusinessError(code.ErrUserPasswordIncorrect)
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, intranet.NewSystemError(code.ErrSystem, err)
	}
	return &LoginResult{
		Token:       token,
		UserID:      user.ID,
		Role:        user.Role,
		Username:    user.Username,
		MailAddress: user.MailAddress,
		ExpiresAt:   s.Now().Add(s.ttl),
	}, nil
}
