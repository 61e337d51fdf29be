package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey      string        // 签名密钥
	AccessTokenTTL time.Duration // Access Token 有效期
	Issuer         string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey:      "vividhands-secret-key-change-in-production",
		AccessTokenTTL: 24 * time.Hour,
		Issuer:         "vividhands",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// UserClaims 用户声明
// Email 为主体邮箱；ArtisanID 仅在卖家登录时签入，买家 Token 中为 0
type UserClaims struct {
	Email     string `json:"email"`
	ArtisanID int64  `json:"artisan_id,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// ==================== Token 生成与解析 ====================

// ErrMalformedToken Token 缺失 Bearer 前缀或无法解析
var ErrMalformedToken = errors.New("malformed credential")

// GenerateToken 生成 Access Token
// artisanID 传 0 表示买家 Token
func GenerateToken(email string, artisanID int64, role string) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		Email:     email,
		ArtisanID: artisanID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// BearerPrefix Authorization 头固定前缀（7 个字符）
const BearerPrefix = "Bearer "

// ParseAuthHeader 解析原始 Authorization 头
// 剥掉 Bearer 前缀后解析，前缀缺失或 Token 无效都归为 ErrMalformedToken
func ParseAuthHeader(raw string) (*UserClaims, error) {
	if !strings.HasPrefix(raw, BearerPrefix) {
		return nil, ErrMalformedToken
	}

	claims, err := ParseToken(raw[len(BearerPrefix):])
	if err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyEmail     = "email"
	ContextKeyArtisanID = "artisan_id"
	ContextKeyRole      = "role"
	ContextKeyClaims    = "claims"
)

// JWTAuth JWT 认证中间件
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ParseAuthHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}

		// 注入身份信息到 Context
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyArtisanID, claims.ArtisanID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireRole 角色权限校验中间件
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextKeyRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing role"})
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		c.Abort()
	}
}

// ==================== 辅助函数 ====================

// GetEmail 从 Context 获取主体邮箱
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextKeyEmail); exists {
		return email.(string)
	}
	return ""
}

// GetArtisanID 从 Context 获取卖家 ID（买家 Token 为 0）
func GetArtisanID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyArtisanID); exists {
		return id.(int64)
	}
	return 0
}

// GetRole 从 Context 获取角色
func GetRole(c *gin.Context) string {
	if role, exists := c.Get(ContextKeyRole); exists {
		return role.(string)
	}
	return ""
}
