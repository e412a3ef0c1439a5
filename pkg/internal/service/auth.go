package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeisme/studiovault/pkg/configs"
)

// ErrInvalidCredentials 登录失败的统一错误，不区分用户名错误和密码错误，防止用户枚举.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken 令牌缺失、格式错误、签名无效或已过期.
var ErrInvalidToken = errors.New("invalid or expired token")

// AdminClaims 管理员令牌的声明.
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService 单一管理员的凭据校验与令牌签发.
type AuthService struct {
	cfg configs.AuthConfig
}

// NewAuthService 创建认证服务.
func NewAuthService() *AuthService {
	return &AuthService{cfg: configs.GetConfig().Auth}
}

// Login 校验用户名与密码，成功时签发有限期的 HS256 令牌.
// 配置的密码必须是 bcrypt 哈希；存了明文时比较恒定失败，表现为登录一律 401.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cfg.AdminUsername {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken 解析并校验令牌，返回其中的声明.
func (s *AuthService) VerifyToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
