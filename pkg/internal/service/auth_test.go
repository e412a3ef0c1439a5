package service_test

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yeisme/studiovault/pkg/configs"
	"github.com/yeisme/studiovault/pkg/internal/service"
)

// setAuthConfig 写入测试用的认证配置，返回明文密码.
func setAuthConfig(t *testing.T, ttl time.Duration) string {
	t.Helper()

	password := "studio-admin-pass"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate bcrypt hash: %v", err)
	}

	cfg := &configs.AppConfig{}
	cfg.Auth = configs.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		TokenTTL:          ttl,
	}
	configs.SetConfigForTest(cfg)

	return password
}

// TestLoginAndVerify 测试登录签发的令牌可以通过校验并还原用户名.
func TestLoginAndVerify(t *testing.T) {
	password := setAuthConfig(t, time.Hour)
	svc := service.NewAuthService()

	token, err := svc.Login("admin", password)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	if claims.Username != "admin" {
		t.Errorf("claims.Username = %s, want admin", claims.Username)
	}
}

// TestLoginRejectsBadCredentials 测试用户名错误和密码错误返回同一个错误.
func TestLoginRejectsBadCredentials(t *testing.T) {
	password := setAuthConfig(t, time.Hour)
	svc := service.NewAuthService()

	_, errUser := svc.Login("someone-else", password)
	if !errors.Is(errUser, service.ErrInvalidCredentials) {
		t.Errorf("wrong username: error = %v, want ErrInvalidCredentials", errUser)
	}

	_, errPass := svc.Login("admin", "wrong-password")
	if !errors.Is(errPass, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", errPass)
	}

	// 两种失败对外不可区分
	if errUser != errPass { //nolint:errorlint
		t.Error("expected identical errors for wrong username and wrong password")
	}
}

// TestVerifyTokenRejectsExpired 测试过期令牌校验失败.
func TestVerifyTokenRejectsExpired(t *testing.T) {
	password := setAuthConfig(t, -time.Hour)
	svc := service.NewAuthService()

	token, err := svc.Login("admin", password)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, service.ErrInvalidToken) {
		t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
	}
}

// TestVerifyTokenRejectsForeignSecret 测试其他密钥签发的令牌校验失败.
func TestVerifyTokenRejectsForeignSecret(t *testing.T) {
	password := setAuthConfig(t, time.Hour)

	// 用另一个密钥签发
	token, err := service.NewAuthService().Login("admin", password)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	cfg := configs.GetConfig()
	cfg.Auth.JWTSecret = "another-secret"
	configs.SetConfigForTest(cfg)

	if _, err := service.NewAuthService().VerifyToken(token); !errors.Is(err, service.ErrInvalidToken) {
		t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
	}

	if _, err := service.NewAuthService().VerifyToken("not-a-jwt"); !errors.Is(err, service.ErrInvalidToken) {
		t.Errorf("VerifyToken() error = %v, want ErrInvalidToken", err)
	}
}
