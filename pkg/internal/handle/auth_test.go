package handle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/yeisme/studiovault/pkg/configs"
	"github.com/yeisme/studiovault/pkg/internal/handle"
)

// setupLoginRouter 构建登录路由并写入测试管理员配置.
func setupLoginRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("studio-admin-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate bcrypt hash: %v", err)
	}

	cfg := &configs.AppConfig{}
	cfg.Auth = configs.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
	}
	configs.SetConfigForTest(cfg)

	r := gin.New()
	r.POST("/api/auth/login", handle.Login)

	return r
}

// postLogin 发起登录请求.
func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

// TestLoginHandlerSuccess 测试正确凭据返回令牌.
func TestLoginHandlerSuccess(t *testing.T) {
	r := setupLoginRouter(t)

	w := postLogin(r, `{"username":"admin","password":"studio-admin-pass"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
	}

	if !strings.Contains(w.Body.String(), "token") {
		t.Errorf("body %s does not contain token", w.Body.String())
	}
}

// TestLoginHandlerIndistinguishableFailures 测试用户名错误和密码错误的响应逐字节相同.
func TestLoginHandlerIndistinguishableFailures(t *testing.T) {
	r := setupLoginRouter(t)

	wrongUser := postLogin(r, `{"username":"intruder","password":"studio-admin-pass"}`)
	wrongPass := postLogin(r, `{"username":"admin","password":"guess"}`)

	if wrongUser.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d/%d, want 401/401", wrongUser.Code, wrongPass.Code)
	}

	if wrongUser.Body.String() != wrongPass.Body.String() {
		t.Errorf("failure bodies differ: %s vs %s", wrongUser.Body.String(), wrongPass.Body.String())
	}
}

// TestLoginHandlerMissingFields 测试缺少字段返回 400.
func TestLoginHandlerMissingFields(t *testing.T) {
	r := setupLoginRouter(t)

	cases := []string{
		`{}`,
		`{"username":"admin"}`,
		`{"password":"studio-admin-pass"}`,
		`not-json`,
	}

	for _, body := range cases {
		w := postLogin(r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, w.Code)
		}
	}
}
