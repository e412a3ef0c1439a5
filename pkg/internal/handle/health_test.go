package handle_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/configs"
	"github.com/yeisme/studiovault/pkg/internal/handle"
	"github.com/yeisme/studiovault/pkg/internal/types"
)

// TestHealthWithoutStorage 测试存储未注入时健康检查仍返回 200，数据库状态为断开.
func TestHealthWithoutStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &configs.AppConfig{}
	cfg.S3.Endpoint = "localhost:9000"
	cfg.Auth = configs.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: "$2a$10$hash",
		JWTSecret:         "secret",
	}
	configs.SetConfigForTest(cfg)

	r := gin.New()
	r.GET("/api/health", handle.Health)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if !resp.OK {
		t.Error("ok = false, want true")
	}

	if resp.DBState != "disconnected" {
		t.Errorf("dbState = %s, want disconnected", resp.DBState)
	}

	if !resp.Env.HasStorage || !resp.Env.HasAuth {
		t.Errorf("env = %+v, want storage and auth ready", resp.Env)
	}
}
