// Package handle 新增健康检查处理器实现.
package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/configs"
	ctxPkg "github.com/yeisme/studiovault/pkg/context"
	"github.com/yeisme/studiovault/pkg/internal/types"
)

const healthTimeout = 2 * time.Second

// Health 汇总服务的运行状态：数据库连通性与关键配置是否就绪.
//
//	@Summary		健康检查
//	@Description	返回数据库连接状态与存储、认证配置就绪情况
//	@Tags			健康
//	@Produce		json
//	@Success		200	{object}	types.HealthResponse	"健康状态"
//	@Router			/api/health [get]
func Health(c *gin.Context) {
	cfg := configs.GetConfig()

	resp := types.HealthResponse{
		OK:      true,
		DBState: dbState(c),
		Env: types.HealthEnv{
			// GetDSN 永远能拼出默认 DSN，必须看操作者是否真的提供过配置
			HasDatabase: configs.DatabaseConfigured(),
			HasStorage:  cfg.S3.Endpoint != "",
			HasAuth:     cfg.Auth.Configured(),
		},
	}

	c.JSON(http.StatusOK, resp)
}

// dbState 探测数据库连接，返回 "connected" 或 "disconnected".
func dbState(c *gin.Context) string {
	dbc := ctxPkg.GetDBClient(c.Request.Context())
	if dbc == nil || dbc.DB == nil {
		return "disconnected"
	}

	sqlDB, err := dbc.DB.DB()
	if err != nil {
		return "disconnected"
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return "disconnected"
	}

	return "connected"
}
