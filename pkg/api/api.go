// Package api 定义 HTTP 服务对外暴露的接口，负责把路由组挂载到 gin 引擎.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/internal/router"
)

// RegisterGroup 将 /api 路由组注册到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	router.RegisterAPIRoutes(e.Group("/api"))
	router.RegisterSwaggerRoute(e)

	return e
}
