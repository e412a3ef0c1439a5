// Package handle 提供请求处理器的实现，负责 HTTP 细节与业务服务的衔接.
package handle

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/studiovault/pkg/log"
	"github.com/yeisme/studiovault/pkg/rule"
)

// requestLogger 带请求路径字段的 logger.
func requestLogger(c *gin.Context) *zerolog.Logger {
	l := log.Logger().With().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Logger()

	return &l
}

// requireCategory 校验分类参数非空.
func requireCategory(category string) error {
	return rule.ValidateVar(category, "required")
}
