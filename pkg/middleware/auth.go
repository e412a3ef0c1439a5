package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/studiovault/pkg/context"
	"github.com/yeisme/studiovault/pkg/internal/service"
)

// AuthMiddleware 校验 Bearer 令牌的认证中间件。
//   - 缺少或格式错误的 Authorization 头返回 401 "No token provided"
//   - 令牌无效或过期返回 401 "Invalid or expired token"
//   - 校验通过后把管理员用户名注入请求 context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})

			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := service.NewAuthService().VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})

			return
		}

		ctx := ctxPkg.WithAdminUser(c.Request.Context(), claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
