package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/internal/service"
	"github.com/yeisme/studiovault/pkg/internal/types"
)

// Login 管理员登录，成功返回有限期的 Bearer 令牌.
// 用户名错误和密码错误返回完全相同的 401 响应体.
//
//	@Summary		管理员登录
//	@Description	校验管理员用户名与密码，签发 JWT 令牌
//	@Tags			认证
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		types.LoginRequest	true	"登录凭据"
//	@Success		200			{object}	types.LoginResponse	"令牌响应"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Failure		401			{object}	map[string]string	"凭据无效"
//	@Router			/api/auth/login [post]
func Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})

		return
	}

	token, err := service.NewAuthService().Login(req.Username, req.Password)
	if err != nil {
		requestLogger(c).Warn().Str("username", req.Username).Msg("login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})

		return
	}

	c.JSON(http.StatusOK, types.LoginResponse{Token: token})
}
