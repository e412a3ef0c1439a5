package types

// LoginRequest 管理员登录请求.
type LoginRequest struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

// LoginResponse 登录成功响应.
type LoginResponse struct {
	Token string `json:"token"`
}
