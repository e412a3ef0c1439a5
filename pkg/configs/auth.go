package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultTokenTTL 令牌默认有效期.
	DefaultTokenTTL = time.Hour
)

// AuthConfig 单一管理员的认证配置.
// AdminPasswordHash 必须是 bcrypt 哈希；存明文会导致所有登录失败（配置错误，而非运行时可恢复错误）.
type AuthConfig struct {
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
}

// Configured 判断认证所需的配置是否齐全.
func (c *AuthConfig) Configured() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != "" && c.JWTSecret != ""
}

// setDefaults 设置认证配置的默认值.
func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.admin_username", "")
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
}
