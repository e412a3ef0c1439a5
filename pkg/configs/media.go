package configs

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultImageFolder      = "studio/images" // 图片对象键前缀
	DefaultVideoFolder      = "studio/videos" // 视频对象键前缀
	DefaultMaxImagesPerCall = 10              // 单次上传的图片数量上限
	DefaultMaxVideoSizeMB   = 100             // 代理上传的视频大小上限 (MB)
)

// DefaultVideoExtensions 允许的服务端代理上传视频扩展名.
var DefaultVideoExtensions = []string{"mp4", "mov", "avi", "webm", "ogg"}

// MediaConfig 媒体上传与直传签名配置.
// CloudName/APIKey/APISecret 是直传签名的提供方凭据；签名串是提供方的线格式，
// 必须与客户端直传时携带的参数逐字节一致.
type MediaConfig struct {
	CloudName        string   `mapstructure:"cloud_name"`
	APIKey           string   `mapstructure:"api_key"`
	APISecret        string   `mapstructure:"api_secret"`
	ImageFolder      string   `mapstructure:"image_folder"`
	VideoFolder      string   `mapstructure:"video_folder"`
	MaxImagesPerCall int      `mapstructure:"max_images_per_call" rule:"min=1"`
	MaxVideoSizeMB   int64    `mapstructure:"max_video_size_mb"   rule:"min=1"`
	VideoExtensions  []string `mapstructure:"video_extensions"`
}

// MaxVideoSizeBytes 返回视频大小上限（字节）.
func (c *MediaConfig) MaxVideoSizeBytes() int64 {
	return c.MaxVideoSizeMB * 1024 * 1024
}

// AllowedVideoExtension 判断扩展名（不带点，大小写不敏感）是否在允许列表内.
func (c *MediaConfig) AllowedVideoExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range c.VideoExtensions {
		if ext == allowed {
			return true
		}
	}

	return false
}

// setDefaults 设置媒体配置的默认值.
func (c *MediaConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("media.cloud_name", "")
	v.SetDefault("media.api_key", "")
	v.SetDefault("media.api_secret", "")
	v.SetDefault("media.image_folder", DefaultImageFolder)
	v.SetDefault("media.video_folder", DefaultVideoFolder)
	v.SetDefault("media.max_images_per_call", DefaultMaxImagesPerCall)
	v.SetDefault("media.max_video_size_mb", DefaultMaxVideoSizeMB)
	v.SetDefault("media.video_extensions", DefaultVideoExtensions)
}
