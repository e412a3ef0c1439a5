package types

import "github.com/yeisme/studiovault/pkg/internal/model"

// ListVideosResponse 列出全部视频的响应.
type ListVideosResponse struct {
	Success bool          `json:"success"`
	Count   int           `json:"count"`
	Videos  []model.Video `json:"videos"`
}

// UploadVideoResponse 视频上传（服务端代理）响应.
type UploadVideoResponse struct {
	Message string        `json:"message"`
	Videos  []model.Video `json:"videos"`
}

// SignUploadRequest 直传签名请求. Folder 为空时使用配置的视频目录.
type SignUploadRequest struct {
	Timestamp int64  `binding:"required" json:"timestamp"`
	Folder    string `json:"folder"`
}

// SignUploadResponse 直传签名响应，客户端携带这些参数把字节直接传给存储提供方.
type SignUploadResponse struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
}

// SaveVideoRequest 直传完成后保存元数据的请求.
type SaveVideoRequest struct {
	PublicID string `binding:"required" json:"public_id"`
	URL      string `binding:"required" json:"url"`
	Category string `binding:"required" json:"category"`
}

// SaveVideoResponse 保存元数据的响应.
type SaveVideoResponse struct {
	Message string        `json:"message"`
	Success bool          `json:"success"`
	Videos  []model.Video `json:"videos"`
}

// DeleteVideoRequest 删除视频请求.
type DeleteVideoRequest struct {
	PublicID string `binding:"required" json:"public_id"`
}

// DeleteVideoResponse 删除视频响应.
type DeleteVideoResponse struct {
	Message string        `json:"message"`
	Success bool          `json:"success"`
	Videos  []model.Video `json:"videos"`
}
