package types

import "github.com/yeisme/studiovault/pkg/internal/model"

// ListImagesResponse 按类别列出图片的响应.
type ListImagesResponse struct {
	Success  bool          `json:"success"`
	Category string        `json:"category"`
	Count    int           `json:"count"`
	Images   []model.Image `json:"images"`
}

// UploadImagesResponse 上传图片后的响应，返回该类别的完整列表，客户端无需合并局部状态.
type UploadImagesResponse struct {
	Message string        `json:"message"`
	Images  []model.Image `json:"images"`
}

// ImageOrderItem 单条排序更新.
type ImageOrderItem struct {
	PublicID string `binding:"required" json:"public_id"`
	Order    int    `json:"order"`
}

// UpdateImageOrderRequest 批量排序更新请求.
type UpdateImageOrderRequest struct {
	Images []ImageOrderItem `binding:"required" json:"images"`
}

// UpdateImageOrderResponse 排序更新响应.
type UpdateImageOrderResponse struct {
	Message string `json:"message"`
}

// DeleteImageRequest 删除图片请求.
type DeleteImageRequest struct {
	PublicID string `binding:"required" json:"public_id"`
	Category string `binding:"required" json:"category"`
}

// DeleteImageResponse 删除后的响应，携带压缩排序后的最终列表.
type DeleteImageResponse struct {
	Message string        `json:"message"`
	Images  []model.Image `json:"images"`
}
