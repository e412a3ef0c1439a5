package handle

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/configs"
	"github.com/yeisme/studiovault/pkg/internal/service"
	"github.com/yeisme/studiovault/pkg/internal/types"
)

// ListImages 按分类查询图片列表，按排序值升序返回.
//
//	@Summary		查询分类下的图片
//	@Description	返回指定分类的全部图片，按展示顺序排列
//	@Tags			图片
//	@Produce		json
//	@Param			category	query		string						true	"分类名"
//	@Success		200			{object}	types.ListImagesResponse	"图片列表"
//	@Failure		400			{object}	map[string]string			"缺少分类参数"
//	@Failure		500			{object}	map[string]string			"服务器内部错误"
//	@Router			/api/images [get]
func ListImages(c *gin.Context) {
	category := c.Query("category")
	if err := requireCategory(category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})

		return
	}

	images, err := service.NewImageService(c.Request.Context()).List(c.Request.Context(), category)
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("list images failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})

		return
	}

	c.JSON(http.StatusOK, types.ListImagesResponse{
		Success:  true,
		Category: category,
		Count:    len(images),
		Images:   images,
	})
}

// UploadImages 批量上传图片到指定分类.
//
//	@Summary		上传图片
//	@Description	multipart 表单上传若干图片文件，新图追加到分类末尾
//	@Tags			图片
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			category	formData	string						true	"分类名"
//	@Param			images		formData	file						true	"图片文件，可多个"
//	@Success		200			{object}	types.UploadImagesResponse	"上传后的分类列表"
//	@Failure		400			{object}	map[string]string			"请求参数错误"
//	@Failure		500			{object}	map[string]string			"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/images [post]
func UploadImages(c *gin.Context) {
	category := c.PostForm("category")
	if err := requireCategory(category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})

		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})

		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})

		return
	}

	maxPerCall := configs.GetConfig().Media.MaxImagesPerCall
	if len(files) > maxPerCall {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("At most %d images per upload", maxPerCall),
		})

		return
	}

	images, err := service.NewImageService(c.Request.Context()).Upload(c.Request.Context(), category, files)
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("upload images failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload images"})

		return
	}

	c.JSON(http.StatusOK, types.UploadImagesResponse{
		Message: "Images uploaded successfully",
		Images:  images,
	})
}

// UpdateImageOrder 批量更新图片排序值.
//
//	@Summary		更新图片顺序
//	@Description	按请求逐条写入排序值，未知 public_id 静默跳过
//	@Tags			图片
//	@Accept			json
//	@Produce		json
//	@Param			order	body		types.UpdateImageOrderRequest	true	"排序更新请求"
//	@Success		200		{object}	types.UpdateImageOrderResponse	"更新结果"
//	@Failure		400		{object}	map[string]string				"请求参数错误"
//	@Failure		500		{object}	map[string]string				"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/images [put]
func UpdateImageOrder(c *gin.Context) {
	var req types.UpdateImageOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Images array is required"})

		return
	}

	err := service.NewImageService(c.Request.Context()).UpdateOrder(c.Request.Context(), req.Images)
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("update image order failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image order"})

		return
	}

	c.JSON(http.StatusOK, types.UpdateImageOrderResponse{Message: "Image order updated successfully"})
}

// DeleteImage 删除图片并压实分类内的排序值.
//
//	@Summary		删除图片
//	@Description	删除指定图片，剩余图片的排序值重写为连续序列
//	@Tags			图片
//	@Accept			json
//	@Produce		json
//	@Param			target	body		types.DeleteImageRequest	true	"删除请求"
//	@Success		200		{object}	types.DeleteImageResponse	"删除后的分类列表"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Failure		500		{object}	map[string]string			"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/images [delete]
func DeleteImage(c *gin.Context) {
	var req types.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Public ID and category are required"})

		return
	}

	images, err := service.NewImageService(c.Request.Context()).Delete(c.Request.Context(), req.PublicID, req.Category)
	if err != nil {
		requestLogger(c).Error().Err(err).Str("public_id", req.PublicID).Msg("delete image failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})

		return
	}

	c.JSON(http.StatusOK, types.DeleteImageResponse{
		Message: "Image deleted successfully",
		Images:  images,
	})
}
