package handle

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/configs"
	"github.com/yeisme/studiovault/pkg/internal/service"
	"github.com/yeisme/studiovault/pkg/internal/types"
)

// ListVideos 查询全部视频，按上传时间倒序.
//
//	@Summary		查询视频列表
//	@Description	返回全部视频元数据，最新上传的排在前面
//	@Tags			视频
//	@Produce		json
//	@Success		200	{object}	types.ListVideosResponse	"视频列表"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/videos [get]
func ListVideos(c *gin.Context) {
	videos, err := service.NewVideoService(c.Request.Context()).List(c.Request.Context())
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("list videos failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})

		return
	}

	c.JSON(http.StatusOK, types.ListVideosResponse{
		Success: true,
		Count:   len(videos),
		Videos:  videos,
	})
}

// UploadVideo 代理上传单个视频文件.
//
//	@Summary		上传视频
//	@Description	multipart 表单上传单个视频，校验大小上限与扩展名白名单
//	@Tags			视频
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			category	formData	string						false	"分类名"
//	@Param			video		formData	file						true	"视频文件"
//	@Success		200			{object}	types.UploadVideoResponse	"上传结果"
//	@Failure		400			{object}	map[string]string			"文件缺失、过大或类型不允许"
//	@Failure		500			{object}	map[string]string			"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/videos [post]
func UploadVideo(c *gin.Context) {
	fh, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No video file provided"})

		return
	}

	category := c.PostForm("category")

	svc := service.NewVideoService(c.Request.Context())

	_, err = svc.Upload(c.Request.Context(), category, fh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoTooLarge):
			maxMB := configs.GetConfig().Media.MaxVideoSizeMB
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Video exceeds the %dMB size limit", maxMB),
			})
		case errors.Is(err, service.ErrVideoExtension):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Video format not allowed"})
		default:
			requestLogger(c).Error().Err(err).Msg("upload video failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload video"})
		}

		return
	}

	videos, err := svc.List(c.Request.Context())
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("list videos after upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})

		return
	}

	c.JSON(http.StatusOK, types.UploadVideoResponse{
		Message: "Video uploaded successfully",
		Videos:  videos,
	})
}

// SignVideoUpload 为客户端直传生成签名.
//
//	@Summary		获取直传签名
//	@Description	对时间戳与目标目录等参数签名，客户端凭签名直接上传视频
//	@Tags			视频
//	@Accept			json
//	@Produce		json
//	@Param			params	body		types.SignUploadRequest		true	"签名请求参数"
//	@Success		200		{object}	types.SignUploadResponse	"签名与上传凭据"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Security		BearerAuth
//	@Router			/api/videos/signature [post]
func SignVideoUpload(c *gin.Context) {
	var req types.SignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Timestamp is required"})

		return
	}

	c.JSON(http.StatusOK, service.NewVideoService(c.Request.Context()).SignUpload(&req))
}

// SaveVideo 登记直传完成的视频元数据.
//
//	@Summary		保存直传视频记录
//	@Description	客户端直传完成后回写元数据，重复提交不报错
//	@Tags			视频
//	@Accept			json
//	@Produce		json
//	@Param			video	body		types.SaveVideoRequest	true	"视频元数据"
//	@Success		200		{object}	types.SaveVideoResponse	"保存后的视频列表"
//	@Failure		400		{object}	map[string]string		"请求参数错误"
//	@Failure		500		{object}	map[string]string		"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/videos/save [post]
func SaveVideo(c *gin.Context) {
	var req types.SaveVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Public ID, URL and category are required"})

		return
	}

	videos, already, err := service.NewVideoService(c.Request.Context()).Save(c.Request.Context(), &req)
	if err != nil {
		requestLogger(c).Error().Err(err).Msg("save video failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save video"})

		return
	}

	message := "Video saved successfully"
	if already {
		message = "Video already saved"
	}

	c.JSON(http.StatusOK, types.SaveVideoResponse{
		Message: message,
		Success: true,
		Videos:  videos,
	})
}

// DeleteVideo 删除视频记录并尽力删除对象.
//
//	@Summary		删除视频
//	@Description	删除指定视频的元数据，对象删除失败不影响结果
//	@Tags			视频
//	@Accept			json
//	@Produce		json
//	@Param			target	body		types.DeleteVideoRequest	true	"删除请求"
//	@Success		200		{object}	types.DeleteVideoResponse	"删除后的视频列表"
//	@Failure		400		{object}	map[string]string			"请求参数错误"
//	@Failure		500		{object}	map[string]string			"服务器内部错误"
//	@Security		BearerAuth
//	@Router			/api/videos [delete]
func DeleteVideo(c *gin.Context) {
	var req types.DeleteVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Public ID is required"})

		return
	}

	videos, err := service.NewVideoService(c.Request.Context()).Delete(c.Request.Context(), req.PublicID)
	if err != nil {
		requestLogger(c).Error().Err(err).Str("public_id", req.PublicID).Msg("delete video failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})

		return
	}

	c.JSON(http.StatusOK, types.DeleteVideoResponse{
		Message: "Video deleted successfully",
		Success: true,
		Videos:  videos,
	})
}
