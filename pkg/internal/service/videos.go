package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/yeisme/studiovault/pkg/configs"
	ctxPkg "github.com/yeisme/studiovault/pkg/context"
	"github.com/yeisme/studiovault/pkg/internal/model"
	"github.com/yeisme/studiovault/pkg/internal/storage/db"
	"github.com/yeisme/studiovault/pkg/internal/storage/s3"
	"github.com/yeisme/studiovault/pkg/internal/types"
	nlog "github.com/yeisme/studiovault/pkg/log"
	"github.com/yeisme/studiovault/pkg/metrics"
)

// ErrVideoTooLarge 视频超过配置的大小上限.
var ErrVideoTooLarge = errors.New("video exceeds size limit")

// ErrVideoExtension 视频扩展名不在允许列表内.
var ErrVideoExtension = errors.New("video extension not allowed")

// VideoService 负责视频相关业务逻辑，包括代理上传与直传两条链路.
type VideoService struct {
	s3Client *s3.Client
	dbClient *db.Client
}

// NewVideoService 从 context 获取依赖实例.
func NewVideoService(c context.Context) *VideoService {
	s3c := ctxPkg.GetS3Client(c)
	dbc := ctxPkg.GetDBClient(c)

	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &VideoService{
		s3Client: s3c,
		dbClient: dbc,
	}
}

// List 返回全部视频，按上传时间倒序.
func (vs *VideoService) List(ctx context.Context) ([]model.Video, error) {
	videos := make([]model.Video, 0)

	err := vs.dbClient.WithContext(ctx).
		Order("uploaded_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	return videos, nil
}

// Upload 校验大小与扩展名后将视频写入对象存储并登记元数据.
func (vs *VideoService) Upload(ctx context.Context, category string, fh *multipart.FileHeader) (*model.Video, error) {
	mediaCfg := configs.GetConfig().Media

	if fh.Size > mediaCfg.MaxVideoSizeBytes() {
		return nil, ErrVideoTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	if !mediaCfg.AllowedVideoExtension(ext) {
		return nil, ErrVideoExtension
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer func() { _ = src.Close() }()

	objectKey := buildObjectKey(mediaCfg.VideoFolder, fh.Filename)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/" + ext
	}

	_, err = vs.s3Client.PutObject(ctx, vs.s3Client.Bucket(), objectKey, src, fh.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		metrics.MediaUploadCounter.WithLabelValues("video", "error").Inc()

		return nil, fmt.Errorf("put object %q: %w", objectKey, err)
	}

	video := model.Video{
		PublicID:   objectKey,
		URL:        vs.s3Client.PublicObjectURL(objectKey),
		Category:   category,
		UploadedAt: time.Now().UTC(),
	}

	if err := vs.dbClient.WithContext(ctx).Create(&video).Error; err != nil {
		metrics.MediaUploadCounter.WithLabelValues("video", "error").Inc()

		return nil, fmt.Errorf("create video record: %w", err)
	}

	metrics.MediaUploadCounter.WithLabelValues("video", "success").Inc()

	nlog.Logger().Info().Str("public_id", video.PublicID).Msg("video uploaded")

	return &video, nil
}

// SignUpload 为客户端直传签名。参与签名的参数与客户端实际上传参数必须一致.
func (vs *VideoService) SignUpload(req *types.SignUploadRequest) *types.SignUploadResponse {
	mediaCfg := configs.GetConfig().Media

	folder := req.Folder
	if folder == "" {
		folder = mediaCfg.VideoFolder
	}

	params := map[string]string{
		"api_key":       mediaCfg.APIKey,
		"folder":        folder,
		"resource_type": "video",
		"timestamp":     strconv.FormatInt(req.Timestamp, 10),
	}

	return &types.SignUploadResponse{
		Signature: UploadSignature(params, mediaCfg.APISecret),
		Timestamp: req.Timestamp,
		CloudName: mediaCfg.CloudName,
		APIKey:    mediaCfg.APIKey,
		Folder:    folder,
	}
}

// Save 登记一条直传完成的视频元数据。public_id 已存在视为重复提交，
// 不报错，返回 already=true。返回的列表只含该分类下的视频.
func (vs *VideoService) Save(ctx context.Context, req *types.SaveVideoRequest) (videos []model.Video, already bool, err error) {
	video := model.Video{
		PublicID:   req.PublicID,
		URL:        req.URL,
		Category:   req.Category,
		UploadedAt: time.Now().UTC(),
	}

	if err := vs.dbClient.WithContext(ctx).Create(&video).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, fmt.Errorf("create video record: %w", err)
		}

		already = true
	}

	videos, err = vs.listByCategory(ctx, req.Category)

	return videos, already, err
}

// listByCategory 返回指定分类下的视频，按上传时间倒序.
func (vs *VideoService) listByCategory(ctx context.Context, category string) ([]model.Video, error) {
	videos := make([]model.Video, 0)

	err := vs.dbClient.WithContext(ctx).
		Where("category = ?", category).
		Order("uploaded_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("list videos by category: %w", err)
	}

	return videos, nil
}

// Delete 删除视频记录并尽力删除对象，返回删除后的列表.
// 删除是幂等的，public_id 不存在时照常返回列表.
// 直传的视频对象不在本地桶里，对象删除失败只记录日志.
func (vs *VideoService) Delete(ctx context.Context, publicID string) ([]model.Video, error) {
	res := vs.dbClient.WithContext(ctx).
		Where("public_id = ?", publicID).
		Delete(&model.Video{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete video record: %w", res.Error)
	}

	if err := vs.s3Client.RemoveObject(ctx, vs.s3Client.Bucket(), publicID, minio.RemoveObjectOptions{}); err != nil {
		nlog.Logger().Warn().Err(err).Str("public_id", publicID).Msg("remove video object failed")
	}

	return vs.List(ctx)
}
