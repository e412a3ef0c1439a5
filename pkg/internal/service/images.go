package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/yeisme/studiovault/pkg/configs"
	ctxPkg "github.com/yeisme/studiovault/pkg/context"
	"github.com/yeisme/studiovault/pkg/internal/model"
	"github.com/yeisme/studiovault/pkg/internal/storage/db"
	"github.com/yeisme/studiovault/pkg/internal/storage/s3"
	"github.com/yeisme/studiovault/pkg/internal/types"
	nlog "github.com/yeisme/studiovault/pkg/log"
	"github.com/yeisme/studiovault/pkg/metrics"
)

// ImageService 负责图片相关业务逻辑（对象存储、元数据、排序维护），不处理 HTTP 细节.
type ImageService struct {
	s3Client *s3.Client
	dbClient *db.Client
}

// NewImageService 从 context 获取依赖实例.
func NewImageService(c context.Context) *ImageService {
	s3c := ctxPkg.GetS3Client(c)
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &ImageService{
		s3Client: s3c,
		dbClient: dbc,
	}
}

// List 返回指定分类下的全部图片，按 display_order 升序、同序号按上传时间倒序.
func (is *ImageService) List(ctx context.Context, category string) ([]model.Image, error) {
	// 注意：空结果必须序列化为 []，因此切片不能保持 nil
	images := make([]model.Image, 0)

	err := is.dbClient.WithContext(ctx).
		Where("category = ?", category).
		Order("display_order ASC, uploaded_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	return images, nil
}

// Upload 将若干图片写入对象存储并登记元数据.
// 新图的排序值保持默认 0，在未手工排序的分类里按上传时间排在最前；
// 排序值只在手工调整和删除后的压实中变化.
// 单个文件失败即整体返回错误，已写入的对象不回滚.
func (is *ImageService) Upload(ctx context.Context, category string, files []*multipart.FileHeader) ([]model.Image, error) {
	for _, fh := range files {
		img, err := is.uploadOne(ctx, category, fh)
		if err != nil {
			metrics.MediaUploadCounter.WithLabelValues("image", "error").Inc()
			return nil, err
		}

		metrics.MediaUploadCounter.WithLabelValues("image", "success").Inc()

		nlog.Logger().Info().
			Str("public_id", img.PublicID).
			Str("category", category).
			Msg("image uploaded")
	}

	return is.List(ctx, category)
}

// uploadOne 上传单个文件并写入一条记录.
func (is *ImageService) uploadOne(ctx context.Context, category string, fh *multipart.FileHeader) (*model.Image, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer func() { _ = src.Close() }()

	objectKey := buildObjectKey(configs.GetConfig().Media.ImageFolder, fh.Filename)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = is.s3Client.PutObject(ctx, is.s3Client.Bucket(), objectKey, src, fh.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", objectKey, err)
	}

	img := model.Image{
		PublicID:   objectKey,
		URL:        is.s3Client.PublicObjectURL(objectKey),
		Category:   category,
		UploadedAt: time.Now().UTC(),
	}

	if err := is.dbClient.WithContext(ctx).Create(&img).Error; err != nil {
		return nil, fmt.Errorf("create image record: %w", err)
	}

	return &img, nil
}

// UpdateOrder 按请求逐条更新排序值。public_id 不存在时该条静默跳过，
// 前面已生效的更新不回滚.
func (is *ImageService) UpdateOrder(ctx context.Context, items []types.ImageOrderItem) error {
	for _, item := range items {
		err := is.dbClient.WithContext(ctx).
			Model(&model.Image{}).
			Where("public_id = ?", item.PublicID).
			Update("display_order", item.Order).Error
		if err != nil {
			return fmt.Errorf("update order for %q: %w", item.PublicID, err)
		}
	}

	return nil
}

// Delete 删除一条图片记录及其对象，然后压实该分类的排序值，
// 返回删除后的分类列表。删除是幂等的，public_id 不存在时照常压实并返回列表.
func (is *ImageService) Delete(ctx context.Context, publicID, category string) ([]model.Image, error) {
	res := is.dbClient.WithContext(ctx).
		Where("public_id = ? AND category = ?", publicID, category).
		Delete(&model.Image{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete image record: %w", res.Error)
	}

	// 对象删除失败只记录日志，元数据已删，排序压实照常进行
	if err := is.s3Client.RemoveObject(ctx, is.s3Client.Bucket(), publicID, minio.RemoveObjectOptions{}); err != nil {
		nlog.Logger().Warn().Err(err).Str("public_id", publicID).Msg("remove image object failed")
	}

	if err := is.compactOrder(ctx, category); err != nil {
		return nil, err
	}

	return is.List(ctx, category)
}

// compactOrder 把分类内的排序值重写为连续的 0..N-1，消除删除留下的空洞.
func (is *ImageService) compactOrder(ctx context.Context, category string) error {
	var images []model.Image

	err := is.dbClient.WithContext(ctx).
		Where("category = ?", category).
		Order("display_order ASC, uploaded_at DESC").
		Find(&images).Error
	if err != nil {
		return fmt.Errorf("load images for compaction: %w", err)
	}

	for i, img := range images {
		if img.Order == i {
			continue
		}

		err := is.dbClient.WithContext(ctx).
			Model(&model.Image{}).
			Where("id = ?", img.ID).
			Update("display_order", i).Error
		if err != nil {
			return fmt.Errorf("compact order for %q: %w", img.PublicID, err)
		}
	}

	return nil
}

// buildObjectKey 生成对象键：<folder>/<uuid><ext>，扩展名统一小写.
func buildObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	return folder + "/" + uuid.NewString() + ext
}
