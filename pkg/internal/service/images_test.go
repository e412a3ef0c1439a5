package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"gorm.io/gorm"

	"github.com/yeisme/studiovault/pkg/configs"
	ctxPkg "github.com/yeisme/studiovault/pkg/context"
	"github.com/yeisme/studiovault/pkg/internal/model"
	"github.com/yeisme/studiovault/pkg/internal/service"
	"github.com/yeisme/studiovault/pkg/internal/storage"
	dbc "github.com/yeisme/studiovault/pkg/internal/storage/db"
	s3c "github.com/yeisme/studiovault/pkg/internal/storage/s3"
	"github.com/yeisme/studiovault/pkg/internal/types"
)

// newTestContextWithS3 构建带内存数据库的测试上下文，S3 客户端指向给定端点.
func newTestContextWithS3(t *testing.T, endpoint string) context.Context {
	t.Helper()

	cfg := &configs.AppConfig{}
	cfg.S3 = configs.S3Config{
		Endpoint:   endpoint,
		BucketName: "studiovault-test",
		Region:     "us-east-1",
	}
	cfg.Media = configs.MediaConfig{
		ImageFolder:      "studio/images",
		VideoFolder:      "studio/videos",
		MaxImagesPerCall: 10,
		MaxVideoSizeMB:   100,
		VideoExtensions:  []string{"mp4", "mov", "avi", "webm", "ogg"},
	}
	configs.SetConfigForTest(cfg)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Image{}, &model.Video{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4("test", "test", ""),
	})
	if err != nil {
		t.Fatalf("create minio client: %v", err)
	}

	mgr := &storage.Manager{
		S3: &s3c.Client{Client: minioClient},
		DB: &dbc.Client{DB: gormDB},
	}

	return ctxPkg.WithStorageManager(context.Background(), mgr)
}

// newTestContext 构建 S3 不可达的测试上下文.
// 对象删除是尽力而为，失败只会记日志，因此纯数据库路径无需可用的对象存储.
func newTestContext(t *testing.T) context.Context {
	t.Helper()

	return newTestContextWithS3(t, "127.0.0.1:1")
}

// newObjectStoreStub 启动一个最小的对象存储桩：回答桶位置查询并接受 PUT.
func newObjectStoreStub(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Query().Has("location"):
			w.Header().Set("Content-Type", "application/xml")
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-east-1</LocationConstraint>`)
		case r.Method == http.MethodPut:
			_, _ = io.Copy(io.Discard, r.Body)
			w.Header().Set("ETag", `"stub-etag"`)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))

	t.Cleanup(srv.Close)

	return srv
}

// stubEndpoint 去掉 httptest 服务器 URL 的协议前缀.
func stubEndpoint(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "http://")
}

// formFile 构造带内容、可打开的 multipart 文件头.
func formFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}

	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(int64(len(content)) + 1024)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}

	return form.File["file"][0]
}

// seedImage 直接写入一条图片记录.
func seedImage(t *testing.T, ctx context.Context, publicID, category string, order int, uploadedAt time.Time) {
	t.Helper()

	img := model.Image{
		PublicID:   publicID,
		URL:        "http://example.com/" + publicID,
		Category:   category,
		Order:      order,
		UploadedAt: uploadedAt,
	}

	if err := ctxPkg.GetDBClient(ctx).Create(&img).Error; err != nil {
		t.Fatalf("seed image %s: %v", publicID, err)
	}
}

// TestListImagesEmptyCategory 测试空类别返回空切片而不是 nil，序列化结果是 [] 而非 null.
func TestListImagesEmptyCategory(t *testing.T) {
	ctx := newTestContext(t)

	images, err := service.NewImageService(ctx).List(ctx, "weddingphotos")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if images == nil {
		t.Fatal("List() returned nil slice, want empty slice")
	}

	if len(images) != 0 {
		t.Errorf("List() returned %d images, want 0", len(images))
	}
}

// TestListImagesOrdering 测试列表按排序值升序、同排序值按上传时间倒序.
func TestListImagesOrdering(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedImage(t, ctx, "img-c", "portfolio", 2, now)
	seedImage(t, ctx, "img-a", "portfolio", 0, now)
	seedImage(t, ctx, "img-b", "portfolio", 1, now)
	seedImage(t, ctx, "other", "weddingphotos", 0, now)

	images, err := service.NewImageService(ctx).List(ctx, "portfolio")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"img-a", "img-b", "img-c"}
	if len(images) != len(want) {
		t.Fatalf("List() returned %d images, want %d", len(images), len(want))
	}

	for i, publicID := range want {
		if images[i].PublicID != publicID {
			t.Errorf("images[%d].PublicID = %s, want %s", i, images[i].PublicID, publicID)
		}
	}
}

// TestUploadImages 测试上传成功路径：数量增加、对象键落库、
// 新图保持默认排序值 0，在未手工排序的分类里排在最前.
func TestUploadImages(t *testing.T) {
	srv := newObjectStoreStub(t)
	ctx := newTestContextWithS3(t, stubEndpoint(srv))
	now := time.Now().UTC()

	seedImage(t, ctx, "old-a", "portfolio", 0, now.Add(-time.Hour))
	seedImage(t, ctx, "old-b", "portfolio", 0, now.Add(-2*time.Hour))

	files := []*multipart.FileHeader{formFile(t, "shoot.JPG", []byte("fake image bytes"))}

	images, err := service.NewImageService(ctx).Upload(ctx, "portfolio", files)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if len(images) != 3 {
		t.Fatalf("Upload() returned %d images, want 3", len(images))
	}

	newest := images[0]
	if !strings.HasPrefix(newest.PublicID, "studio/images/") || !strings.HasSuffix(newest.PublicID, ".jpg") {
		t.Errorf("newest.PublicID = %s, want studio/images/<uuid>.jpg", newest.PublicID)
	}

	if newest.Order != 0 {
		t.Errorf("newest.Order = %d, want 0", newest.Order)
	}

	// 新图与旧图同为排序值 0，上传时间最新的排在最前
	if images[1].PublicID != "old-a" || images[2].PublicID != "old-b" {
		t.Errorf("tail = [%s %s], want [old-a old-b]", images[1].PublicID, images[2].PublicID)
	}

	// 对象键与落库的 public_id 一致
	var stored model.Image
	if err := ctxPkg.GetDBClient(ctx).Where("public_id = ?", newest.PublicID).First(&stored).Error; err != nil {
		t.Fatalf("lookup stored image: %v", err)
	}

	if stored.URL == "" {
		t.Error("stored.URL is empty")
	}
}

// TestUpdateOrderSkipsUnknown 测试未知 public_id 的排序更新静默跳过，已知记录正常更新.
func TestUpdateOrderSkipsUnknown(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedImage(t, ctx, "img-a", "portfolio", 0, now)
	seedImage(t, ctx, "img-b", "portfolio", 1, now)

	svc := service.NewImageService(ctx)

	err := svc.UpdateOrder(ctx, []types.ImageOrderItem{
		{PublicID: "img-a", Order: 1},
		{PublicID: "img-b", Order: 0},
		{PublicID: "no-such-image", Order: 5},
	})
	if err != nil {
		t.Fatalf("UpdateOrder() error = %v", err)
	}

	images, err := svc.List(ctx, "portfolio")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if images[0].PublicID != "img-b" || images[1].PublicID != "img-a" {
		t.Errorf("order after update = [%s %s], want [img-b img-a]", images[0].PublicID, images[1].PublicID)
	}
}

// TestDeleteImageCompactsOrder 测试删除后剩余图片的排序值压缩为连续序列.
func TestDeleteImageCompactsOrder(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedImage(t, ctx, "img-a", "portfolio", 0, now)
	seedImage(t, ctx, "img-b", "portfolio", 1, now)
	seedImage(t, ctx, "img-c", "portfolio", 2, now)

	images, err := service.NewImageService(ctx).Delete(ctx, "img-b", "portfolio")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(images) != 2 {
		t.Fatalf("Delete() returned %d images, want 2", len(images))
	}

	for i, img := range images {
		if img.Order != i {
			t.Errorf("images[%d].Order = %d, want %d", i, img.Order, i)
		}
	}

	if images[0].PublicID != "img-a" || images[1].PublicID != "img-c" {
		t.Errorf("remaining = [%s %s], want [img-a img-c]", images[0].PublicID, images[1].PublicID)
	}
}

// TestDeleteImageIdempotent 测试删除不存在的图片不报错，照常压实并返回列表.
func TestDeleteImageIdempotent(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedImage(t, ctx, "img-a", "portfolio", 0, now)
	seedImage(t, ctx, "img-b", "portfolio", 3, now)

	images, err := service.NewImageService(ctx).Delete(ctx, "no-such-image", "portfolio")
	if err != nil {
		t.Fatalf("Delete() error = %v, want nil", err)
	}

	if len(images) != 2 {
		t.Fatalf("Delete() returned %d images, want 2", len(images))
	}

	// 排序空洞也被压实
	if images[0].Order != 0 || images[1].Order != 1 {
		t.Errorf("orders = [%d %d], want [0 1]", images[0].Order, images[1].Order)
	}
}
