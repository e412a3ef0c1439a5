package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	ctxPkg "github.com/yeisme/studiovault/pkg/context"
	"github.com/yeisme/studiovault/pkg/internal/model"
	"github.com/yeisme/studiovault/pkg/internal/service"
	"github.com/yeisme/studiovault/pkg/internal/types"
	"github.com/yeisme/studiovault/pkg/metrics"
)

// seedVideoInCategory 直接写入一条指定分类的视频记录.
func seedVideoInCategory(t *testing.T, ctx context.Context, publicID, category string, uploadedAt time.Time) {
	t.Helper()

	video := model.Video{
		PublicID:   publicID,
		URL:        "http://example.com/" + publicID,
		Category:   category,
		UploadedAt: uploadedAt,
	}

	if err := ctxPkg.GetDBClient(ctx).Create(&video).Error; err != nil {
		t.Fatalf("seed video %s: %v", publicID, err)
	}
}

// seedVideo 直接写入一条视频记录.
func seedVideo(t *testing.T, ctx context.Context, publicID string, uploadedAt time.Time) {
	t.Helper()

	seedVideoInCategory(t, ctx, publicID, "showreel", uploadedAt)
}

// TestListVideosNewestFirst 测试视频列表按上传时间倒序.
func TestListVideosNewestFirst(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedVideo(t, ctx, "vid-old", now.Add(-time.Hour))
	seedVideo(t, ctx, "vid-new", now)

	videos, err := service.NewVideoService(ctx).List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(videos) != 2 {
		t.Fatalf("List() returned %d videos, want 2", len(videos))
	}

	if videos[0].PublicID != "vid-new" || videos[1].PublicID != "vid-old" {
		t.Errorf("order = [%s %s], want [vid-new vid-old]", videos[0].PublicID, videos[1].PublicID)
	}
}

// TestSaveVideoDuplicate 测试重复保存同一 public_id 不报错，标记为已存在.
func TestSaveVideoDuplicate(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewVideoService(ctx)

	req := &types.SaveVideoRequest{
		PublicID: "studio/videos/abc",
		URL:      "http://example.com/studio/videos/abc",
		Category: "showreel",
	}

	videos, already, err := svc.Save(ctx, req)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if already {
		t.Error("first Save() reported already saved")
	}

	if len(videos) != 1 {
		t.Fatalf("Save() returned %d videos, want 1", len(videos))
	}

	videos, already, err = svc.Save(ctx, req)
	if err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	if !already {
		t.Error("second Save() did not report already saved")
	}

	if len(videos) != 1 {
		t.Errorf("second Save() returned %d videos, want 1", len(videos))
	}
}

// TestSaveVideoReturnsCategoryList 测试保存响应只含该分类下的视频.
func TestSaveVideoReturnsCategoryList(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedVideoInCategory(t, ctx, "vid-other", "behindthescenes", now)

	videos, _, err := service.NewVideoService(ctx).Save(ctx, &types.SaveVideoRequest{
		PublicID: "studio/videos/new",
		URL:      "http://example.com/studio/videos/new",
		Category: "showreel",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if len(videos) != 1 || videos[0].PublicID != "studio/videos/new" {
		t.Errorf("Save() returned %v, want only the showreel video", videos)
	}
}

// TestUploadVideoStoresMetadata 测试代理上传成功路径：对象键落库、列表数量增加.
func TestUploadVideoStoresMetadata(t *testing.T) {
	srv := newObjectStoreStub(t)
	ctx := newTestContextWithS3(t, stubEndpoint(srv))

	fh := formFile(t, "showreel.MP4", []byte("fake video bytes"))

	video, err := service.NewVideoService(ctx).Upload(ctx, "showreel", fh)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if !strings.HasPrefix(video.PublicID, "studio/videos/") || !strings.HasSuffix(video.PublicID, ".mp4") {
		t.Errorf("video.PublicID = %s, want studio/videos/<uuid>.mp4", video.PublicID)
	}

	videos, err := service.NewVideoService(ctx).List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(videos) != 1 || videos[0].PublicID != video.PublicID {
		t.Errorf("List() = %v, want the uploaded video", videos)
	}
}

// TestUploadVideoCountsMetadataFailure 测试对象写入成功但元数据落库失败时计入错误.
func TestUploadVideoCountsMetadataFailure(t *testing.T) {
	srv := newObjectStoreStub(t)
	ctx := newTestContextWithS3(t, stubEndpoint(srv))

	// 删表制造落库失败
	if err := ctxPkg.GetDBClient(ctx).Migrator().DropTable(&model.Video{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	errCounter := metrics.MediaUploadCounter.WithLabelValues("video", "error")
	before := testutil.ToFloat64(errCounter)

	fh := formFile(t, "clip.mp4", []byte("fake video bytes"))

	if _, err := service.NewVideoService(ctx).Upload(ctx, "showreel", fh); err == nil {
		t.Fatal("Upload() error = nil, want metadata insert failure")
	}

	if after := testutil.ToFloat64(errCounter); after != before+1 {
		t.Errorf("error counter = %v, want %v", after, before+1)
	}
}

// TestUploadVideoRejectsOversize 测试超过大小上限的视频在落盘前被拒绝.
func TestUploadVideoRejectsOversize(t *testing.T) {
	ctx := newTestContext(t)

	fh := &multipart.FileHeader{
		Filename: "huge.mp4",
		Size:     101 * 1024 * 1024,
	}

	_, err := service.NewVideoService(ctx).Upload(ctx, "showreel", fh)
	if !errors.Is(err, service.ErrVideoTooLarge) {
		t.Errorf("Upload() error = %v, want ErrVideoTooLarge", err)
	}
}

// TestUploadVideoRejectsExtension 测试不在白名单内的扩展名被拒绝.
func TestUploadVideoRejectsExtension(t *testing.T) {
	ctx := newTestContext(t)

	fh := &multipart.FileHeader{
		Filename: "payload.exe",
		Size:     1024,
	}

	_, err := service.NewVideoService(ctx).Upload(ctx, "showreel", fh)
	if !errors.Is(err, service.ErrVideoExtension) {
		t.Errorf("Upload() error = %v, want ErrVideoExtension", err)
	}
}

// TestDeleteVideo 测试删除视频后列表不再包含该记录.
func TestDeleteVideo(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedVideo(t, ctx, "vid-a", now)
	seedVideo(t, ctx, "vid-b", now.Add(-time.Minute))

	videos, err := service.NewVideoService(ctx).Delete(ctx, "vid-a")
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(videos) != 1 || videos[0].PublicID != "vid-b" {
		t.Errorf("after delete got %v, want only vid-b", videos)
	}
}

// TestDeleteVideoIdempotent 测试删除不存在的视频不报错，照常返回列表.
func TestDeleteVideoIdempotent(t *testing.T) {
	ctx := newTestContext(t)
	now := time.Now().UTC()

	seedVideo(t, ctx, "vid-a", now)

	videos, err := service.NewVideoService(ctx).Delete(ctx, "no-such-video")
	if err != nil {
		t.Fatalf("Delete() error = %v, want nil", err)
	}

	if len(videos) != 1 || videos[0].PublicID != "vid-a" {
		t.Errorf("after delete got %v, want only vid-a", videos)
	}
}
