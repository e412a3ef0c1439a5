package model

import (
	"time"
)

// Video 视频元数据模型，形状与 Image 相同但没有手工排序字段.
type Video struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PublicID string `gorm:"size:512;uniqueIndex" json:"public_id"`
	URL      string `gorm:"size:1024"            json:"url"`
	// 历史实现中这个字段在部分路由缺失；统一保留
	Category   string    `gorm:"size:128;index" json:"category"`
	UploadedAt time.Time `gorm:"index"          json:"uploadedAt"`
}

// TableName 指定表名.
func (Video) TableName() string {
	return "videos"
}
