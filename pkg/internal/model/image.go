package model

import (
	"time"
)

// Image 图片元数据模型. PublicID 是对象存储分配的键，也是对外的主键.
type Image struct {
	ID uint `gorm:"primaryKey" json:"-"`
	// 对象存储键，全局唯一
	PublicID string `gorm:"size:512;uniqueIndex" json:"public_id"`
	URL      string `gorm:"size:1024"            json:"url"`
	// 自由文本分区键（如 "weddingphotos"），不是外键
	Category string `gorm:"size:128;index" json:"category"`
	// 类别内的手工展示顺序；仅在删除触发的压缩后保证连续
	Order      int       `gorm:"column:display_order;default:0;index" json:"order"`
	UploadedAt time.Time `gorm:"index"                                json:"uploadedAt"`
}

// TableName 指定表名.
func (Image) TableName() string {
	return "images"
}
