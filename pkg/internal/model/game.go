// Package model 定义数据库模型.
package model

import (
	"time"
)

// Game 游戏目录条目.
//
// 资产以对象键的形式引用两个 bucket：FileKey 指向私有的游戏文件 bucket，
// ThumbnailKey 指向公共读的缩略图 bucket. 两者都可以为空（未上传资产的占位条目）.
type Game struct {
	// ID 为 UUID 字符串，创建时生成
	ID          string `gorm:"primaryKey;size:36"    json:"id"`
	Title       string `gorm:"size:512;not null;index" json:"title"`
	Description string `gorm:"type:text"             json:"description"`
	Genre       string `gorm:"size:128;index"        json:"genre"`
	// ThumbnailKey 缩略图对象键（公共读 bucket）
	ThumbnailKey string `gorm:"size:1024" json:"thumbnail_key"`
	// FileKey 游戏文件对象键（私有 bucket，仅预签名下载）
	FileKey  string `gorm:"size:1024" json:"file_key"`
	FileSize int64  `json:"file_size"`
	// TrialURL 外部试玩地址，为空表示不提供试玩
	TrialURL string `gorm:"size:1024" json:"trial_url"`
	// DownloadCount 下载链接签发次数；读改写更新，并发下可能丢失增量
	DownloadCount int64     `gorm:"index;default:0" json:"download_count"`
	CreatedAt     time.Time `gorm:"index"           json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
