package model

import (
	"time"
)

// OrphanAsset 记录删除游戏时未能从对象存储移除的资产.
// 后台任务定期重试回收，成功后删除该行.
type OrphanAsset struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// GameID 资产曾属于的游戏（行已删除，仅作追溯）
	GameID    string `gorm:"size:36;index"                             json:"game_id"`
	Bucket    string `gorm:"size:255;index:idx_bucket_key,unique" json:"bucket"`
	ObjectKey string `gorm:"size:512;index:idx_bucket_key,unique" json:"object_key"`
	// LastError 最近一次删除失败的原因
	LastError string `gorm:"type:text" json:"last_error"`
	// Attempts 已重试次数
	Attempts    int        `json:"attempts"`
	LastTriedAt *time.Time `json:"last_tried_at"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
}
