package model

import (
	"time"
)

// 用户历史的动作类型.
const (
	ActionDownload = "download"
	ActionTrial    = "play_trial"
)

// UserGameHistory 记录用户与游戏的最近一次交互.
// (user_id, game_id) 唯一，重复动作做 upsert 只刷新时间戳.
type UserGameHistory struct {
	ID     uint   `gorm:"primaryKey"                               json:"id"`
	UserID string `gorm:"size:255;index:idx_user_game,unique;index" json:"user_id"`
	GameID string `gorm:"size:36;index:idx_user_game,unique;index"  json:"game_id"`
	// DownloadedAt 最近一次获取下载链接的时间，未下载过为 NULL
	DownloadedAt *time.Time `json:"downloaded_at"`
	// PlayedTrialAt 最近一次启动试玩的时间，未试玩过为 NULL
	PlayedTrialAt *time.Time `json:"played_trial_at"`
	// LastAction 最近动作，download 或 play_trial
	LastAction string    `gorm:"size:32" json:"last_action"`
	CreatedAt  time.Time `json:"created_at"`
	// UpdatedAt 作为历史列表的排序键
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}
