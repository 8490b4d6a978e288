package types

import "time"

// HistoryEntry 用户历史中的一条记录，附带游戏的摘要信息.
type HistoryEntry struct {
	GameID string `json:"game_id"`
	// Title 为空表示游戏已下架
	Title         string     `json:"title,omitempty"`
	ThumbnailURL  string     `json:"thumbnail_url,omitempty"`
	DownloadedAt  *time.Time `json:"downloaded_at,omitempty"`
	PlayedTrialAt *time.Time `json:"played_trial_at,omitempty"`
	LastAction    string     `json:"last_action"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// UserHistoryResponse 用户历史的三个分区，均按 updated_at 倒序.
// Downloaded 与 Trials 是 All 的子集，同一游戏可能同时出现在两个分区.
type UserHistoryResponse struct {
	All        []HistoryEntry `json:"all"`
	Downloaded []HistoryEntry `json:"downloaded"`
	Trials     []HistoryEntry `json:"trials"`
}
