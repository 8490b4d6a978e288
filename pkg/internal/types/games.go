// Package types 定义请求与响应的数据结构.
package types

import (
	"io"
	"time"
)

// AssetUpload 描述一个待上传的资产（来自 multipart 表单）.
type AssetUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CreateGameRequest 创建游戏请求（multipart 表单的元数据部分）.
type CreateGameRequest struct {
	Title       string `form:"title"       rule:"required,max=512"`
	Description string `form:"description" rule:"max=10000"`
	Genre       string `form:"genre"       rule:"max=128"`
	TrialURL    string `form:"trial_url"   rule:"omitempty,url"`
}

// UpdateGameRequest 更新游戏请求；nil 字段表示不修改.
type UpdateGameRequest struct {
	Title       *string `form:"title"       rule:"omitempty,max=512"`
	Description *string `form:"description" rule:"omitempty,max=10000"`
	Genre       *string `form:"genre"       rule:"omitempty,max=128"`
	TrialURL    *string `form:"trial_url"   rule:"omitempty,url"`
}

// GameDetail 游戏详情响应.
type GameDetail struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Genre         string    `json:"genre"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty"`
	HasFile       bool      `json:"has_file"`
	FileSize      int64     `json:"file_size,omitempty"`
	HasTrial      bool      `json:"has_trial"`
	DownloadCount int64     `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrphanedAssetInfo 删除游戏时未能回收的资产.
type OrphanedAssetInfo struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
	Error     string `json:"error"`
}

// DeleteGameResponse 删除游戏的两段式结果：目录行删除总是先行生效，
// 存储资产删除失败时进入孤儿队列由后台任务回收.
type DeleteGameResponse struct {
	ID string `json:"id"`
	// Deleted 目录行是否已删除
	Deleted bool `json:"deleted"`
	// OrphanedAssets 非空表示部分资产遗留，等待后台回收
	OrphanedAssets []OrphanedAssetInfo `json:"orphaned_assets,omitempty"`
}
