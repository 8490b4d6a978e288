package types

// DownloadResponse 预签名下载链接响应.
type DownloadResponse struct {
	GameID string `json:"game_id"`
	// URL 预签名 GET 链接
	URL string `json:"url"`
	// ExpiresIn 链接有效期（秒）
	ExpiresIn int    `json:"expires_in"`
	FileName  string `json:"file_name,omitempty"`
}

// TrialResponse 试玩响应.
type TrialResponse struct {
	GameID   string `json:"game_id"`
	TrialURL string `json:"trial_url"`
}
