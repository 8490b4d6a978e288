package service

import (
	"context"
	"fmt"

	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
)

// UserHistory 返回用户的交互历史，按最近活动倒序，分三个分区：
// 全部、下载过、试玩过. 游戏已下架的记录保留，但不再附带标题与缩略图.
func (s *GameService) UserHistory(ctx context.Context, userID string) (*types.UserHistoryResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	var rows []model.UserGameHistory
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	resp := &types.UserHistoryResponse{
		All:        []types.HistoryEntry{},
		Downloaded: []types.HistoryEntry{},
		Trials:     []types.HistoryEntry{},
	}

	if len(rows) == 0 {
		return resp, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.GameID)
	}

	var games []model.Game
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("query history games: %w", err)
	}

	byID := make(map[string]*model.Game, len(games))
	for i := range games {
		byID[games[i].ID] = &games[i]
	}

	for _, r := range rows {
		entry := types.HistoryEntry{
			GameID:        r.GameID,
			DownloadedAt:  r.DownloadedAt,
			PlayedTrialAt: r.PlayedTrialAt,
			LastAction:    r.LastAction,
			UpdatedAt:     r.UpdatedAt,
		}

		if g, ok := byID[r.GameID]; ok {
			entry.Title = g.Title
			entry.ThumbnailURL = s.publicThumbnailURL(g.ThumbnailKey)
		}

		resp.All = append(resp.All, entry)

		if r.DownloadedAt != nil {
			resp.Downloaded = append(resp.Downloaded, entry)
		}

		if r.PlayedTrialAt != nil {
			resp.Trials = append(resp.Trials, entry)
		}
	}

	return resp, nil
}
