package service

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"gorm.io/gorm/clause"

	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
	nlog "github.com/yeisme/gamevault/pkg/log"
	"github.com/yeisme/gamevault/pkg/metrics"
	"github.com/yeisme/gamevault/pkg/queue"
)

// RequestDownload 为已登录用户签发下载链接：生成 60 秒有效的预签名 GET，
// 递增下载计数并写入用户历史.
func (s *GameService) RequestDownload(ctx context.Context, userID, gameID string) (*types.DownloadResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.FileKey == "" {
		return nil, ErrNoAsset
	}

	fileName := downloadFileName(game)

	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	signed, err := s.store.PresignedGet(ctx, s.s3cfg.FilesBucket, game.FileKey, DownloadExpiry, reqParams)
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}

	// 读改写递增，并发请求可能丢失增量；计数仅用于排序展示，不做精确统计.
	// 链接已经签出，计数更新失败不影响下载
	if err := s.db.WithContext(ctx).Model(&model.Game{}).
		Where("id = ?", game.ID).
		Update("download_count", game.DownloadCount+1).Error; err != nil {
		nlog.Logger().Warn().Err(err).Str("game_id", game.ID).Msg("update download count failed")
	}

	// 历史写入失败不阻塞下载，链接已经签出
	if err := s.upsertHistory(ctx, userID, game.ID, model.ActionDownload); err != nil {
		nlog.Logger().Warn().Err(err).Str("user", userID).Str("game_id", game.ID).Msg("record download history failed")
	}

	s.bumpListVersion(ctx)
	metrics.DownloadCounter.WithLabelValues(game.ID).Inc()

	if s.events.Game.Downloaded {
		s.publish(ctx, queue.TopicGameDownloaded, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishGameDownloaded(pub, queue.GameDownloadedPayload{
				Game:   gameRef(game),
				UserID: userID,
				At:     time.Now(),
			}, opts...)
		})
	}

	return &types.DownloadResponse{
		GameID:    game.ID,
		URL:       signed.String(),
		ExpiresIn: int(DownloadExpiry / time.Second),
		FileName:  fileName,
	}, nil
}

// RequestTrial 返回游戏的试玩地址；已登录用户同时写入历史，
// 匿名用户可试玩但不留痕.
func (s *GameService) RequestTrial(ctx context.Context, userID, gameID string) (*types.TrialResponse, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.TrialURL == "" {
		return nil, ErrNoTrial
	}

	if userID != "" {
		if err := s.upsertHistory(ctx, userID, game.ID, model.ActionTrial); err != nil {
			nlog.Logger().Warn().Err(err).Str("user", userID).Str("game_id", game.ID).Msg("record trial history failed")
		}
	}

	metrics.TrialCounter.WithLabelValues(game.ID).Inc()

	if s.events.Game.TrialPlayed {
		s.publish(ctx, queue.TopicTrialPlayed, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishTrialPlayed(pub, queue.TrialPlayedPayload{
				Game:   gameRef(game),
				UserID: userID,
				At:     time.Now(),
			}, opts...)
		})
	}

	return &types.TrialResponse{GameID: game.ID, TrialURL: game.TrialURL}, nil
}

// upsertHistory 写入或刷新用户历史，(user_id, game_id) 冲突时只更新
// 对应动作的时间戳与 last_action.
func (s *GameService) upsertHistory(ctx context.Context, userID, gameID, action string) error {
	now := time.Now()

	entry := model.UserGameHistory{
		UserID:     userID,
		GameID:     gameID,
		LastAction: action,
		UpdatedAt:  now,
	}

	assignments := map[string]any{
		"last_action": action,
		"updated_at":  now,
	}

	switch action {
	case model.ActionDownload:
		entry.DownloadedAt = &now
		assignments["downloaded_at"] = now
	case model.ActionTrial:
		entry.PlayedTrialAt = &now
		assignments["played_trial_at"] = now
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}

	return nil
}

// downloadFileName 生成下载时展示的文件名：标题 + 原始扩展名.
func downloadFileName(g *model.Game) string {
	ext := filepath.Ext(g.FileKey)

	return g.Title + ext
}
