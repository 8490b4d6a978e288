package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"gorm.io/gorm/clause"

	"github.com/yeisme/gamevault/pkg/internal/model"
	nlog "github.com/yeisme/gamevault/pkg/log"
	"github.com/yeisme/gamevault/pkg/metrics"
	"github.com/yeisme/gamevault/pkg/queue"
)

// SweepResult 孤儿资产回收的一次执行结果.
type SweepResult struct {
	Reclaimed int `json:"reclaimed"`
	Failed    int `json:"failed"`
}

// SweepOrphans 回收孤儿资产：逐条重试删除对象，成功则移除记录，
// 失败则累计重试次数等待下一轮. 定时任务调用.
func (s *GameService) SweepOrphans(ctx context.Context, limit int) (*SweepResult, error) {
	var orphans []model.OrphanAsset
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&orphans).Error; err != nil {
		return nil, fmt.Errorf("query orphan assets: %w", err)
	}

	result := &SweepResult{}

	for i := range orphans {
		o := &orphans[i]

		if err := s.store.RemoveObject(ctx, o.Bucket, o.ObjectKey); err != nil {
			result.Failed++
			metrics.OrphanSweepCounter.WithLabelValues("failed").Inc()

			now := time.Now()
			if dbErr := s.db.WithContext(ctx).Model(o).Updates(map[string]any{
				"attempts":      o.Attempts + 1,
				"last_error":    err.Error(),
				"last_tried_at": now,
			}).Error; dbErr != nil {
				nlog.Logger().Error().Err(dbErr).Uint("orphan_id", o.ID).Msg("update orphan attempt failed")
			}

			continue
		}

		if err := s.db.WithContext(ctx).Delete(&model.OrphanAsset{}, o.ID).Error; err != nil {
			return nil, fmt.Errorf("remove orphan record: %w", err)
		}

		result.Reclaimed++
		metrics.OrphanSweepCounter.WithLabelValues("reclaimed").Inc()

		s.publish(ctx, queue.TopicAssetReclaimed, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishAssetReclaimed(pub, queue.AssetReclaimedPayload{
				Asset: queue.AssetRef{Bucket: o.Bucket, ObjectKey: o.ObjectKey},
			}, opts...)
		})
	}

	return result, nil
}

// OrphanCount 当前待回收的孤儿资产数量.
func (s *GameService) OrphanCount(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.OrphanAsset{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count orphan assets: %w", err)
	}

	return n, nil
}

// recordOrphan 将删除失败的资产登记为孤儿，(bucket, object_key) 冲突时
// 刷新错误信息. 登记失败只记日志，业务流程不中断.
func (s *GameService) recordOrphan(ctx context.Context, gameID, bucket, key string, cause error) {
	if key == "" {
		return
	}

	orphan := model.OrphanAsset{
		GameID:    gameID,
		Bucket:    bucket,
		ObjectKey: key,
		LastError: cause.Error(),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bucket"}, {Name: "object_key"}},
		DoUpdates: clause.Assignments(map[string]any{"last_error": cause.Error()}),
	}).Create(&orphan).Error; err != nil {
		nlog.Logger().Error().Err(err).
			Str("bucket", bucket).
			Str("object_key", key).
			Msg("record orphan asset failed")

		return
	}

	if s.events.Game.AssetOrphaned {
		s.publish(ctx, queue.TopicAssetOrphaned, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishAssetOrphaned(pub, queue.AssetOrphanedPayload{
				Game:  queue.GameRef{ID: gameID},
				Asset: queue.AssetRef{Bucket: bucket, ObjectKey: key},
				Error: cause.Error(),
			}, opts...)
		})
	}
}

// removeOrOrphan 删除对象，失败时登记为孤儿. 替换资产场景使用.
func (s *GameService) removeOrOrphan(ctx context.Context, gameID, bucket, key string) {
	if key == "" {
		return
	}

	if err := s.store.RemoveObject(ctx, bucket, key); err != nil {
		nlog.Logger().Warn().Err(err).
			Str("bucket", bucket).
			Str("object_key", key).
			Msg("remove old asset failed, queued for reclaim")

		s.recordOrphan(ctx, gameID, bucket, key, err)
	}
}
