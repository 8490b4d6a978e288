package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
	nlog "github.com/yeisme/gamevault/pkg/log"
	"github.com/yeisme/gamevault/pkg/queue"
)

// CreateGame 创建游戏条目，file 与 thumb 可为 nil（先建条目后补资产）.
// 资产先上传对象存储，数据库写入失败时回收已上传对象.
func (s *GameService) CreateGame(ctx context.Context, req *types.CreateGameRequest, file, thumb *types.AssetUpload, actor string) (*types.GameDetail, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	game := &model.Game{
		ID:          uuid.NewString(),
		Title:       title,
		Description: req.Description,
		Genre:       req.Genre,
		TrialURL:    req.TrialURL,
	}

	var uploaded []queue.AssetRef

	cleanup := func() {
		for _, a := range uploaded {
			if err := s.store.RemoveObject(ctx, a.Bucket, a.ObjectKey); err != nil {
				s.recordOrphan(ctx, game.ID, a.Bucket, a.ObjectKey, err)
			}
		}
	}

	if file != nil {
		key := buildObjectKey(file.FileName)
		if err := s.store.PutObject(ctx, s.s3cfg.FilesBucket, key, file.Reader, file.Size, file.ContentType); err != nil {
			return nil, fmt.Errorf("upload game file: %w", err)
		}

		game.FileKey = key
		game.FileSize = file.Size
		uploaded = append(uploaded, queue.AssetRef{Bucket: s.s3cfg.FilesBucket, ObjectKey: key, Size: file.Size})
	}

	if thumb != nil {
		key := buildThumbnailKey(thumb.FileName)
		if err := s.store.PutObject(ctx, s.s3cfg.ThumbnailsBucket, key, thumb.Reader, thumb.Size, thumb.ContentType); err != nil {
			cleanup()

			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}

		game.ThumbnailKey = key
		uploaded = append(uploaded, queue.AssetRef{Bucket: s.s3cfg.ThumbnailsBucket, ObjectKey: key, Size: thumb.Size})
	}

	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		cleanup()

		return nil, fmt.Errorf("create game: %w", err)
	}

	s.bumpListVersion(ctx)

	if s.events.Game.Created {
		s.publish(ctx, queue.TopicGameCreated, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishGameCreated(pub, queue.GameCreatedPayload{
				Game:   gameRef(game),
				Assets: uploaded,
				Actor:  actor,
			}, opts...)
		})
	}

	detail := s.toGameDetail(game)

	return &detail, nil
}

// UpdateGame 更新游戏元数据或替换资产；nil 字段/nil 资产表示不修改.
// 替换资产时先删除旧对象再上传新对象，旧对象删除失败进入孤儿队列.
func (s *GameService) UpdateGame(ctx context.Context, id string, req *types.UpdateGameRequest, file, thumb *types.AssetUpload, actor string) (*types.GameDetail, error) {
	game, err := s.getGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}

		game.Title = title
	}

	if req.Description != nil {
		game.Description = *req.Description
	}

	if req.Genre != nil {
		game.Genre = *req.Genre
	}

	if req.TrialURL != nil {
		game.TrialURL = *req.TrialURL
	}

	var replaced []queue.AssetRef

	if file != nil {
		s.removeOrOrphan(ctx, game.ID, s.s3cfg.FilesBucket, game.FileKey)

		key := buildObjectKey(file.FileName)
		if err := s.store.PutObject(ctx, s.s3cfg.FilesBucket, key, file.Reader, file.Size, file.ContentType); err != nil {
			return nil, fmt.Errorf("upload game file: %w", err)
		}

		game.FileKey = key
		game.FileSize = file.Size
		replaced = append(replaced, queue.AssetRef{Bucket: s.s3cfg.FilesBucket, ObjectKey: key, Size: file.Size})
	}

	if thumb != nil {
		s.removeOrOrphan(ctx, game.ID, s.s3cfg.ThumbnailsBucket, game.ThumbnailKey)

		key := buildThumbnailKey(thumb.FileName)
		if err := s.store.PutObject(ctx, s.s3cfg.ThumbnailsBucket, key, thumb.Reader, thumb.Size, thumb.ContentType); err != nil {
			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}

		game.ThumbnailKey = key
		replaced = append(replaced, queue.AssetRef{Bucket: s.s3cfg.ThumbnailsBucket, ObjectKey: key, Size: thumb.Size})
	}

	if err := s.db.WithContext(ctx).Save(game).Error; err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}

	s.bumpListVersion(ctx)

	if s.events.Game.Updated {
		s.publish(ctx, queue.TopicGameUpdated, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishGameUpdated(pub, queue.GameUpdatedPayload{
				Game:           gameRef(game),
				ReplacedAssets: replaced,
				Actor:          actor,
			}, opts...)
		})
	}

	detail := s.toGameDetail(game)

	return &detail, nil
}

// DeleteGame 删除游戏：目录行先删（立即从列表消失），之后并发删除
// 两个 bucket 中的资产；删除失败的资产进入孤儿队列等待后台回收，
// 不会因此让整个删除操作失败.
func (s *GameService) DeleteGame(ctx context.Context, id, actor string) (*types.DeleteGameResponse, error) {
	game, err := s.getGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&model.Game{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("delete game: %w", err)
	}

	s.bumpListVersion(ctx)

	type target struct {
		bucket string
		key    string
	}

	targets := make([]target, 0, 2)
	if game.FileKey != "" {
		targets = append(targets, target{s.s3cfg.FilesBucket, game.FileKey})
	}

	if game.ThumbnailKey != "" {
		targets = append(targets, target{s.s3cfg.ThumbnailsBucket, game.ThumbnailKey})
	}

	var (
		mu       sync.Mutex
		orphaned []types.OrphanedAssetInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			if err := s.store.RemoveObject(gctx, t.bucket, t.key); err != nil {
				nlog.Logger().Warn().Err(err).
					Str("bucket", t.bucket).
					Str("object_key", t.key).
					Msg("remove asset failed, queued for reclaim")

				s.recordOrphan(ctx, game.ID, t.bucket, t.key, err)

				mu.Lock()
				orphaned = append(orphaned, types.OrphanedAssetInfo{
					Bucket:    t.bucket,
					ObjectKey: t.key,
					Error:     err.Error(),
				})
				mu.Unlock()
			}

			return nil
		})
	}

	_ = g.Wait()

	if s.events.Game.Deleted {
		refs := make([]queue.AssetRef, 0, len(orphaned))
		for _, o := range orphaned {
			refs = append(refs, queue.AssetRef{Bucket: o.Bucket, ObjectKey: o.ObjectKey})
		}

		s.publish(ctx, queue.TopicGameDeleted, func(pub message.Publisher, opts ...func(*queue.EventHeader)) error {
			return queue.PublishGameDeleted(pub, queue.GameDeletedPayload{
				Game:           gameRef(game),
				OrphanedAssets: refs,
				Actor:          actor,
			}, opts...)
		})
	}

	return &types.DeleteGameResponse{
		ID:             id,
		Deleted:        true,
		OrphanedAssets: orphaned,
	}, nil
}

// getGame 按 ID 加载游戏.
func (s *GameService) getGame(ctx context.Context, id string) (*model.Game, error) {
	var game model.Game
	if err := s.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}

		return nil, fmt.Errorf("query game: %w", err)
	}

	return &game, nil
}
