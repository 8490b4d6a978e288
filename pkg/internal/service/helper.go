package service

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/oklog/ulid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yeisme/gamevault/pkg/cache"
	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
	nlog "github.com/yeisme/gamevault/pkg/log"
	"github.com/yeisme/gamevault/pkg/queue"
)

const (
	// thumbnailPrefix 缩略图对象键前缀，便于在 bucket 内区分来源.
	thumbnailPrefix = "thumbnail_"

	// listVerKey 游戏列表缓存的版本号键，目录变更时自增使旧缓存失效.
	listVerKey = "games:list:ver"

	// listCacheTTL 列表缓存有效期.
	listCacheTTL = 30 * time.Second
)

// buildObjectKey 生成对象键：<ulid>_<毫秒时间戳><原扩展名>.
// 每次上传生成新键，替换资产不会复用旧键.
func buildObjectKey(fileName string) string {
	now := time.Now()
	id := ulid.MustNew(ulid.Timestamp(now), crand.Reader)
	ext := strings.ToLower(filepath.Ext(fileName))

	return fmt.Sprintf("%s_%d%s", id.String(), now.UnixMilli(), ext)
}

// buildThumbnailKey 生成缩略图对象键.
func buildThumbnailKey(fileName string) string {
	return thumbnailPrefix + buildObjectKey(fileName)
}

// publicThumbnailURL 拼接缩略图的公共访问 URL.
func (s *GameService) publicThumbnailURL(key string) string {
	if key == "" {
		return ""
	}

	base := strings.TrimRight(s.s3cfg.GetPublicBaseURL(), "/")

	return fmt.Sprintf("%s/%s/%s", base, s.s3cfg.ThumbnailsBucket, key)
}

// toGameDetail 将模型转换为响应结构.
func (s *GameService) toGameDetail(g *model.Game) types.GameDetail {
	return types.GameDetail{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		Genre:         g.Genre,
		ThumbnailURL:  s.publicThumbnailURL(g.ThumbnailKey),
		HasFile:       g.FileKey != "",
		FileSize:      g.FileSize,
		HasTrial:      g.TrialURL != "",
		DownloadCount: g.DownloadCount,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// gameRef 构造事件中的游戏引用.
func gameRef(g *model.Game) queue.GameRef {
	return queue.GameRef{ID: g.ID, Title: g.Title}
}

// listCacheVersion 读取列表缓存版本号，读不到视为 0.
func (s *GameService) listCacheVersion(ctx context.Context) int64 {
	if s.cache == nil {
		return 0
	}

	ver, err := cache.Get[int64](ctx, s.cache, listVerKey)
	if err != nil {
		return 0
	}

	return ver
}

// bumpListVersion 目录发生变更后递增版本号，旧列表缓存全部失效.
func (s *GameService) bumpListVersion(ctx context.Context) {
	if s.cache == nil {
		return
	}

	ver := s.listCacheVersion(ctx)
	if err := cache.Set(ctx, s.cache, listVerKey, ver+1, 0); err != nil {
		nlog.Logger().Warn().Err(err).Msg("bump list cache version failed")
	}
}

// publish 事件发布的公共入口：事件总开关关闭或 MQ 未初始化时静默跳过，
// 发布失败只记日志，不影响业务结果.
func (s *GameService) publish(ctx context.Context, topic string, fn func(pub message.Publisher, opts ...func(*queue.EventHeader)) error) {
	if !s.events.Enabled || s.mq == nil {
		return
	}

	pub := s.mq.Publisher()
	if pub == nil {
		return
	}

	opts := []func(*queue.EventHeader){queue.WithProducer("gamevault")}
	if span := trace.SpanFromContext(ctx); span.SpanContext().HasTraceID() {
		opts = append(opts, queue.WithTraceID(span.SpanContext().TraceID().String()))
	}

	if err := fn(pub, opts...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("publish event failed")
	}
}
