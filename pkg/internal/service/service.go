// Package service 实现游戏门户的业务逻辑：目录管理、资产上传、
// 预签名下载、试玩与用户历史.
package service

import (
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	minio "github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/yeisme/gamevault/pkg/cache"
	"github.com/yeisme/gamevault/pkg/configs"
	ctxPkg "github.com/yeisme/gamevault/pkg/context"
	"github.com/yeisme/gamevault/pkg/internal/storage/mq"
	s3c "github.com/yeisme/gamevault/pkg/internal/storage/s3"
)

// 业务错误，handler 层据此映射 HTTP 状态码.
var (
	ErrGameNotFound    = errors.New("game not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrNoAsset         = errors.New("game has no downloadable file")
	ErrNoTrial         = errors.New("game has no trial")
	ErrUnauthenticated = errors.New("user not authenticated")
)

// DownloadExpiry 预签名下载链接的有效期.
const DownloadExpiry = 60 * time.Second

// ObjectStore 抽象对象存储操作，测试时注入内存实现.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, bucket, key string) error
	PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration, reqParams url.Values) (*url.URL, error)
}

// s3Store 基于 MinIO 客户端的 ObjectStore 实现.
type s3Store struct {
	cli *s3c.Client
}

func (s *s3Store) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.cli.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})

	return err
}

func (s *s3Store) RemoveObject(ctx context.Context, bucket, key string) error {
	return s.cli.Client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

func (s *s3Store) PresignedGet(ctx context.Context, bucket, key string, expiry time.Duration, reqParams url.Values) (*url.URL, error) {
	return s.cli.PresignedGetObject(ctx, bucket, key, expiry, reqParams)
}

// GameService 游戏业务服务.
type GameService struct {
	db     *gorm.DB
	store  ObjectStore
	cache  *cache.Cache
	mq     *mq.Client
	s3cfg  configs.S3Config
	events configs.EventsConfig
}

// NewGameService 从上下文获取存储客户端并构造服务实例.
func NewGameService(c context.Context) *GameService {
	cfg := configs.GetConfig()

	svc := &GameService{events: cfg.Events}

	if dbCli := ctxPkg.GetDBClient(c); dbCli != nil {
		svc.db = dbCli.DB
	}

	if s3Cli := ctxPkg.GetS3Client(c); s3Cli != nil {
		svc.store = &s3Store{cli: s3Cli}
		svc.s3cfg = s3Cli.GetConfig()
	}

	if kvCli := ctxPkg.GetKVClient(c); kvCli != nil {
		svc.cache = cache.NewCache(kvCli.KVStore)
	}

	svc.mq = ctxPkg.GetMQClient(c)

	return svc
}

// NewGameServiceWith 显式注入依赖构造服务，测试用.
func NewGameServiceWith(db *gorm.DB, store ObjectStore, c *cache.Cache, s3cfg configs.S3Config, events configs.EventsConfig) *GameService {
	return &GameService{
		db:     db,
		store:  store,
		cache:  c,
		s3cfg:  s3cfg,
		events: events,
	}
}
