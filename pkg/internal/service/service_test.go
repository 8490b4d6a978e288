package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	glebsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/gamevault/pkg/cache"
	"github.com/yeisme/gamevault/pkg/configs"
	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/storage/kv"
	"github.com/yeisme/gamevault/pkg/internal/types"
)

// memStore 内存版 ObjectStore，按 bucket/key 存放对象.
type memStore struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failRemove map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		objects:    make(map[string][]byte),
		failRemove: make(map[string]error),
	}
}

func objKey(bucket, key string) string { return bucket + "/" + key }

func (m *memStore) PutObject(_ context.Context, bucket, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objKey(bucket, key)] = data

	return nil
}

func (m *memStore) RemoveObject(_ context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failRemove[bucket]; ok {
		return err
	}

	delete(m.objects, objKey(bucket, key))

	return nil
}

func (m *memStore) PresignedGet(_ context.Context, bucket, key string, expiry time.Duration, _ url.Values) (*url.URL, error) {
	return url.Parse(fmt.Sprintf("https://s3.test/%s/%s?X-Amz-Expires=%d", bucket, key, int(expiry/time.Second)))
}

func (m *memStore) has(bucket, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.objects[objKey(bucket, key)]

	return ok
}

func (m *memStore) failRemovals(bucket string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failRemove[bucket] = err
}

func (m *memStore) restoreRemovals(bucket string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.failRemove, bucket)
}

var testS3Cfg = configs.S3Config{
	Endpoint:         "localhost:9000",
	FilesBucket:      "game-files",
	ThumbnailsBucket: "game-thumbnails",
}

// newTestService 构造基于内存 sqlite 与内存对象存储的服务实例.
func newTestService(t *testing.T) (*GameService, *memStore) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(glebsqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&model.Game{}, &model.UserGameHistory{}, &model.OrphanAsset{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	kvCfg := &configs.KVConfig{Type: "memory"}

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, kvCfg)
	if err != nil {
		t.Fatalf("new kv store: %v", err)
	}

	mem := newMemStore()
	svc := NewGameServiceWith(db, mem, cache.NewCache(store), testS3Cfg, configs.EventsConfig{})

	return svc, mem
}

func fileUpload(name, content string) *types.AssetUpload {
	return &types.AssetUpload{
		FileName:    name,
		ContentType: "application/octet-stream",
		Size:        int64(len(content)),
		Reader:      strings.NewReader(content),
	}
}
