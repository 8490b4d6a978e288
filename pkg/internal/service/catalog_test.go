package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
)

func TestCreateGame(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	detail, err := svc.CreateGame(ctx, &types.CreateGameRequest{
		Title:       "Star Drifter",
		Description: "space exploration",
		Genre:       "adventure",
		TrialURL:    "https://play.example.com/star-drifter",
	}, fileUpload("star-drifter.zip", "game-bytes"), fileUpload("cover.png", "png-bytes"), "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if detail.ID == "" {
		t.Fatal("expected generated game ID")
	}

	if !detail.HasFile || !detail.HasTrial {
		t.Fatalf("expected file and trial, got %+v", detail)
	}

	if detail.ThumbnailURL == "" {
		t.Fatal("expected public thumbnail URL")
	}

	var game model.Game
	if err := svc.db.First(&game, "id = ?", detail.ID).Error; err != nil {
		t.Fatalf("game row not found: %v", err)
	}

	if !store.has(testS3Cfg.FilesBucket, game.FileKey) {
		t.Errorf("game file %s not in store", game.FileKey)
	}

	if !store.has(testS3Cfg.ThumbnailsBucket, game.ThumbnailKey) {
		t.Errorf("thumbnail %s not in store", game.ThumbnailKey)
	}
}

func TestCreateGameTitleRequired(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateGame(context.Background(), &types.CreateGameRequest{Title: "   "}, nil, nil, "admin@example.com")
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

func TestUpdateGamePartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Old Title", Genre: "puzzle"}, nil, nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	newTitle := "New Title"

	updated, err := svc.UpdateGame(ctx, created.ID, &types.UpdateGameRequest{Title: &newTitle}, nil, nil, "admin@example.com")
	if err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("title = %q, want %q", updated.Title, newTitle)
	}

	// 未提供的字段保持不变
	if updated.Genre != "puzzle" {
		t.Errorf("genre = %q, want puzzle", updated.Genre)
	}
}

func TestUpdateGameReplacesFile(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Replace Me"},
		fileUpload("v1.zip", "v1-bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	var before model.Game
	if err := svc.db.First(&before, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if _, err := svc.UpdateGame(ctx, created.ID, &types.UpdateGameRequest{},
		fileUpload("v2.zip", "v2-bytes"), nil, "admin@example.com"); err != nil {
		t.Fatalf("UpdateGame: %v", err)
	}

	var after model.Game
	if err := svc.db.First(&after, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if after.FileKey == before.FileKey {
		t.Fatal("expected a fresh object key after replacement")
	}

	if store.has(testS3Cfg.FilesBucket, before.FileKey) {
		t.Error("old game file should be removed")
	}

	if !store.has(testS3Cfg.FilesBucket, after.FileKey) {
		t.Error("new game file missing from store")
	}
}

func TestUpdateGameNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateGame(context.Background(), "no-such-id", &types.UpdateGameRequest{}, nil, nil, "admin@example.com")
	if !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestDeleteGameRemovesAssets(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Doomed"},
		fileUpload("doomed.zip", "bytes"), fileUpload("doomed.png", "png"), "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	resp, err := svc.DeleteGame(ctx, created.ID, "admin@example.com")
	if err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	if !resp.Deleted || len(resp.OrphanedAssets) != 0 {
		t.Fatalf("expected clean delete, got %+v", resp)
	}

	if _, err := svc.GetGame(ctx, created.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound after delete, got %v", err)
	}

	store.mu.Lock()
	remaining := len(store.objects)
	store.mu.Unlock()

	if remaining != 0 {
		t.Fatalf("expected empty store after delete, %d objects left", remaining)
	}

	// 删除后列表立即不可见
	list, err := svc.ListGames(ctx, &types.ListGamesRequest{})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	if list.Total != 0 {
		t.Fatalf("expected empty catalog after delete, total = %d", list.Total)
	}
}

func TestDeleteGameOrphansFailedRemovals(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Sticky"},
		fileUpload("sticky.zip", "bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	store.failRemovals(testS3Cfg.FilesBucket, errors.New("storage unavailable"))

	resp, err := svc.DeleteGame(ctx, created.ID, "admin@example.com")
	if err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	// 目录行删除总是生效，资产删除失败只进入孤儿队列
	if !resp.Deleted {
		t.Fatal("row deletion should succeed even when storage fails")
	}

	if len(resp.OrphanedAssets) != 1 {
		t.Fatalf("expected 1 orphaned asset, got %d", len(resp.OrphanedAssets))
	}

	var orphans []model.OrphanAsset
	if err := svc.db.Find(&orphans).Error; err != nil {
		t.Fatalf("query orphans: %v", err)
	}

	if len(orphans) != 1 || orphans[0].GameID != created.ID {
		t.Fatalf("expected orphan row for %s, got %+v", created.ID, orphans)
	}
}

func TestSweepOrphans(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Reclaim"},
		fileUpload("reclaim.zip", "bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	store.failRemovals(testS3Cfg.FilesBucket, errors.New("storage unavailable"))

	if _, err := svc.DeleteGame(ctx, created.ID, "admin@example.com"); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	// 存储仍不可用，回收失败并累计重试次数
	result, err := svc.SweepOrphans(ctx, 10)
	if err != nil {
		t.Fatalf("SweepOrphans: %v", err)
	}

	if result.Failed != 1 || result.Reclaimed != 0 {
		t.Fatalf("expected 1 failed, got %+v", result)
	}

	var orphan model.OrphanAsset
	if err := svc.db.First(&orphan).Error; err != nil {
		t.Fatalf("query orphan: %v", err)
	}

	if orphan.Attempts != 1 || orphan.LastError == "" {
		t.Fatalf("expected attempt recorded, got %+v", orphan)
	}

	// 存储恢复后回收成功，记录删除
	store.restoreRemovals(testS3Cfg.FilesBucket)

	result, err = svc.SweepOrphans(ctx, 10)
	if err != nil {
		t.Fatalf("SweepOrphans: %v", err)
	}

	if result.Reclaimed != 1 {
		t.Fatalf("expected 1 reclaimed, got %+v", result)
	}

	n, err := svc.OrphanCount(ctx)
	if err != nil {
		t.Fatalf("OrphanCount: %v", err)
	}

	if n != 0 {
		t.Fatalf("expected empty orphan queue, got %d", n)
	}
}
