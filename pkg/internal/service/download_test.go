package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
)

const testUser = "player@example.com"

func TestRequestDownload(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Downloadable"},
		fileUpload("game.zip", "bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	resp, err := svc.RequestDownload(ctx, testUser, created.ID)
	if err != nil {
		t.Fatalf("RequestDownload: %v", err)
	}

	if resp.URL == "" || !strings.Contains(resp.URL, testS3Cfg.FilesBucket) {
		t.Errorf("unexpected URL %q", resp.URL)
	}

	if resp.ExpiresIn != 60 {
		t.Errorf("expires_in = %d, want 60", resp.ExpiresIn)
	}

	if resp.FileName != "Downloadable.zip" {
		t.Errorf("file_name = %q, want Downloadable.zip", resp.FileName)
	}

	var game model.Game
	if err := svc.db.First(&game, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if game.DownloadCount != 1 {
		t.Errorf("download_count = %d, want 1", game.DownloadCount)
	}

	// 重复下载：计数继续递增，历史仍是一条
	if _, err := svc.RequestDownload(ctx, testUser, created.ID); err != nil {
		t.Fatalf("second RequestDownload: %v", err)
	}

	if err := svc.db.First(&game, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if game.DownloadCount != 2 {
		t.Errorf("download_count = %d, want 2", game.DownloadCount)
	}

	var histories []model.UserGameHistory
	if err := svc.db.Find(&histories).Error; err != nil {
		t.Fatalf("query history: %v", err)
	}

	if len(histories) != 1 {
		t.Fatalf("history rows = %d, want 1", len(histories))
	}

	if histories[0].DownloadedAt == nil || histories[0].LastAction != model.ActionDownload {
		t.Fatalf("unexpected history %+v", histories[0])
	}
}

func TestRequestDownloadCounterFailureStillSignsURL(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Resilient"},
		fileUpload("resilient.zip", "bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	// 模拟计数列不可更新
	if err := svc.db.Exec(`CREATE TRIGGER block_count_update BEFORE UPDATE OF download_count ON games
BEGIN SELECT RAISE(ABORT, 'counter unavailable'); END`).Error; err != nil {
		t.Fatalf("create trigger: %v", err)
	}

	// 链接已签出，计数更新失败只记日志
	resp, err := svc.RequestDownload(ctx, testUser, created.ID)
	if err != nil {
		t.Fatalf("RequestDownload: %v", err)
	}

	if resp.URL == "" {
		t.Fatal("expected signed URL despite counter failure")
	}

	var game model.Game
	if err := svc.db.First(&game, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if game.DownloadCount != 0 {
		t.Errorf("download_count = %d, want 0", game.DownloadCount)
	}

	// 历史照常写入
	var histories []model.UserGameHistory
	if err := svc.db.Find(&histories).Error; err != nil {
		t.Fatalf("query history: %v", err)
	}

	if len(histories) != 1 {
		t.Fatalf("history rows = %d, want 1", len(histories))
	}
}

func TestRequestDownloadErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	noFile, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Metadata Only"}, nil, nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := svc.RequestDownload(ctx, "", noFile.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("anonymous download: got %v, want ErrUnauthenticated", err)
	}

	if _, err := svc.RequestDownload(ctx, testUser, "no-such-id"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("missing game: got %v, want ErrGameNotFound", err)
	}

	if _, err := svc.RequestDownload(ctx, testUser, noFile.ID); !errors.Is(err, ErrNoAsset) {
		t.Errorf("no file: got %v, want ErrNoAsset", err)
	}
}

func TestRequestTrial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{
		Title:    "Trial Game",
		TrialURL: "https://play.example.com/trial-game",
	}, nil, nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	// 匿名试玩允许，但不写历史
	resp, err := svc.RequestTrial(ctx, "", created.ID)
	if err != nil {
		t.Fatalf("anonymous RequestTrial: %v", err)
	}

	if resp.TrialURL != "https://play.example.com/trial-game" {
		t.Errorf("trial_url = %q", resp.TrialURL)
	}

	var n int64
	if err := svc.db.Model(&model.UserGameHistory{}).Count(&n).Error; err != nil {
		t.Fatalf("count history: %v", err)
	}

	if n != 0 {
		t.Fatalf("anonymous trial should not record history, got %d rows", n)
	}

	if _, err := svc.RequestTrial(ctx, testUser, created.ID); err != nil {
		t.Fatalf("RequestTrial: %v", err)
	}

	var h model.UserGameHistory
	if err := svc.db.First(&h, "user_id = ?", testUser).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}

	if h.PlayedTrialAt == nil || h.LastAction != "play_trial" {
		t.Fatalf("unexpected history %+v", h)
	}
}

func TestRequestTrialNoTrial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "No Trial"}, nil, nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := svc.RequestTrial(ctx, testUser, created.ID); !errors.Is(err, ErrNoTrial) {
		t.Fatalf("got %v, want ErrNoTrial", err)
	}
}

func TestUserHistoryPartitions(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	gameA, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Alpha"},
		fileUpload("alpha.zip", "bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	gameB, err := svc.CreateGame(ctx, &types.CreateGameRequest{
		Title:    "Beta",
		TrialURL: "https://play.example.com/beta",
	}, nil, nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := svc.RequestDownload(ctx, testUser, gameA.ID); err != nil {
		t.Fatalf("RequestDownload: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := svc.RequestTrial(ctx, testUser, gameB.ID); err != nil {
		t.Fatalf("RequestTrial: %v", err)
	}

	hist, err := svc.UserHistory(ctx, testUser)
	if err != nil {
		t.Fatalf("UserHistory: %v", err)
	}

	if len(hist.All) != 2 {
		t.Fatalf("all = %d, want 2", len(hist.All))
	}

	// 最近活动在前
	if hist.All[0].GameID != gameB.ID || hist.All[1].GameID != gameA.ID {
		t.Errorf("order = [%s %s], want [%s %s]", hist.All[0].GameID, hist.All[1].GameID, gameB.ID, gameA.ID)
	}

	if len(hist.Downloaded) != 1 || hist.Downloaded[0].GameID != gameA.ID {
		t.Errorf("downloaded partition = %+v", hist.Downloaded)
	}

	if len(hist.Trials) != 1 || hist.Trials[0].GameID != gameB.ID {
		t.Errorf("trials partition = %+v", hist.Trials)
	}

	if hist.All[0].Title != "Beta" {
		t.Errorf("expected title enrichment, got %q", hist.All[0].Title)
	}
}

func TestUserHistoryKeepsDeletedGames(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Vanishing"},
		fileUpload("vanishing.zip", "bytes"), nil, "admin@example.com")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := svc.RequestDownload(ctx, testUser, created.ID); err != nil {
		t.Fatalf("RequestDownload: %v", err)
	}

	if _, err := svc.DeleteGame(ctx, created.ID, "admin@example.com"); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	hist, err := svc.UserHistory(ctx, testUser)
	if err != nil {
		t.Fatalf("UserHistory: %v", err)
	}

	// 记录保留，但标题不再附带
	if len(hist.All) != 1 {
		t.Fatalf("all = %d, want 1", len(hist.All))
	}

	if hist.All[0].GameID != created.ID || hist.All[0].Title != "" {
		t.Fatalf("unexpected entry %+v", hist.All[0])
	}
}

func TestUserHistoryUnauthenticated(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.UserHistory(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
}
