package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
)

func makeGame(id, title string, downloads int64, createdAt time.Time) model.Game {
	return model.Game{ID: id, Title: title, DownloadCount: downloads, CreatedAt: createdAt}
}

func TestFilterAndSort(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	games := []model.Game{
		makeGame("a", "Banjo Quest", 5, base.Add(1*time.Hour)),
		makeGame("b", "apple runner", 10, base.Add(2*time.Hour)),
		makeGame("c", "Castle Siege", 10, base.Add(3*time.Hour)),
		makeGame("d", "Deep Apple Mine", 1, base.Add(4*time.Hour)),
	}

	t.Run("search case-insensitive", func(t *testing.T) {
		got := FilterAndSort(append([]model.Game{}, games...), "APPLE", types.SortNewest)
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}

		// newest 在过滤结果内生效
		if got[0].ID != "d" || got[1].ID != "b" {
			t.Errorf("order = [%s %s], want [d b]", got[0].ID, got[1].ID)
		}
	})

	t.Run("popular ties break by newest", func(t *testing.T) {
		got := FilterAndSort(append([]model.Game{}, games...), "", types.SortPopular)

		want := []string{"c", "b", "a", "d"}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("position %d = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("alphabetical ignores case", func(t *testing.T) {
		got := FilterAndSort(append([]model.Game{}, games...), "", types.SortAlphabetical)

		want := []string{"b", "a", "c", "d"}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("position %d = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("search matches description", func(t *testing.T) {
		withDesc := []model.Game{
			{ID: "t", Title: "Apple Runner", CreatedAt: base.Add(1 * time.Hour)},
			{ID: "d", Title: "Mine Cart", Description: "dig for APPLES underground", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "x", Title: "Castle Siege", Description: "medieval warfare", CreatedAt: base.Add(3 * time.Hour)},
		}

		got := FilterAndSort(withDesc, "apple", types.SortNewest)
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}

		if got[0].ID != "d" || got[1].ID != "t" {
			t.Errorf("order = [%s %s], want [d t]", got[0].ID, got[1].ID)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := append([]model.Game{}, games...)

		FilterAndSort(input, "", types.SortAlphabetical)

		for i := range games {
			if input[i].ID != games[i].ID {
				t.Fatalf("input reordered at %d: %s, want %s", i, input[i].ID, games[i].ID)
			}
		}
	})
}

func TestListGamesPagination(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := range 5 {
		if _, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: fmt.Sprintf("Game %d", i)}, nil, nil, "admin@example.com"); err != nil {
			t.Fatalf("CreateGame: %v", err)
		}
	}

	resp, err := svc.ListGames(ctx, &types.ListGamesRequest{Sort: types.SortAlphabetical, Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	// Total 统计分页前的过滤结果
	if resp.Total != 5 {
		t.Errorf("total = %d, want 5", resp.Total)
	}

	if len(resp.Games) != 2 {
		t.Fatalf("page size = %d, want 2", len(resp.Games))
	}

	if resp.Games[0].Title != "Game 1" || resp.Games[1].Title != "Game 2" {
		t.Errorf("page = [%s %s], want [Game 1 Game 2]", resp.Games[0].Title, resp.Games[1].Title)
	}
}

func TestListGamesOffsetBeyondEnd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Only One"}, nil, nil, "admin@example.com"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	resp, err := svc.ListGames(ctx, &types.ListGamesRequest{Offset: 10})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	if resp.Total != 1 || len(resp.Games) != 0 {
		t.Fatalf("expected total 1 with empty page, got total=%d len=%d", resp.Total, len(resp.Games))
	}
}

func TestListGamesCacheInvalidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "First"}, nil, nil, "admin@example.com"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	resp, err := svc.ListGames(ctx, &types.ListGamesRequest{})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}

	// 目录变更递增版本号，同样的查询不会命中旧缓存
	if _, err := svc.CreateGame(ctx, &types.CreateGameRequest{Title: "Second"}, nil, nil, "admin@example.com"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	resp, err = svc.ListGames(ctx, &types.ListGamesRequest{})
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("total after create = %d, want 2", resp.Total)
	}
}
