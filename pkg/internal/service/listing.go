package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yeisme/gamevault/pkg/cache"
	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/types"
)

// ListGames 查询游戏列表，支持标题/描述子串过滤、排序与分页.
// 结果短暂缓存在 KV 中，目录变更通过版本号使缓存失效.
func (s *GameService) ListGames(ctx context.Context, req *types.ListGamesRequest) (*types.ListGamesResponse, error) {
	if req.Sort == "" {
		req.Sort = types.SortNewest
	}

	if s.cache == nil {
		return s.listGames(ctx, req)
	}

	ver := s.listCacheVersion(ctx)
	key := listCacheKey(req, ver)

	resp, err := cache.GetOrSet(ctx, s.cache, key, func() (*types.ListGamesResponse, error) {
		return s.listGames(ctx, req)
	}, listCacheTTL)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// listGames 直接读库构建列表.
func (s *GameService) listGames(ctx context.Context, req *types.ListGamesRequest) (*types.ListGamesResponse, error) {
	var games []model.Game
	if err := s.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	games = FilterAndSort(games, req.Search, req.Sort)
	total := len(games)

	// Limit 为 0 表示不分页
	if req.Offset > 0 {
		if req.Offset >= len(games) {
			games = nil
		} else {
			games = games[req.Offset:]
		}
	}

	if req.Limit > 0 && req.Limit < len(games) {
		games = games[:req.Limit]
	}

	details := make([]types.GameDetail, 0, len(games))
	for i := range games {
		details = append(details, s.toGameDetail(&games[i]))
	}

	return &types.ListGamesResponse{Games: details, Total: total}, nil
}

// GetGame 查询单个游戏详情.
func (s *GameService) GetGame(ctx context.Context, id string) (*types.GameDetail, error) {
	game, err := s.getGame(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := s.toGameDetail(game)

	return &detail, nil
}

// FilterAndSort 对游戏列表做标题或描述的子串过滤（大小写不敏感）与排序：
//   - newest:       创建时间倒序
//   - popular:      下载次数倒序，相同时创建时间倒序
//   - alphabetical: 标题按语言规则排序（非 ASCII 码点序）
//
// 不修改传入的切片.
func FilterAndSort(games []model.Game, search, sortBy string) []model.Game {
	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]model.Game, 0, len(games))

		for _, g := range games {
			if strings.Contains(strings.ToLower(g.Title), needle) ||
				strings.Contains(strings.ToLower(g.Description), needle) {
				filtered = append(filtered, g)
			}
		}

		games = filtered
	} else {
		games = append([]model.Game(nil), games...)
	}

	switch sortBy {
	case types.SortPopular:
		sort.SliceStable(games, func(i, j int) bool {
			if games[i].DownloadCount != games[j].DownloadCount {
				return games[i].DownloadCount > games[j].DownloadCount
			}

			return games[i].CreatedAt.After(games[j].CreatedAt)
		})
	case types.SortAlphabetical:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(games, func(i, j int) bool {
			return c.CompareString(games[i].Title, games[j].Title) < 0
		})
	default: // newest
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].CreatedAt.After(games[j].CreatedAt)
		})
	}

	return games
}

// listCacheKey 基于查询参数与版本号生成缓存键.
func listCacheKey(req *types.ListGamesRequest, ver int64) string {
	h := xxhash.Sum64String(fmt.Sprintf("%s|%s|%d|%d|%d",
		req.Search, req.Sort, req.Limit, req.Offset, ver))

	return fmt.Sprintf("games:list:%x", h)
}
