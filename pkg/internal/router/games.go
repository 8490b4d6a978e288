package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/handle"
)

// RegisterGamesRoutes 注册公开的游戏目录路由.
// httpCache 非 nil 时作用于详情读取（列表缓存由 service 层负责，
// 保证目录变更立即可见）.
func RegisterGamesRoutes(g *gin.RouterGroup, httpCache gin.HandlerFunc) {
	games := g.Group("/games")
	{
		// 列表与搜索
		games.GET("", handle.ListGames)

		if httpCache != nil {
			games.GET("/:id", httpCache, handle.GetGame)
		} else {
			games.GET("/:id", handle.GetGame)
		}

		// 下载链接签发（需登录）
		games.POST("/:id/download", handle.DownloadGame)
		// 试玩（匿名可用）
		games.POST("/:id/trial", handle.PlayTrial)
	}
}
