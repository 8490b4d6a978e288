package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/handle"
	"github.com/yeisme/gamevault/pkg/middleware"
)

// RegisterAdminRoutes 注册目录管理路由.
// 创建与更新要求 publisher 及以上角色，删除与孤儿资产管理仅限 admin.
func RegisterAdminRoutes(g *gin.RouterGroup) {
	admin := g.Group("/admin")
	{
		gamesRoutes := admin.Group("/games", middleware.RequireMinRole(middleware.RolePublisher))
		{
			gamesRoutes.POST("", handle.CreateGame)
			gamesRoutes.PUT("/:id", handle.UpdateGame)
			gamesRoutes.DELETE("/:id", middleware.RequireMinRole(middleware.RoleAdmin), handle.DeleteGame)
		}

		orphanRoutes := admin.Group("/orphans", middleware.RequireMinRole(middleware.RoleAdmin))
		{
			orphanRoutes.GET("", handle.OrphanStats)
			orphanRoutes.POST("/sweep", handle.SweepOrphansNow)
		}
	}
}
