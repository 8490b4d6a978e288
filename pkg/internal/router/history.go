package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/handle"
)

// RegisterHistoryRoutes 注册用户历史路由.
func RegisterHistoryRoutes(g *gin.RouterGroup) {
	g.GET("/history", handle.UserHistory)
}
