// Package router 管理路由配置，用于设置HTTP服务的路由.
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes 将所有业务路由绑定到 /api/v1 路由组.
// httpCache 非 nil 时作用于公开目录的只读路由.
func RegisterAPIRoutes(e *gin.Engine, httpCache gin.HandlerFunc) {
	v1 := e.Group("/api/v1")

	RegisterGamesRoutes(v1, httpCache)
	RegisterAdminRoutes(v1)
	RegisterHistoryRoutes(v1)
	RegisterHealthCheckRoute(v1)
	RegisterSchedulerRoutes(v1)
}
