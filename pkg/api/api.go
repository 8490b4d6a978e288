// Package api 汇总对外暴露的HTTP接口注册.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/router"
)

// RegisterRoutes 注册全部业务路由与 Swagger 文档路由.
// httpCache 可为 nil，表示不启用 HTTP 层响应缓存.
func RegisterRoutes(e *gin.Engine, httpCache gin.HandlerFunc) *gin.Engine {
	router.RegisterAPIRoutes(e, httpCache)
	router.RegisterSwaggerRoute(e)

	return e
}
