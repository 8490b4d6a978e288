package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/handle"
	"github.com/yeisme/gamevault/pkg/middleware"
)

// RegisterSchedulerRoutes 注册调度器相关路由，仅限 admin.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	sched := g.Group("/scheduler", middleware.RequireMinRole(middleware.RoleAdmin))
	{
		sched.GET("/jobs", handle.SchedulerJobs)

		sched.POST("/jobs/stop", handle.SchedulerStopJobs)

		sched.DELETE("/jobs/:id", handle.SchedulerRemoveJob)

		sched.GET("/queue/waiting", handle.SchedulerQueueWaiting)
	}
}
