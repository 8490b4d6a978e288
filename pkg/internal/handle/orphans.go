package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/service"
	"github.com/yeisme/gamevault/pkg/log"
)

// SweepOrphansNow 立即触发一次孤儿资产回收.
//
//	@Summary		触发孤儿资产回收
//	@Description	立即执行一轮孤儿资产回收，返回本轮回收与失败数量
//	@Tags			游戏管理
//	@Produce		json
//	@Success		200	{object}	service.SweepResult	"回收结果"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/admin/orphans/sweep [post]
func SweepOrphansNow(c *gin.Context) {
	svc := service.NewGameService(c.Request.Context())

	result, err := svc.SweepOrphans(c.Request.Context(), 100)
	if err != nil {
		log.Logger().Error().Err(err).Msg("orphan sweep failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, result)
}

// OrphanStats 当前孤儿资产数量.
//
//	@Summary		孤儿资产统计
//	@Description	返回待回收的孤儿资产数量
//	@Tags			游戏管理
//	@Produce		json
//	@Success		200	{object}	map[string]int64	"待回收数量"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/admin/orphans [get]
func OrphanStats(c *gin.Context) {
	svc := service.NewGameService(c.Request.Context())

	n, err := svc.OrphanCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"pending": n})
}
