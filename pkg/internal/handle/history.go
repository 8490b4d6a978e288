package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/service"
	"github.com/yeisme/gamevault/pkg/log"
)

// UserHistory 当前用户的游戏历史.
//
//	@Summary		用户历史
//	@Description	返回当前用户的交互历史，按最近活动倒序，分全部/下载过/试玩过三个分区
//	@Tags			用户历史
//	@Produce		json
//	@Success		200	{object}	types.UserHistoryResponse	"用户历史"
//	@Failure		401	{object}	map[string]string			"未登录"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/history [get]
func UserHistory(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.UserHistory(c.Request.Context(), user)
	if err != nil {
		log.Logger().Error().Err(err).Str("user", user).Msg("query history failed")
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
