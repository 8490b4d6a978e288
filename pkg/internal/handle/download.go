package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/service"
	"github.com/yeisme/gamevault/pkg/log"
)

// DownloadGame 签发下载链接.
//
//	@Summary		获取下载链接
//	@Description	为已登录用户签发 60 秒有效的预签名下载 URL，并记入下载历史
//	@Tags			下载与试玩
//	@Produce		json
//	@Param			id	path		string					true	"游戏ID"
//	@Success		200	{object}	types.DownloadResponse	"预签名下载链接"
//	@Failure		401	{object}	map[string]string		"未登录"
//	@Failure		404	{object}	map[string]string		"游戏不存在"
//	@Failure		409	{object}	map[string]string		"游戏无可下载文件"
//	@Failure		500	{object}	map[string]string		"服务器内部错误"
//	@Router			/api/v1/games/{id}/download [post]
func DownloadGame(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.RequestDownload(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		log.Logger().Warn().Err(err).Str("user", user).Str("game_id", c.Param("id")).Msg("download request failed")
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// PlayTrial 获取试玩地址.
//
//	@Summary		启动试玩
//	@Description	返回游戏的试玩地址；已登录用户记入试玩历史，匿名用户可试玩不留痕
//	@Tags			下载与试玩
//	@Produce		json
//	@Param			id	path		string				true	"游戏ID"
//	@Success		200	{object}	types.TrialResponse	"试玩地址"
//	@Failure		400	{object}	map[string]string	"用户名格式非法"
//	@Failure		404	{object}	map[string]string	"游戏不存在"
//	@Failure		409	{object}	map[string]string	"游戏未提供试玩"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/games/{id}/trial [post]
func PlayTrial(c *gin.Context) {
	user, err := optionalUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.RequestTrial(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
