package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/service"
	"github.com/yeisme/gamevault/pkg/internal/types"
	"github.com/yeisme/gamevault/pkg/log"
)

// ListGames 游戏列表，支持搜索、排序与分页.
//
//	@Summary		游戏列表
//	@Description	按标题或描述搜索、排序（newest/popular/alphabetical）并分页返回游戏目录
//	@Tags			游戏目录
//	@Produce		json
//	@Param			search	query		string					false	"标题或描述子串（大小写不敏感）"
//	@Param			sort	query		string					false	"排序方式"	Enums(newest, popular, alphabetical)
//	@Param			limit	query		int						false	"每页数量，0 表示不分页"
//	@Param			offset	query		int						false	"偏移量"
//	@Success		200		{object}	types.ListGamesResponse	"游戏列表"
//	@Failure		400		{object}	map[string]string		"请求参数错误"
//	@Failure		500		{object}	map[string]string		"服务器内部错误"
//	@Router			/api/v1/games [get]
func ListGames(c *gin.Context) {
	var req types.ListGamesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.ListGames(c.Request.Context(), &req)
	if err != nil {
		log.Logger().Error().Err(err).Msg("list games failed")
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetGame 游戏详情.
//
//	@Summary		游戏详情
//	@Description	返回单个游戏的元数据、缩略图地址与下载计数
//	@Tags			游戏目录
//	@Produce		json
//	@Param			id	path		string				true	"游戏ID"
//	@Success		200	{object}	types.GameDetail	"游戏详情"
//	@Failure		404	{object}	map[string]string	"游戏不存在"
//	@Failure		500	{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/games/{id} [get]
func GetGame(c *gin.Context) {
	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
