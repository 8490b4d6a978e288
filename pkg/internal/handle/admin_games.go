package handle

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/service"
	"github.com/yeisme/gamevault/pkg/internal/types"
	"github.com/yeisme/gamevault/pkg/log"
)

// formAsset 从 multipart 表单读取一个可选的文件字段.
// 字段缺失返回 (nil, nil, nil)，调用方负责 Close.
func formAsset(c *gin.Context, field string) (*types.AssetUpload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}

	return &types.AssetUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, f, nil
}

// CreateGame 创建游戏（multipart 表单）.
//
//	@Summary		创建游戏
//	@Description	创建游戏条目，可同时上传游戏文件（file）与缩略图（thumbnail）
//	@Tags			游戏管理
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string				true	"标题"
//	@Param			description	formData	string				false	"描述"
//	@Param			genre		formData	string				false	"分类"
//	@Param			trial_url	formData	string				false	"试玩地址"
//	@Param			file		formData	file				false	"游戏文件"
//	@Param			thumbnail	formData	file				false	"缩略图"
//	@Success		201			{object}	types.GameDetail	"创建的游戏"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Failure		500			{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/admin/games [post]
func CreateGame(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

		return
	}

	var req types.CreateGameRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	file, fc, err := formAsset(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if fc != nil {
		defer fc.Close()
	}

	thumb, tc, err := formAsset(c, "thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if tc != nil {
		defer tc.Close()
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.CreateGame(c.Request.Context(), &req, file, thumb, user)
	if err != nil {
		l.Error().Err(err).Str("user", user).Msg("create game failed")
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateGame 更新游戏元数据或替换资产.
//
//	@Summary		更新游戏
//	@Description	部分更新游戏元数据；表单携带 file/thumbnail 时替换对应资产，旧资产被移除
//	@Tags			游戏管理
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string				true	"游戏ID"
//	@Param			title		formData	string				false	"标题"
//	@Param			description	formData	string				false	"描述"
//	@Param			genre		formData	string				false	"分类"
//	@Param			trial_url	formData	string				false	"试玩地址"
//	@Param			file		formData	file				false	"游戏文件"
//	@Param			thumbnail	formData	file				false	"缩略图"
//	@Success		200			{object}	types.GameDetail	"更新后的游戏"
//	@Failure		400			{object}	map[string]string	"请求参数错误"
//	@Failure		404			{object}	map[string]string	"游戏不存在"
//	@Failure		500			{object}	map[string]string	"服务器内部错误"
//	@Router			/api/v1/admin/games/{id} [put]
func UpdateGame(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

		return
	}

	var req types.UpdateGameRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	file, fc, err := formAsset(c, "file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if fc != nil {
		defer fc.Close()
	}

	thumb, tc, err := formAsset(c, "thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if tc != nil {
		defer tc.Close()
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.UpdateGame(c.Request.Context(), c.Param("id"), &req, file, thumb, user)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("game_id", c.Param("id")).Msg("update game failed")
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteGame 删除游戏.
//
//	@Summary		删除游戏
//	@Description	删除游戏条目并清理存储资产；资产删除失败时进入孤儿队列等待后台回收
//	@Tags			游戏管理
//	@Produce		json
//	@Param			id	path		string						true	"游戏ID"
//	@Success		200	{object}	types.DeleteGameResponse	"删除结果"
//	@Failure		404	{object}	map[string]string			"游戏不存在"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/admin/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGameService(c.Request.Context())

	resp, err := svc.DeleteGame(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("game_id", c.Param("id")).Msg("delete game failed")
		writeServiceError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
