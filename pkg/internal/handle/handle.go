// Package handle 提供HTTP请求处理器的实现.
package handle

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/gamevault/pkg/internal/service"
	"github.com/yeisme/gamevault/pkg/rule"
)

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}

func checkUser(c *gin.Context) (string, error) {
	// 提取用户名：Header 优先 -> query 参数 -> 默认 test-user（便于测试）
	user := c.GetHeader("X-User")
	if user == "" {
		user = c.Query("user")
	}
	// 测试默认值，不为 Debug 或者 Test 模式时
	if user == "" && gin.Mode() != gin.ReleaseMode {
		user = "test-user@example.com"
	}

	user = strings.TrimSpace(user)

	// 使用 validator 验证用户名格式为 email
	if err := rule.ValidateVar(user, "required,email"); err != nil {
		return "", err
	}

	return user, nil
}

// optionalUser 与 checkUser 类似，但允许匿名（返回空串），用于试玩等
// 不强制登录的入口. 提供了用户名但格式非法时仍然报错.
func optionalUser(c *gin.Context) (string, error) {
	user := strings.TrimSpace(c.GetHeader("X-User"))
	if user == "" {
		user = strings.TrimSpace(c.Query("user"))
	}

	if user == "" {
		return "", nil
	}

	if err := rule.ValidateVar(user, "email"); err != nil {
		return "", err
	}

	return user, nil
}

// writeServiceError 将业务错误映射为 HTTP 状态码.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoAsset), errors.Is(err, service.ErrNoTrial):
		// 游戏存在但没有对应能力，语义上是状态冲突而非未找到
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
