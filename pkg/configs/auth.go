package configs

import "github.com/spf13/viper"

// AuthConfig 控制统一身份认证（优先支持 oauth2-proxy 注入的请求头）。
// 下载与历史记录接口要求已登录身份；试玩与目录浏览允许匿名访问，
// 因此匿名路径通过 skip_paths 放行，身份在 handler 层按需提取。
type AuthConfig struct {
	Enabled       bool     `mapstructure:"enabled"`         // 开启认证校验
	SkipPaths     []string `mapstructure:"skip_paths"`      // 跳过认证的路径前缀（如 /metrics、/api/v1/health）
	DevAllowQuery bool     `mapstructure:"dev_allow_query"` // 开发模式允许用 ?user= 便于本地调试
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.dev_allow_query", true)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/debug/pprof",
		"/api/v1/health",
		"/api/v1/games",
		"/swagger",
	})
}
