// Package middleware 提供 Gin 中间件：认证、角色、日志、指标、追踪、限流、熔断、
// 响应缓存以及存储/调度器的上下文注入.
package middleware
