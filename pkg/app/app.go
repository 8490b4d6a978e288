// Package app 提供应用程序的初始化和配置功能.
package app

import (
	contextPkg "context"
	"fmt"
	"os"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/gamevault/pkg/api"
	appcache "github.com/yeisme/gamevault/pkg/cache"
	"github.com/yeisme/gamevault/pkg/configs"
	"github.com/yeisme/gamevault/pkg/context"
	"github.com/yeisme/gamevault/pkg/internal/jobs"
	"github.com/yeisme/gamevault/pkg/internal/model"
	"github.com/yeisme/gamevault/pkg/internal/storage"
	"github.com/yeisme/gamevault/pkg/log"
	"github.com/yeisme/gamevault/pkg/metrics"
	"github.com/yeisme/gamevault/pkg/middleware"
	"github.com/yeisme/gamevault/pkg/scheduler"
	"github.com/yeisme/gamevault/pkg/tracing"
)

type App struct {
	Engine *gin.Engine
	config *configs.AppConfig
	sched  *scheduler.Scheduler
}

func NewApp(configPath string) *App {
	ctx := contextPkg.Background()
	engine := gin.New()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	// 初始化追踪
	config := configs.GetConfig()
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	ctx = context.WithStorageManager(ctx, manager)

	// 建表
	if dbCli := manager.GetDBClient(); dbCli != nil {
		if err := dbCli.AutoMigrate(&model.Game{}, &model.UserGameHistory{}, &model.OrphanAsset{}); err != nil {
			fmt.Printf("Error migrating database: %v\n", err)
			os.Exit(1)
		}
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.CORSMiddleware(config.Server),
		middleware.TracingMiddleware(),
		middleware.PrometheusMiddleware(),
		middleware.RoleMiddleware(),
		middleware.StorageMiddleware(manager),
		middleware.AuthMiddleware(config.Auth),
	)

	if config.RateLimit.Enabled {
		engine.Use(middleware.RateLimitMiddleware(config.RateLimit))
	}

	if config.CircuitBreaker.Enabled {
		engine.Use(middleware.CircuitBreakerMiddleware(config.CircuitBreaker))
	}

	// 后台任务：孤儿资产回收等
	var sched *scheduler.Scheduler
	if config.Jobs.Enabled {
		sched, err = scheduler.NewScheduler()
		if err != nil {
			fmt.Printf("Error initializing scheduler: %v\n", err)
			os.Exit(1)
		}

		if err := jobs.RegisterCronJobs(ctx, sched, &config.Jobs); err != nil {
			fmt.Printf("Error registering cron jobs: %v\n", err)
			os.Exit(1)
		}

		sched.Start()
		engine.Use(middleware.SchedulerMiddleware(sched))
	}

	// 游戏详情的 HTTP 响应缓存（列表缓存在 service 层，由版本号保证一致性）
	var httpCache gin.HandlerFunc
	if kvCli := manager.GetKVClient(); kvCli != nil {
		httpCache = middleware.CacheMiddleware(middleware.DefaultCacheConfig(appcache.NewCache(kvCli.KVStore)))
	}

	api.RegisterRoutes(engine, httpCache)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	return &App{
		Engine: engine,
		config: config,
		sched:  sched,
	}
}

func (a *App) Run() error {
	return a.Engine.Run(fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port))
}

// Shutdown 停止后台调度器并刷出追踪数据.
func (a *App) Shutdown(ctx contextPkg.Context) error {
	if a.sched != nil {
		if err := a.sched.Shutdown(); err != nil {
			return err
		}
	}

	return tracing.ShutdownTracer(ctx)
}
