// Package jobs 注册后台定时任务.
package jobs

import (
	"context"

	"github.com/yeisme/gamevault/pkg/configs"
	"github.com/yeisme/gamevault/pkg/internal/service"
	nlog "github.com/yeisme/gamevault/pkg/log"
	"github.com/yeisme/gamevault/pkg/scheduler"
)

// RegisterCronJobs 向调度器注册全部定时任务.
// ctx 需携带 storage.Manager，任务执行时从中取存储客户端.
func RegisterCronJobs(ctx context.Context, sched *scheduler.Scheduler, cfg *configs.JobsConfig) error {
	batch := cfg.OrphanSweepBatch
	if batch <= 0 {
		batch = configs.DefaultOrphanSweepBatch
	}

	// 孤儿资产回收：删除游戏时未能移除的存储对象定期重试
	if err := sched.AddCron(JobOrphanSweep, cfg.OrphanSweepCron, func(jobCtx context.Context) {
		svc := service.NewGameService(jobCtx)

		result, err := svc.SweepOrphans(jobCtx, batch)
		if err != nil {
			nlog.Logger().Error().Err(err).Msg("orphan sweep job failed")

			return
		}

		if result.Reclaimed > 0 || result.Failed > 0 {
			nlog.Logger().Info().
				Int("reclaimed", result.Reclaimed).
				Int("failed", result.Failed).
				Msg("orphan sweep finished")
		}
	}, ctx); err != nil {
		return err
	}

	return nil
}
