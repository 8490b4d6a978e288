package configs

import "github.com/spf13/viper"

const (
	DefaultJobsEnabled      = true
	DefaultOrphanSweepCron  = "*/5 * * * *" // 每 5 分钟
	DefaultOrphanSweepBatch = 50
)

// JobsConfig 后台定时任务配置.
type JobsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// OrphanSweepCron 孤儿资产回收的 cron 表达式
	OrphanSweepCron string `mapstructure:"orphan_sweep_cron"`
	// OrphanSweepBatch 单轮回收的最大条数
	OrphanSweepBatch int `mapstructure:"orphan_sweep_batch"`
}

// setDefaults 设置任务配置的默认值.
func (c *JobsConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("jobs.enabled", DefaultJobsEnabled)
	v.SetDefault("jobs.orphan_sweep_cron", DefaultOrphanSweepCron)
	v.SetDefault("jobs.orphan_sweep_batch", DefaultOrphanSweepBatch)
}
