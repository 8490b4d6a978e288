package jobs

// 任务名称，调度器中唯一.
const (
	JobOrphanSweep = "orphan_asset_sweep"
)
