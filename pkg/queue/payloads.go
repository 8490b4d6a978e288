package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 游戏目录领域 --------------------------

// GameRef 标识一款游戏.
type GameRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// AssetRef 标识游戏在对象存储中的一个资产.
type AssetRef struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
	Size      int64  `json:"size,omitempty"`
}

// GameCreatedPayload 新游戏上架.
type GameCreatedPayload struct {
	Game   GameRef    `json:"game"`
	Assets []AssetRef `json:"assets,omitempty"`
	Actor  string     `json:"actor,omitempty"` // 操作者（管理员）标识
}

// GameUpdatedPayload 游戏元数据或资产更新.
type GameUpdatedPayload struct {
	Game           GameRef    `json:"game"`
	ReplacedAssets []AssetRef `json:"replaced_assets,omitempty"` // 被新资产替换并已删除的旧对象
	Actor          string     `json:"actor,omitempty"`
}

// GameDeletedPayload 游戏下架.
type GameDeletedPayload struct {
	Game GameRef `json:"game"`
	// OrphanedAssets 删除存储对象失败时遗留的资产，等待后台回收.
	OrphanedAssets []AssetRef `json:"orphaned_assets,omitempty"`
	Actor          string     `json:"actor,omitempty"`
}

// -------------------------- 玩家行为领域 --------------------------

// GameDownloadedPayload 玩家获取了下载链接.
type GameDownloadedPayload struct {
	Game   GameRef   `json:"game"`
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
}

// TrialPlayedPayload 玩家启动了试玩.
type TrialPlayedPayload struct {
	Game   GameRef   `json:"game"`
	UserID string    `json:"user_id,omitempty"` // 匿名试玩时为空
	At     time.Time `json:"at"`
}

// -------------------------- 存储资产回收领域 --------------------------

// AssetOrphanedPayload 资产进入孤儿队列.
type AssetOrphanedPayload struct {
	Game  GameRef  `json:"game"`
	Asset AssetRef `json:"asset"`
	Error string   `json:"error,omitempty"` // 导致遗留的删除错误
}

// AssetReclaimedPayload 孤儿资产被后台任务回收.
type AssetReclaimedPayload struct {
	Asset AssetRef `json:"asset"`
}
