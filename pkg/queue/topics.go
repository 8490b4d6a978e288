// Package queue 定义消息主题常量与通配模式，供发布/订阅使用.
package queue

// 主题命名规范：gv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：game(游戏目录)、asset(存储资产)
// 动作：目录变更(created/updated/deleted)、玩家行为(downloaded/trial.played)、资产回收(orphaned/reclaimed)

const (
	// 游戏目录领域.
	TopicGameCreated = "gv.game.created" // 新游戏上架（元数据已写入数据库）
	TopicGameUpdated = "gv.game.updated" // 游戏元数据或资产更新
	TopicGameDeleted = "gv.game.deleted" // 游戏下架（数据库行已删除，资产可能仍待回收）

	// 玩家行为领域.
	TopicGameDownloaded = "gv.game.downloaded"   // 玩家获取了下载链接
	TopicTrialPlayed    = "gv.game.trial.played" // 玩家启动了试玩

	// 存储资产回收领域.
	TopicAssetOrphaned  = "gv.asset.orphaned"  // 删除游戏时存储对象删除失败，资产进入孤儿队列
	TopicAssetReclaimed = "gv.asset.reclaimed" // 孤儿资产被后台任务成功回收
)

// 主题分组，用于批量操作或权限控制.
var (
	// 游戏目录相关主题集合.
	GameTopics = []string{
		TopicGameCreated, TopicGameUpdated, TopicGameDeleted,
		TopicGameDownloaded, TopicTrialPlayed,
	}

	// 存储资产相关主题集合.
	AssetTopics = []string{
		TopicAssetOrphaned, TopicAssetReclaimed,
	}
)
