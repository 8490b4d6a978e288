package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishGameCreated 发布 gv.game.created 事件。
// 游戏元数据写入数据库、资产上传完成后调用，通知下游（缓存、推荐、统计）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishGameCreated(pub message.Publisher, payload GameCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicGameCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicGameCreated, msg)
}

// ParseGameCreated 将 Watermill 消息解析为强类型 Envelope（GameCreatedPayload）。
func ParseGameCreated(msg *message.Message) (Message[GameCreatedPayload], error) {
	return ParseWatermillMessage[GameCreatedPayload](msg)
}

// PublishGameUpdated 发布 gv.game.updated 事件。
func PublishGameUpdated(pub message.Publisher, payload GameUpdatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicGameUpdated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicGameUpdated, msg)
}

// ParseGameUpdated 将 Watermill 消息解析为强类型 Envelope（GameUpdatedPayload）。
func ParseGameUpdated(msg *message.Message) (Message[GameUpdatedPayload], error) {
	return ParseWatermillMessage[GameUpdatedPayload](msg)
}

// PublishGameDeleted 发布 gv.game.deleted 事件。
func PublishGameDeleted(pub message.Publisher, payload GameDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicGameDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicGameDeleted, msg)
}

// ParseGameDeleted 将 Watermill 消息解析为强类型 Envelope（GameDeletedPayload）。
func ParseGameDeleted(msg *message.Message) (Message[GameDeletedPayload], error) {
	return ParseWatermillMessage[GameDeletedPayload](msg)
}

// PublishGameDownloaded 发布 gv.game.downloaded 事件。
func PublishGameDownloaded(pub message.Publisher, payload GameDownloadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicGameDownloaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicGameDownloaded, msg)
}

// ParseGameDownloaded 将 Watermill 消息解析为强类型 Envelope（GameDownloadedPayload）。
func ParseGameDownloaded(msg *message.Message) (Message[GameDownloadedPayload], error) {
	return ParseWatermillMessage[GameDownloadedPayload](msg)
}

// PublishTrialPlayed 发布 gv.game.trial.played 事件。
func PublishTrialPlayed(pub message.Publisher, payload TrialPlayedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicTrialPlayed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicTrialPlayed, msg)
}

// ParseTrialPlayed 将 Watermill 消息解析为强类型 Envelope（TrialPlayedPayload）。
func ParseTrialPlayed(msg *message.Message) (Message[TrialPlayedPayload], error) {
	return ParseWatermillMessage[TrialPlayedPayload](msg)
}

// PublishAssetOrphaned 发布 gv.asset.orphaned 事件。
// 删除游戏时存储对象删除失败会触发，供监控告警与人工介入。
func PublishAssetOrphaned(pub message.Publisher, payload AssetOrphanedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicAssetOrphaned, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicAssetOrphaned, msg)
}

// ParseAssetOrphaned 将 Watermill 消息解析为强类型 Envelope（AssetOrphanedPayload）。
func ParseAssetOrphaned(msg *message.Message) (Message[AssetOrphanedPayload], error) {
	return ParseWatermillMessage[AssetOrphanedPayload](msg)
}

// PublishAssetReclaimed 发布 gv.asset.reclaimed 事件。
func PublishAssetReclaimed(pub message.Publisher, payload AssetReclaimedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicAssetReclaimed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicAssetReclaimed, msg)
}

// ParseAssetReclaimed 将 Watermill 消息解析为强类型 Envelope（AssetReclaimedPayload）。
func ParseAssetReclaimed(msg *message.Message) (Message[AssetReclaimedPayload], error) {
	return ParseWatermillMessage[AssetReclaimedPayload](msg)
}
