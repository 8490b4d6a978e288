package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled bool             `mapstructure:"enabled"` // 总开关
	Game    GameEventsConfig `mapstructure:"game"`
}

// GameEventsConfig 针对游戏目录领域的事件开关。
type GameEventsConfig struct {
	Created       bool `mapstructure:"created"`
	Updated       bool `mapstructure:"updated"`
	Deleted       bool `mapstructure:"deleted"`
	Downloaded    bool `mapstructure:"downloaded"`
	TrialPlayed   bool `mapstructure:"trial_played"`
	AssetOrphaned bool `mapstructure:"asset_orphaned"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 目录变更事件：默认开启，下游缓存和统计依赖它们
	v.SetDefault("events.game.created", true)
	v.SetDefault("events.game.updated", true)
	v.SetDefault("events.game.deleted", true)
	v.SetDefault("events.game.asset_orphaned", true)

	// 行为事件：量大，默认关闭，按需开启
	v.SetDefault("events.game.downloaded", false)
	v.SetDefault("events.game.trial_played", false)
}
