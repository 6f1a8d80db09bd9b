package game

// PlaybackStatus 播放实例的状态
//
// 六种状态与切换逻辑一一对应，不能合并：
//   - Queued:   已创建，尚未开始出声（下一次 Update 开始播放）
//   - Playing:  正在播放
//   - Pausing:  正在淡出，淡出结束后变为 Paused
//   - Paused:   已暂停，可以恢复
//   - Stopping: 正在淡出，淡出结束后变为 Stopped
//   - Stopped:  已停止或播放结束，只能重新播放
type PlaybackStatus int

const (
	PlaybackQueued PlaybackStatus = iota
	PlaybackPlaying
	PlaybackPausing
	PlaybackPaused
	PlaybackStopping
	PlaybackStopped
)

// String 返回状态名称（用于日志）
func (s PlaybackStatus) String() string {
	switch s {
	case PlaybackQueued:
		return "Queued"
	case PlaybackPlaying:
		return "Playing"
	case PlaybackPausing:
		return "Pausing"
	case PlaybackPaused:
		return "Paused"
	case PlaybackStopping:
		return "Stopping"
	case PlaybackStopped:
		return "Stopped"
	}
	return "Unknown"
}

// HasPosition 该状态下播放位置是否有定义
// Queued 尚未开始，Stopped 已经结束，两者都没有位置
func (s PlaybackStatus) HasPosition() bool {
	switch s {
	case PlaybackPlaying, PlaybackPausing, PlaybackPaused, PlaybackStopping:
		return true
	}
	return false
}
