package components

// StatusIconComponent 标记播放状态图标实体
// 图标帧 0 表示暂停，帧 1 表示播放
type StatusIconComponent struct{}

// 状态图标帧索引
const (
	StatusIconPaused  = 0
	StatusIconPlaying = 1
)

// ProgressBallComponent 标记进度球实体
// 其 X 坐标每帧根据音乐播放位置重新计算
type ProgressBallComponent struct{}
