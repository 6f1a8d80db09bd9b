package config

// 布局配置常量
// 所有坐标使用"世界坐标系"：原点在窗口中心，X 向右，Y 向上

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 窗口宽度（像素），与背景动画单帧宽度一致
	GameWindowWidth = 498

	// GameWindowHeight 窗口高度（像素），与背景动画单帧高度一致
	GameWindowHeight = 498

	// GameWindowTitle 窗口标题
	GameWindowTitle = "aeiou"
)

// Background Animation (背景动画图集，帧尺寸见 data/resources.yaml)
const (
	// BackgroundCols 背景动画图集列数
	BackgroundCols = 7

	// BackgroundRows 背景动画图集行数
	BackgroundRows = 9

	// BackgroundFrameCount 背景动画总帧数 (7×9)
	BackgroundFrameCount = BackgroundCols * BackgroundRows // 63
)

// Status Icon (播放状态图标)
const (
	// StatusIconX / StatusIconY 状态图标位置：中心正下方
	StatusIconX = 0.0
	StatusIconY = -166.0
)

// Progress Track (进度轨道)
const (
	// TrackY 轨道线与进度球的 Y 坐标
	TrackY = -233.0

	// TrackLineX 轨道线中心 X 坐标
	TrackLineX = 0.0

	// ProgressBallStartX 进度球初始 X 坐标（轨道左端）
	ProgressBallStartX = -164.0

	// ForegroundZ 前景层级（图标、进度球、轨道线），背景为 0
	ForegroundZ = 1.0
)
