package components

import "github.com/decker502/aeiou/pkg/utils"

// AnimationTimerComponent 背景动画计时器
// 计时器每完成一个周期，同实体上的 SpriteSheetComponent 前进一帧，
// 到达 FrameCount 后回到 0
type AnimationTimerComponent struct {
	Timer      *utils.RepeatingTimer
	FrameCount int
}
