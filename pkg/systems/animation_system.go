package systems

import (
	"time"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/ecs"
)

// AnimationSystem 推进图集动画
// 每个计时器周期结束时，图集前进一帧，到达末帧后回到第 0 帧
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有拥有动画计时器和图集组件的实体
//
// 一帧内即使完成了多个周期也只前进一帧。
func (s *AnimationSystem) Update(deltaTime float64) {
	delta := time.Duration(deltaTime * float64(time.Second))

	entities := ecs.GetEntitiesWith2[*components.AnimationTimerComponent, *components.SpriteSheetComponent](s.entityManager)
	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.AnimationTimerComponent](s.entityManager, id)
		if !ok || anim.Timer == nil {
			continue
		}
		sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if !anim.Timer.Tick(delta) {
			continue
		}

		frameCount := anim.FrameCount
		if frameCount <= 0 {
			frameCount = sheet.FrameCount()
		}
		if frameCount <= 0 {
			continue
		}
		sheet.Index = (sheet.Index + 1) % frameCount
	}
}
