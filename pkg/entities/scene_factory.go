package entities

import (
	"time"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/config"
	"github.com/decker502/aeiou/pkg/ecs"
	"github.com/decker502/aeiou/pkg/game"
	"github.com/decker502/aeiou/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneEntities 播放场景中生成的全部实体
type SceneEntities struct {
	Background   ecs.EntityID
	StatusIcon   ecs.EntityID
	ProgressBall ecs.EntityID
	TrackLine    ecs.EntityID
	Camera       ecs.EntityID
}

// newSheetComponent 按网格切分图集
// 图集未携带帧尺寸时由图片尺寸推算
func newSheetComponent(sheet game.Sheet, index int) *components.SpriteSheetComponent {
	comp := &components.SpriteSheetComponent{
		Sheet:  sheet.Image,
		Cols:   sheet.Cols,
		Rows:   sheet.Rows,
		FrameW: sheet.FrameW,
		FrameH: sheet.FrameH,
		Index:  index,
	}
	if sheet.Image != nil && sheet.Cols > 0 && sheet.Rows > 0 {
		bounds := sheet.Image.Bounds()
		if comp.FrameW == 0 {
			comp.FrameW = bounds.Dx() / sheet.Cols
		}
		if comp.FrameH == 0 {
			comp.FrameH = bounds.Dy() / sheet.Rows
		}
	}
	return comp
}

// NewBackgroundEntity 创建背景动画实体
// 参数:
//   - manager: EntityManager 实例
//   - sheet: 背景动画图集
//   - frameCount: 循环帧数
//   - period: 每帧时长
//
// 返回: 创建的实体ID
func NewBackgroundEntity(manager *ecs.EntityManager, sheet game.Sheet, frameCount int, period time.Duration) ecs.EntityID {
	id := manager.CreateEntity()

	// 背景位于原点，层级最低
	manager.AddComponent(id, &components.TransformComponent{X: 0, Y: 0, Z: 0})

	// 从第 0 帧开始
	manager.AddComponent(id, newSheetComponent(sheet, 0))

	manager.AddComponent(id, &components.AnimationTimerComponent{
		Timer:      utils.NewRepeatingTimer(period),
		FrameCount: frameCount,
	})

	return id
}

// NewStatusIconEntity 创建播放状态图标实体
// 初始显示播放图标（帧 1），因为进入播放状态时音乐立即开始
func NewStatusIconEntity(manager *ecs.EntityManager, sheet game.Sheet) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.TransformComponent{
		X: config.StatusIconX,
		Y: config.StatusIconY,
		Z: config.ForegroundZ,
	})
	manager.AddComponent(id, newSheetComponent(sheet, components.StatusIconPlaying))
	manager.AddComponent(id, &components.StatusIconComponent{})

	return id
}

// NewProgressBallEntity 创建进度球实体
func NewProgressBallEntity(manager *ecs.EntityManager, image *ebiten.Image) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.TransformComponent{
		X: config.ProgressBallStartX,
		Y: config.TrackY,
		Z: config.ForegroundZ,
	})
	manager.AddComponent(id, &components.SpriteComponent{Image: image})
	manager.AddComponent(id, &components.ProgressBallComponent{})

	return id
}

// NewTrackLineEntity 创建进度轨道线实体
func NewTrackLineEntity(manager *ecs.EntityManager, image *ebiten.Image) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.TransformComponent{
		X: config.TrackLineX,
		Y: config.TrackY,
		Z: config.ForegroundZ,
	})
	manager.AddComponent(id, &components.SpriteComponent{Image: image})

	return id
}

// NewCameraEntity 创建摄像机实体，视图中心位于世界原点
func NewCameraEntity(manager *ecs.EntityManager) ecs.EntityID {
	id := manager.CreateEntity()
	manager.AddComponent(id, &components.CameraComponent{X: 0, Y: 0})
	return id
}

// SpawnScene 生成播放场景：四个精灵加一个摄像机
func SpawnScene(manager *ecs.EntityManager, assets *game.Assets, anim config.AnimationConfig) SceneEntities {
	return SceneEntities{
		Background:   NewBackgroundEntity(manager, assets.Anim, anim.FrameCount, anim.Period()),
		StatusIcon:   NewStatusIconEntity(manager, assets.Media),
		ProgressBall: NewProgressBallEntity(manager, assets.Ball),
		TrackLine:    NewTrackLineEntity(manager, assets.Line),
		Camera:       NewCameraEntity(manager),
	}
}
