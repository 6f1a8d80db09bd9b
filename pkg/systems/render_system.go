package systems

import (
	"sort"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/ecs"
	"github.com/decker502/aeiou/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有拥有位置与图像的实体
//
// 图像来源：
//   - SpriteSheetComponent: 图集中 Index 选中的帧
//   - SpriteComponent: 整张图片
//
// 实体按 Z 从小到大绘制，Z 相同时按创建顺序。
// 位置是图片中心的世界坐标，由摄像机实体决定视图中心。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// drawItem 一次绘制
type drawItem struct {
	id    ecs.EntityID
	image *ebiten.Image
	x, y  float64 // 图片中心的世界坐标
	z     float64
}

// camera 返回摄像机中心；没有摄像机时为原点
func (s *RenderSystem) camera() (float64, float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CameraComponent](s.entityManager) {
		if cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, id); ok {
			return cam.X, cam.Y
		}
	}
	return 0, 0
}

// collect 按绘制顺序收集可绘制实体
func (s *RenderSystem) collect() []drawItem {
	entities := ecs.GetEntitiesWith1[*components.TransformComponent](s.entityManager)
	items := make([]drawItem, 0, len(entities))

	for _, id := range entities {
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}

		var img *ebiten.Image
		if sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id); ok {
			img = sheet.CurrentFrame()
		} else if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			img = sprite.Image
		}
		if img == nil {
			continue
		}

		items = append(items, drawItem{id: id, image: img, x: transform.X, y: transform.Y, z: transform.Z})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].z < items[j].z
	})
	return items
}

// Draw 绘制所有实体到屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	cameraX, cameraY := s.camera()
	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, item := range s.collect() {
		bounds := item.image.Bounds()
		x, y := utils.WorldToScreen(item.x, item.y, cameraX, cameraY, screenW, screenH, bounds.Dx(), bounds.Dy())

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(item.image, op)
	}
}
