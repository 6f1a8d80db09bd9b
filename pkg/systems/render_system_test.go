package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func addSprite(em *ecs.EntityManager, img *ebiten.Image, x, y, z float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{X: x, Y: y, Z: z})
	em.AddComponent(id, &components.SpriteComponent{Image: img})
	return id
}

func TestRenderSystem_CollectOrdersByZ(t *testing.T) {
	em := ecs.NewEntityManager()
	ball := addSprite(em, ebiten.NewImage(4, 4), -164, -233, 1)
	background := addSprite(em, ebiten.NewImage(10, 10), 0, 0, 0)
	line := addSprite(em, ebiten.NewImage(8, 2), 0, -233, 1)

	items := NewRenderSystem(em).collect()

	want := []ecs.EntityID{background, ball, line}
	if len(items) != len(want) {
		t.Fatalf("collected %d items, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].id != id {
			t.Errorf("items[%d] = entity %d, want %d", i, items[i].id, id)
		}
	}
}

func TestRenderSystem_CollectUsesSheetFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{})
	em.AddComponent(id, &components.SpriteSheetComponent{
		Sheet:  ebiten.NewImage(128, 64),
		FrameW: 64,
		FrameH: 64,
		Cols:   2,
		Rows:   1,
		Index:  1,
	})

	items := NewRenderSystem(em).collect()
	if len(items) != 1 {
		t.Fatalf("collected %d items, want 1", len(items))
	}

	bounds := items[0].image.Bounds()
	if bounds.Min.X != 64 || bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Errorf("frame bounds = %v, want the second 64x64 frame", bounds)
	}
}

func TestRenderSystem_SkipsEntitiesWithoutImage(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{})
	addSprite(em, nil, 0, 0, 0)

	if items := NewRenderSystem(em).collect(); len(items) != 0 {
		t.Errorf("collected %d items, want 0", len(items))
	}
}

func TestRenderSystem_Draw(t *testing.T) {
	em := ecs.NewEntityManager()
	camID := em.CreateEntity()
	em.AddComponent(camID, &components.CameraComponent{})

	img := ebiten.NewImage(10, 10)
	img.Fill(color.White)
	addSprite(em, img, 0, 0, 0)

	screen := ebiten.NewImage(100, 100)
	NewRenderSystem(em).Draw(screen) // Should not panic

	cx, cy := NewRenderSystem(em).camera()
	if cx != 0 || cy != 0 {
		t.Errorf("camera = (%v, %v), want origin", cx, cy)
	}
}
