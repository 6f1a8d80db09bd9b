package systems

import (
	"testing"
	"time"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/ecs"
	"github.com/decker502/aeiou/pkg/utils"
)

// newAnimatedEntity 创建 7×9 网格的背景动画实体
func newAnimatedEntity(em *ecs.EntityManager, period time.Duration) (ecs.EntityID, *components.SpriteSheetComponent) {
	id := em.CreateEntity()
	sheet := &components.SpriteSheetComponent{Cols: 7, Rows: 9, FrameW: 10, FrameH: 10}
	em.AddComponent(id, sheet)
	em.AddComponent(id, &components.AnimationTimerComponent{
		Timer:      utils.NewRepeatingTimer(period),
		FrameCount: 63,
	})
	return id, sheet
}

func TestAnimationSystem_AdvancesOncePerPeriod(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	_, sheet := newAnimatedEntity(em, 100*time.Millisecond)

	// 6 帧 (≈99.99ms) 还不足一个周期
	for i := 0; i < 6; i++ {
		system.Update(1.0 / 60.0)
	}
	if sheet.Index != 0 {
		t.Fatalf("Index after 6 frames = %d, want 0", sheet.Index)
	}

	system.Update(1.0 / 60.0)
	if sheet.Index != 1 {
		t.Errorf("Index after 7 frames = %d, want 1", sheet.Index)
	}
}

func TestAnimationSystem_WrapsAt63(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	_, sheet := newAnimatedEntity(em, 100*time.Millisecond)

	for i := 1; i <= 63; i++ {
		system.Update(0.1)
		if want := i % 63; sheet.Index != want {
			t.Fatalf("Index after %d periods = %d, want %d", i, sheet.Index, want)
		}
	}
}

func TestAnimationSystem_LongFrameAdvancesOne(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	_, sheet := newAnimatedEntity(em, 100*time.Millisecond)

	sheet.Index = 62
	system.Update(0.35) // 三个半周期

	if sheet.Index != 0 {
		t.Errorf("Index = %d, want 0", sheet.Index)
	}
}

func TestAnimationSystem_FrameCountFallback(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := em.CreateEntity()
	sheet := &components.SpriteSheetComponent{Cols: 2, Rows: 1, Index: 1}
	em.AddComponent(id, sheet)
	em.AddComponent(id, &components.AnimationTimerComponent{Timer: utils.NewRepeatingTimer(100 * time.Millisecond)})

	system.Update(0.1)

	if sheet.Index != 0 {
		t.Errorf("Index = %d, want 0 (wrapped by sheet frame count)", sheet.Index)
	}
}

func TestAnimationSystem_IgnoresEntitiesWithoutTimer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	id := em.CreateEntity()
	icon := &components.SpriteSheetComponent{Cols: 2, Rows: 1, Index: 1}
	em.AddComponent(id, icon)

	system.Update(1.0)

	if icon.Index != 1 {
		t.Errorf("Sheet without timer changed frame to %d", icon.Index)
	}
}
