package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (loading screen, playback screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterer 是一个可选接口，用于场景在成为活动场景时执行一次性初始化
//
// 实现此接口的场景会在 SceneManager.SwitchTo 中被调用 OnEnter()，
// 每个场景只调用一次。返回错误时切换失败，当前场景保持不变。
type Enterer interface {
	OnEnter() error
}

// Failer 是一个可选接口，场景通过它报告致命错误
//
// SceneManager.Update 在场景更新后检查 Err()，非 nil 时返回给 App，
// App 再将其返回给 Ebitengine 以结束游戏循环。
type Failer interface {
	Err() error
}
