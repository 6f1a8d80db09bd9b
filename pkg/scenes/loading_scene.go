package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/aeiou/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ResourceConfigPath 资源配置在资源文件系统中的路径
const ResourceConfigPath = "data/resources.yaml"

// PlaySceneFactory 资源就绪后创建播放场景
type PlaySceneFactory func(assets *game.Assets) game.Scene

// LoadingScene represents the loading screen shown when the program starts.
// It loads one asset per frame and keeps drawing a black screen meanwhile.
// Once all assets are ready it switches the scene manager to the Play state.
//
// Any load failure is fatal: the error is kept and reported through Err,
// which ends the game loop.
type LoadingScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	newPlayScene    PlaySceneFactory
	loader          *game.AssetLoader
	debug           bool
	err             error
}

// NewLoadingScene creates a new loading scene.
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, factory PlaySceneFactory, debug bool) *LoadingScene {
	return &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		newPlayScene:    factory,
		loader:          game.NewAssetLoader(rm),
		debug:           debug,
	}
}

// OnEnter loads the resource configuration before the first asset.
func (s *LoadingScene) OnEnter() error {
	if err := s.resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return fmt.Errorf("资源配置加载失败: %w", err)
	}
	log.Printf("[LoadingScene] Resource config loaded, %d resources in group %s",
		s.resourceManager.GroupSize(game.AssetGroup), game.AssetGroup)
	return nil
}

// Update loads the next asset and enters the Play state once everything is loaded.
func (s *LoadingScene) Update(deltaTime float64) {
	if s.err != nil {
		return
	}

	done, err := s.loader.Step()
	if err != nil {
		s.err = err
		log.Printf("[LoadingScene] %v", err)
		return
	}
	if !done {
		return
	}

	log.Printf("[LoadingScene] All assets loaded")
	if err := s.sceneManager.SwitchTo(game.AppStatePlay, s.newPlayScene(s.loader.Assets())); err != nil {
		s.err = err
		log.Printf("[LoadingScene] %v", err)
	}
}

// Draw renders a black screen, with the load progress in debug mode.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("loading %.0f%%", s.loader.Progress()*100), 4, 4)
	}
}

// Progress returns the asset load progress (0.0 - 1.0).
func (s *LoadingScene) Progress() float64 {
	return s.loader.Progress()
}

// Err returns the fatal load error, if any.
func (s *LoadingScene) Err() error {
	return s.err
}
