package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/aeiou/pkg/config"
	"github.com/decker502/aeiou/pkg/ecs"
	"github.com/decker502/aeiou/pkg/entities"
	"github.com/decker502/aeiou/pkg/game"
	"github.com/decker502/aeiou/pkg/systems"
	"github.com/decker502/aeiou/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// PlaySceneOptions 播放场景参数
type PlaySceneOptions struct {
	Config *config.AppConfig // nil 时使用默认配置
	Key    utils.KeyTrigger  // 播放/暂停切换键，nil 时使用空格键
	Debug  bool              // 绘制状态与播放位置
}

// PlayScene 播放状态的场景
//
// 进入时生成四个精灵和一个摄像机并开始播放音乐，之后每帧按顺序运行：
//  1. 播放切换（空格键）
//  2. 播放控制器状态推进
//  3. 背景动画
//  4. 进度球
type PlayScene struct {
	entityManager *ecs.EntityManager
	assets        *game.Assets
	music         game.TrackSource
	audioManager  *game.AudioManager
	cfg           *config.AppConfig
	key           utils.KeyTrigger
	debug         bool

	entities entities.SceneEntities

	// Systems
	toggleSystem    *systems.PlaybackToggleSystem
	animationSystem *systems.AnimationSystem
	progressSystem  *systems.ProgressSystem
	renderSystem    *systems.RenderSystem
}

// NewPlayScene creates the play scene. Entities and playback start in OnEnter.
func NewPlayScene(assets *game.Assets, audioManager *game.AudioManager, opts PlaySceneOptions) *PlayScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultAppConfig()
	}
	key := opts.Key
	if key == nil {
		key = utils.JustPressedKey(ebiten.KeySpace)
	}

	em := ecs.NewEntityManager()
	scene := &PlayScene{
		entityManager: em,
		assets:        assets,
		audioManager:  audioManager,
		cfg:           cfg,
		key:           key,
		debug:         opts.Debug,
		renderSystem:  systems.NewRenderSystem(em),
	}
	if assets.Music != nil {
		scene.music = assets.Music
	}
	return scene
}

// OnEnter spawns the scene entities and starts the music once.
func (s *PlayScene) OnEnter() error {
	s.entities = entities.SpawnScene(s.entityManager, s.assets, s.cfg.Animation)
	log.Printf("[PlayScene] Spawned %d entities", s.entityManager.EntityCount())

	if _, err := s.audioManager.Play(s.music); err != nil {
		return fmt.Errorf("failed to start music: %w", err)
	}

	var measured float64
	if s.music != nil {
		measured = s.music.Duration().Seconds()
	}
	log.Printf("[PlayScene] Music started (measured length %.2fs)", measured)

	s.toggleSystem = systems.NewPlaybackToggleSystem(s.entityManager, s.audioManager, s.music, s.key)
	s.animationSystem = systems.NewAnimationSystem(s.entityManager)
	s.progressSystem = systems.NewProgressSystem(s.entityManager, s.audioManager, s.progressMapping())
	return nil
}

// progressMapping 根据当前配置与音乐时长计算进度映射
func (s *PlayScene) progressMapping() systems.ProgressMapping {
	if s.music == nil {
		return systems.NewProgressMapping(s.cfg.Progress, 0)
	}
	return systems.NewProgressMapping(s.cfg.Progress, s.music.Duration())
}

// ApplyConfig 应用热加载的配置（进度映射）
func (s *PlayScene) ApplyConfig(cfg *config.AppConfig) {
	s.cfg = cfg
	if s.progressSystem != nil {
		s.progressSystem.SetMapping(s.progressMapping())
	}
}

// Update runs the per-frame systems.
func (s *PlayScene) Update(deltaTime float64) {
	if s.toggleSystem == nil {
		return
	}
	s.toggleSystem.Update(deltaTime)
	s.audioManager.Update(deltaTime)
	s.animationSystem.Update(deltaTime)
	s.progressSystem.Update(deltaTime)
}

// Draw renders the sprites, plus the playback state in debug mode.
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.renderSystem.Draw(screen)

	if s.debug {
		s.drawDebugInfo(screen)
	}
}

// drawDebugInfo 绘制播放状态
func (s *PlayScene) drawDebugInfo(screen *ebiten.Image) {
	line := s.audioManager.Status().String()
	if pos, ok := s.audioManager.Position(); ok {
		line = fmt.Sprintf("%s %.2fs", line, pos)
	}
	ebitenutil.DebugPrintAt(screen, line, 4, 4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), 4, 20)
}

// EntityManager 返回场景的实体管理器
func (s *PlayScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Entities 返回场景中生成的实体
func (s *PlayScene) Entities() entities.SceneEntities {
	return s.entities
}
