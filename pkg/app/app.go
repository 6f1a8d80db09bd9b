// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：main.go 只负责解析参数、
// 设置窗口并调用 NewApp()。
package app

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/decker502/aeiou/pkg/config"
	"github.com/decker502/aeiou/pkg/embedded"
	"github.com/decker502/aeiou/pkg/game"
	"github.com/decker502/aeiou/pkg/scenes"
	"github.com/decker502/aeiou/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AppConfigPath 嵌入的默认应用配置
const AppConfigPath = "data/aeiou.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// ConfigPath 磁盘上的应用配置文件，为空则使用嵌入的 data/aeiou.yaml
	ConfigPath string
	// Watch 监听 ConfigPath 的变化并热加载（需要 ConfigPath）
	Watch bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg             *config.AppConfig
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	watcher         *config.ConfigWatcher
	playScene       *scenes.PlayScene
	verbose         bool

	// 逻辑屏幕尺寸，启动时确定，热加载不改变
	screenWidth  int
	screenHeight int

	// sleep 退出淡出时每步的等待
	sleep func(time.Duration)
}

// LoadConfig 加载应用配置
// path 为空时读取嵌入的默认配置
func LoadConfig(path string) (*config.AppConfig, error) {
	if path != "" {
		return config.LoadAppConfig(path)
	}
	data, err := embedded.ReadFile(AppConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", AppConfigPath, err)
	}
	return config.ParseAppConfig(data)
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化资源文件系统。
func NewApp(cfg Config, appCfg *config.AppConfig) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 用户设置：只有启用存储时才读写磁盘
	settingsManager, err := newSettingsManager(appCfg)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(appCfg.Audio.SampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(embedded.FS(), audioContext)

	audioManager := game.NewAudioManager(settingsManager)
	audioManager.SetFadeDurations(appCfg.Audio.PauseFade, appCfg.Audio.StopFade)
	audioManager.SetFadeCurve(fadeCurve(appCfg))
	log.Printf("[App] AudioManager initialized (%d Hz)", appCfg.Audio.SampleRate)

	a := &App{
		cfg:             appCfg,
		sceneManager:    game.NewSceneManager(),
		audioManager:    audioManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		screenWidth:     appCfg.Window.Width,
		screenHeight:    appCfg.Window.Height,
		sleep:           time.Sleep,
	}

	loadingScene := scenes.NewLoadingScene(resourceManager, a.sceneManager, a.newPlayScene, cfg.Verbose)
	if err := a.sceneManager.SwitchTo(game.AppStateLoading, loadingScene); err != nil {
		return nil, err
	}

	if cfg.Watch && cfg.ConfigPath != "" {
		watcher, err := config.NewConfigWatcher(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		a.watcher = watcher
		log.Printf("[App] Watching %s", cfg.ConfigPath)
	}

	return a, nil
}

// newSettingsManager 创建设置管理器，默认音量来自应用配置
func newSettingsManager(appCfg *config.AppConfig) (*game.SettingsManager, error) {
	defaults := game.UserSettings{MusicVolume: appCfg.Audio.Volume}
	if !appCfg.Storage.Enabled {
		return game.NewSettingsManager(nil, defaults), nil
	}

	storage, err := game.OpenSettingsStorage(appCfg.Storage.AppName)
	if err != nil {
		return nil, err
	}
	return game.NewSettingsManager(storage, defaults), nil
}

// fadeCurve 返回配置中的淡出曲线（配置已校验过名称）
func fadeCurve(cfg *config.AppConfig) utils.Easing {
	curve, _ := utils.EasingByName(cfg.Audio.FadeCurve)
	return curve
}

// newPlayScene 资源就绪后由加载场景调用
func (a *App) newPlayScene(assets *game.Assets) game.Scene {
	a.playScene = scenes.NewPlayScene(assets, a.audioManager, scenes.PlaySceneOptions{
		Config: a.cfg,
		Debug:  a.verbose,
	})
	return a.playScene
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 60 次）；返回错误时结束游戏循环
func (a *App) Update() error {
	a.pollConfig()

	deltaTime := 1.0 / 60.0
	return a.sceneManager.Update(deltaTime)
}

// pollConfig 非阻塞地应用热加载的配置
func (a *App) pollConfig() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-a.watcher.Updates:
		if ok {
			a.ApplyConfig(cfg)
		}
	case err, ok := <-a.watcher.Errors:
		if ok {
			log.Printf("[App] Config reload failed: %v", err)
		}
	default:
	}
}

// ApplyConfig 应用新的配置：音量、淡出时长与进度映射
// 窗口尺寸与采样率只在启动时生效
func (a *App) ApplyConfig(cfg *config.AppConfig) {
	a.cfg = cfg
	a.settingsManager.SetMusicVolume(cfg.Audio.Volume)
	a.audioManager.SetFadeDurations(cfg.Audio.PauseFade, cfg.Audio.StopFade)
	a.audioManager.SetFadeCurve(fadeCurve(cfg))
	a.audioManager.ApplyVolume()
	if a.playScene != nil {
		a.playScene.ApplyConfig(cfg)
	}
	log.Printf("[App] Applied config: volume %.2f, fades %.2fs/%.2fs", cfg.Audio.Volume, cfg.Audio.PauseFade, cfg.Audio.StopFade)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// Close 停止监听、淡出并释放播放实例、保存设置
func (a *App) Close() error {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: failed to close watcher: %v", err)
		}
	}
	a.audioManager.StopAndWait(a.sleep)
	a.audioManager.Close()
	return a.settingsManager.Save()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
