package app

import (
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/aeiou/pkg/config"
	"github.com/decker502/aeiou/pkg/embedded"
	"github.com/decker502/aeiou/pkg/game"
)

func initTestData(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile("../../data/aeiou.yaml")
	if err != nil {
		t.Fatalf("failed to read default config: %v", err)
	}
	resources, err := os.ReadFile("../../data/resources.yaml")
	if err != nil {
		t.Fatalf("failed to read resource config: %v", err)
	}
	embedded.Init(fstest.MapFS{}, fstest.MapFS{
		"data/aeiou.yaml":     {Data: data},
		"data/resources.yaml": {Data: resources},
	})
}

// TestLoadConfigEmbedded 嵌入的默认配置与代码中的默认值一致
func TestLoadConfigEmbedded(t *testing.T) {
	initTestData(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := config.DefaultAppConfig()
	if *cfg != *want {
		t.Errorf("embedded config = %+v, want %+v", cfg, want)
	}
}

// TestLoadConfigMissingFile 磁盘配置不存在时返回错误
func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("does-not-exist.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

// TestNewApp Ebitengine 只允许创建一个音频上下文，所有检查放在同一个测试中
func TestNewApp(t *testing.T) {
	initTestData(t)
	cfg := config.DefaultAppConfig()

	a, err := NewApp(Config{}, cfg)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if a.GetSceneManager().State() != game.AppStateLoading {
		t.Errorf("initial state = %v, want Loading", a.GetSceneManager().State())
	}
	if w, h := a.Layout(1024, 768); w != 498 || h != 498 {
		t.Errorf("Layout = %dx%d, want 498x498", w, h)
	}
	if a.IsVerbose() {
		t.Error("IsVerbose should be false")
	}

	// 媒体文件不存在：第一帧加载失败并结束游戏循环
	if err := a.Update(); err == nil {
		t.Error("Update should report the missing asset")
	}

	reloaded := config.DefaultAppConfig()
	reloaded.Audio.Volume = 0.25
	reloaded.Audio.PauseFade = 0.5
	reloaded.Audio.StopFade = 0.5
	reloaded.Window.Width = 800
	a.ApplyConfig(reloaded)
	if got := a.settingsManager.EffectiveVolume(); got != 0.25 {
		t.Errorf("volume after ApplyConfig = %v, want 0.25", got)
	}
	// 窗口尺寸只在启动时生效
	if w, h := a.Layout(1024, 768); w != 498 || h != 498 {
		t.Errorf("Layout after reload = %dx%d, want 498x498", w, h)
	}

	// 没有播放实例时退出不等待淡出
	a.sleep = func(time.Duration) { t.Error("Close should not wait without an instance") }

	if err := a.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// TestNewSettingsManager 启用存储时读取已保存的设置，否则使用配置中的音量
func TestNewSettingsManager(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := config.DefaultAppConfig()
	cfg.Audio.Volume = 0.9
	cfg.Storage.AppName = "test_aeiou_app_settings"

	storage, err := game.OpenSettingsStorage(cfg.Storage.AppName)
	if err != nil {
		t.Fatalf("OpenSettingsStorage failed: %v", err)
	}
	saved := game.NewSettingsManager(storage, game.UserSettings{MusicVolume: 1})
	saved.SetMusicVolume(0.3)
	if err := saved.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sm, err := newSettingsManager(cfg)
	if err != nil {
		t.Fatalf("newSettingsManager (disabled) failed: %v", err)
	}
	if got := sm.EffectiveVolume(); got != 0.9 {
		t.Errorf("volume without storage = %v, want 0.9", got)
	}

	cfg.Storage.Enabled = true
	sm, err = newSettingsManager(cfg)
	if err != nil {
		t.Fatalf("newSettingsManager (enabled) failed: %v", err)
	}
	if got := sm.EffectiveVolume(); got != 0.3 {
		t.Errorf("volume with storage = %v, want saved 0.3", got)
	}
}
