package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MusicVolume != 1.0 {
		t.Errorf("MusicVolume: got %v, want 1.0", settings.MusicVolume)
	}
	if settings.Muted {
		t.Error("Muted: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时只使用内存设置
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil, UserSettings{MusicVolume: 0.4})

	if got := sm.GetSettings().MusicVolume; got != 0.4 {
		t.Errorf("MusicVolume: got %v, want 0.4", got)
	}

	// 没有存储时 Save 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() without storage error: %v", err)
	}
}

// TestNewSettingsManagerClampsDefaults 默认值也需要限制范围
func TestNewSettingsManagerClampsDefaults(t *testing.T) {
	sm := NewSettingsManager(nil, UserSettings{MusicVolume: 3})
	if got := sm.GetSettings().MusicVolume; got != 1.0 {
		t.Errorf("MusicVolume: got %v, want 1.0", got)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	// 使用临时目录创建 gdata manager
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "test_aeiou_settings",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	sm1 := NewSettingsManager(gdataManager, *DefaultSettings())
	sm1.SetMusicVolume(0.5)
	sm1.GetSettings().Muted = true

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2 := NewSettingsManager(gdataManager, *DefaultSettings())
	settings := sm2.GetSettings()

	if settings.MusicVolume != 0.5 {
		t.Errorf("Loaded MusicVolume: got %v, want 0.5", settings.MusicVolume)
	}
	if !settings.Muted {
		t.Error("Loaded Muted: got false, want true")
	}
	if sm2.EffectiveVolume() != 0 {
		t.Errorf("EffectiveVolume while muted: got %v, want 0", sm2.EffectiveVolume())
	}
}

// TestSetMusicVolumeClamp 测试 SetMusicVolume 范围校验
func TestSetMusicVolumeClamp(t *testing.T) {
	sm := NewSettingsManager(nil, *DefaultSettings())

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetMusicVolume(tt.input)
		if sm.GetSettings().MusicVolume != tt.expected {
			t.Errorf("SetMusicVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().MusicVolume, tt.expected)
		}
		if sm.EffectiveVolume() != tt.expected {
			t.Errorf("EffectiveVolume after SetMusicVolume(%v): got %v, want %v",
				tt.input, sm.EffectiveVolume(), tt.expected)
		}
	}
}
