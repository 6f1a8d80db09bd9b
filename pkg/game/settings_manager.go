package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// UserSettings 用户设置
// 只有在配置中启用 storage 时才会读写磁盘
type UserSettings struct {
	MusicVolume float64 `yaml:"musicVolume"` // 音乐音量 0.0 ~ 1.0
	Muted       bool    `yaml:"muted"`       // 静音
}

// DefaultSettings 返回默认设置
func DefaultSettings() *UserSettings {
	return &UserSettings{
		MusicVolume: 1.0,
		Muted:       false,
	}
}

// SettingsManager 设置管理器
// 负责用户设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（仅内存设置）
	settings     *UserSettings  // 当前设置
	defaults     UserSettings   // 没有存档时使用的设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// OpenSettingsStorage 打开 gdata 存储
// appName 决定存储目录
func OpenSettingsStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage %s: %w", appName, err)
	}
	return m, nil
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（仅内存设置，不读写文件）
//   - defaults: 没有已保存设置时使用的值（通常来自 aeiou.yaml）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
func NewSettingsManager(gdataManager *gdata.Manager, defaults UserSettings) *SettingsManager {
	defaults.MusicVolume = clampVolume(defaults.MusicVolume)
	sm := &SettingsManager{
		gdataManager: gdataManager,
		defaults:     defaults,
	}
	sm.resetToDefaults()

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

func (sm *SettingsManager) resetToDefaults() {
	s := sm.defaults
	sm.settings = &s
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或没有存档，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.resetToDefaults()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.resetToDefaults()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := sm.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.resetToDefaults()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（不写文件，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量
//
// 音量值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// EffectiveVolume 返回实际应用到播放器的音量（静音时为 0）
func (sm *SettingsManager) EffectiveVolume() float64 {
	if sm.settings.Muted {
		return 0
	}
	return sm.settings.MusicVolume
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
