package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/decker502/aeiou/pkg/utils"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
// 对应 data/aeiou.yaml，可通过 -config 参数用磁盘文件覆盖
type AppConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Audio     AudioConfig     `yaml:"audio"`
	Animation AnimationConfig `yaml:"animation"`
	Progress  ProgressConfig  `yaml:"progress"`
	Storage   StorageConfig   `yaml:"storage"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	Resizable     bool   `yaml:"resizable"`
	CursorVisible bool   `yaml:"cursorVisible"`
}

// AudioConfig 音频设置
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"` // 音频上下文采样率
	Volume     float64 `yaml:"volume"`     // 音乐音量 0.0 ~ 1.0
	PauseFade  float64 `yaml:"pauseFade"`  // 暂停淡出时长（秒），0 表示立即暂停
	StopFade   float64 `yaml:"stopFade"`   // 停止淡出时长（秒），0 表示立即停止
	FadeCurve  string  `yaml:"fadeCurve"`  // 淡出曲线：linear / easeIn / easeOut / easeInOut
}

// AnimationConfig 背景动画设置
type AnimationConfig struct {
	FrameCount int `yaml:"frameCount"` // 循环帧数
	PeriodMs   int `yaml:"periodMs"`   // 每帧时长（毫秒）
}

// Period 返回每帧时长
func (c AnimationConfig) Period() time.Duration {
	return time.Duration(c.PeriodMs) * time.Millisecond
}

// ProgressConfig 进度球映射参数
//
// x = Span * ((position / TrackLength) / Divisor) + Origin
//
// TrackLength 与 Divisor 保留了原始映射的取值（1824 与 100）。
// MeasureTrackLength 为 true 时改用加载时测得的音乐时长（秒），且不再除以 Divisor。
type ProgressConfig struct {
	TrackLength        float64 `yaml:"trackLength"`
	Divisor            float64 `yaml:"divisor"`
	Span               float64 `yaml:"span"`
	Origin             float64 `yaml:"origin"`
	MeasureTrackLength bool    `yaml:"measureTrackLength"`
}

// StorageConfig 用户设置持久化
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"` // 关闭时不写任何文件
	AppName string `yaml:"appName"` // gdata 应用名（决定存储目录）
}

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid app config")

// DefaultAppConfig 返回默认配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:         GameWindowWidth,
			Height:        GameWindowHeight,
			Title:         GameWindowTitle,
			Resizable:     false,
			CursorVisible: false,
		},
		Audio: AudioConfig{
			SampleRate: 48000,
			Volume:     1.0,
			FadeCurve:  "linear",
		},
		Animation: AnimationConfig{
			FrameCount: BackgroundFrameCount,
			PeriodMs:   100,
		},
		Progress: ProgressConfig{
			TrackLength: 1824,
			Divisor:     100,
			Span:        482,
			Origin:      TrackY,
		},
		Storage: StorageConfig{
			Enabled: false,
			AppName: "aeiou",
		},
	}
}

// ParseAppConfig 解析 YAML 配置
// 未出现在 YAML 中的字段保留默认值
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	if err := validateAppConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAppConfig 从磁盘加载配置文件
func LoadAppConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config %s: %w", path, err)
	}
	cfg, err := ParseAppConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// validateAppConfig 校验必须为正数的字段
func validateAppConfig(cfg *AppConfig) error {
	switch {
	case cfg.Window.Width <= 0 || cfg.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, cfg.Window.Width, cfg.Window.Height)
	case cfg.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, cfg.Audio.SampleRate)
	case cfg.Audio.Volume < 0 || cfg.Audio.Volume > 1:
		return fmt.Errorf("%w: volume must be within [0, 1], got %v", ErrInvalidConfig, cfg.Audio.Volume)
	case cfg.Audio.PauseFade < 0 || cfg.Audio.StopFade < 0:
		return fmt.Errorf("%w: fade durations must not be negative", ErrInvalidConfig)
	case !validFadeCurve(cfg.Audio.FadeCurve):
		return fmt.Errorf("%w: unknown fade curve %q", ErrInvalidConfig, cfg.Audio.FadeCurve)
	case cfg.Animation.FrameCount <= 0 || cfg.Animation.PeriodMs <= 0:
		return fmt.Errorf("%w: animation frame count and period must be positive", ErrInvalidConfig)
	case cfg.Progress.TrackLength <= 0 || cfg.Progress.Divisor <= 0:
		return fmt.Errorf("%w: progress track length and divisor must be positive", ErrInvalidConfig)
	}
	return nil
}

// validFadeCurve 淡出曲线名称是否有效
func validFadeCurve(name string) bool {
	_, ok := utils.EasingByName(name)
	return ok
}
