package systems

import (
	"log"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/ecs"
	"github.com/decker502/aeiou/pkg/game"
	"github.com/decker502/aeiou/pkg/utils"
)

// PlaybackController 播放控制接口，由 *game.AudioManager 实现
type PlaybackController interface {
	Status() game.PlaybackStatus
	Play(track game.TrackSource) (*game.PlaybackInstance, error)
	Pause()
	Resume()
}

// PlaybackToggleSystem 空格键切换 播放/暂停
//
// 按下的那一帧根据当前状态执行一次切换：
//   - Paused / Pausing / Queued → 恢复播放，图标显示播放
//   - Playing → 暂停，图标显示暂停
//   - Stopped / Stopping → 从头重新播放，图标显示播放
type PlaybackToggleSystem struct {
	entityManager *ecs.EntityManager
	controller    PlaybackController
	track         game.TrackSource
	key           utils.KeyTrigger
}

// NewPlaybackToggleSystem 创建播放切换系统
//
// 参数：
//   - em: EntityManager 实例
//   - controller: 播放控制器
//   - track: 重新播放时使用的音轨
//   - key: 切换按键，JustPressed 为 true 的帧执行一次切换
func NewPlaybackToggleSystem(em *ecs.EntityManager, controller PlaybackController, track game.TrackSource, key utils.KeyTrigger) *PlaybackToggleSystem {
	return &PlaybackToggleSystem{
		entityManager: em,
		controller:    controller,
		track:         track,
		key:           key,
	}
}

// Update 采样按键，按下时执行一次切换
func (s *PlaybackToggleSystem) Update(deltaTime float64) {
	if s.key == nil || !s.key.JustPressed() {
		return
	}
	s.Toggle()
}

// Toggle 根据当前播放状态执行切换并更新图标
func (s *PlaybackToggleSystem) Toggle() {
	status := s.controller.Status()

	switch status {
	case game.PlaybackPaused, game.PlaybackPausing, game.PlaybackQueued:
		s.controller.Resume()
		s.setIcon(components.StatusIconPlaying)
	case game.PlaybackPlaying:
		s.controller.Pause()
		s.setIcon(components.StatusIconPaused)
	case game.PlaybackStopped, game.PlaybackStopping:
		if _, err := s.controller.Play(s.track); err != nil {
			log.Printf("[PlaybackToggleSystem] Failed to restart playback: %v", err)
			return
		}
		s.setIcon(components.StatusIconPlaying)
	}

	log.Printf("[PlaybackToggleSystem] %v -> %v", status, s.controller.Status())
}

// setIcon 设置所有状态图标的帧
func (s *PlaybackToggleSystem) setIcon(frame int) {
	for _, id := range ecs.GetEntitiesWith2[*components.StatusIconComponent, *components.SpriteSheetComponent](s.entityManager) {
		if sheet, ok := ecs.GetComponent[*components.SpriteSheetComponent](s.entityManager, id); ok {
			sheet.Index = frame
		}
	}
}
