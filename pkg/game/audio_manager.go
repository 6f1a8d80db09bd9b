package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/decker502/aeiou/pkg/utils"
)

// ErrNoTrack 播放时没有提供音轨
var ErrNoTrack = errors.New("audio manager: no track")

// fadeStep StopAndWait 推进淡出的步长，与游戏循环的帧长一致
const fadeStep = time.Second / 60

// PlaybackInstance 一次播放
// 重新播放时创建新的实例，旧实例被替换
type PlaybackInstance struct {
	id     uint64
	player Player
	status PlaybackStatus

	// 淡出状态
	fadeFrom    float64 // 淡出开始时的音量
	fadeElapsed float64 // 已经淡出的时间（秒）
	volume      float64 // 当前音量
}

// ID 实例编号，每次 Play 递增
func (pi *PlaybackInstance) ID() uint64 {
	return pi.id
}

// Status 实例状态
func (pi *PlaybackInstance) Status() PlaybackStatus {
	return pi.status
}

// AudioManager 音乐播放控制器
// 职责：
//   - 持有唯一的当前播放实例（可以为空）
//   - 实现 播放/暂停/恢复/停止 以及淡出过渡
//   - 每帧推进状态：开始排队的实例、推进淡出、检测播放结束
//
// 所有方法只在游戏主循环中调用，不需要加锁。
type AudioManager struct {
	settingsManager *SettingsManager // 音量设置，可为 nil
	instance        *PlaybackInstance
	nextID          uint64

	pauseFade float64      // 暂停淡出时长（秒）
	stopFade  float64      // 停止淡出时长（秒）
	fadeCurve utils.Easing // 淡出曲线
}

// NewAudioManager 创建音乐播放控制器
//
// 参数：
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(sm *SettingsManager) *AudioManager {
	return &AudioManager{
		settingsManager: sm,
		fadeCurve:       utils.EaseLinear,
	}
}

// SetFadeDurations 设置暂停与停止的淡出时长（秒），0 表示立即生效
func (am *AudioManager) SetFadeDurations(pause, stop float64) {
	am.pauseFade = max(pause, 0)
	am.stopFade = max(stop, 0)
}

// SetFadeCurve 设置淡出曲线，nil 表示线性
func (am *AudioManager) SetFadeCurve(curve utils.Easing) {
	if curve == nil {
		curve = utils.EaseLinear
	}
	am.fadeCurve = curve
}

// volume 当前应用的音量
func (am *AudioManager) volume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.EffectiveVolume()
	}
	return 1.0
}

// Play 从头播放音轨，替换当前实例
// 新实例处于 Queued 状态，在下一次 Update 时开始出声
func (am *AudioManager) Play(track TrackSource) (*PlaybackInstance, error) {
	if track == nil {
		return nil, ErrNoTrack
	}

	player, err := track.NewPlayer()
	if err != nil {
		return nil, fmt.Errorf("failed to start playback: %w", err)
	}

	am.release()

	am.nextID++
	volume := am.volume()
	player.SetVolume(volume)
	am.instance = &PlaybackInstance{
		id:     am.nextID,
		player: player,
		status: PlaybackQueued,
		volume: volume,
	}

	log.Printf("[AudioManager] Queued instance #%d (duration %v)", am.nextID, track.Duration())
	return am.instance, nil
}

// release 关闭被替换的旧实例
func (am *AudioManager) release() {
	if am.instance == nil {
		return
	}
	am.instance.player.Pause()
	if err := am.instance.player.Close(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to close instance #%d: %v", am.instance.id, err)
	}
	am.instance = nil
}

// Pause 暂停播放
// Playing → Pausing（有淡出）或 Paused；其他状态不变
func (am *AudioManager) Pause() {
	inst := am.instance
	if inst == nil || inst.status != PlaybackPlaying {
		return
	}
	if am.pauseFade > 0 {
		inst.startFade()
		inst.status = PlaybackPausing
		return
	}
	inst.player.Pause()
	inst.status = PlaybackPaused
}

// Resume 恢复播放
// Paused / Pausing / Queued → Playing，音量恢复
func (am *AudioManager) Resume() {
	inst := am.instance
	if inst == nil {
		return
	}
	switch inst.status {
	case PlaybackPaused, PlaybackPausing, PlaybackQueued:
		inst.setVolume(am.volume())
		inst.player.Play()
		inst.status = PlaybackPlaying
	}
}

// Stop 停止播放
// 正在出声的实例进入 Stopping（有淡出），否则直接 Stopped
func (am *AudioManager) Stop() {
	inst := am.instance
	if inst == nil {
		return
	}
	switch inst.status {
	case PlaybackStopped, PlaybackStopping:
		return
	case PlaybackPlaying, PlaybackPausing:
		if am.stopFade > 0 {
			inst.startFade()
			inst.status = PlaybackStopping
			return
		}
	}
	inst.player.Pause()
	inst.status = PlaybackStopped
}

// StopAndWait 停止播放并按 stopFade 淡出，阻塞直到实例进入 Stopped
// 游戏循环结束后调用，此时没有 Update 驱动淡出。
// sleep 在每个淡出步之间调用（通常为 time.Sleep），为 nil 时不等待。
func (am *AudioManager) StopAndWait(sleep func(time.Duration)) {
	am.Stop()
	for am.Status() == PlaybackStopping {
		am.Update(fadeStep.Seconds())
		if sleep != nil {
			sleep(fadeStep)
		}
	}
}

// Update 每帧推进播放状态
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (am *AudioManager) Update(deltaTime float64) {
	inst := am.instance
	if inst == nil {
		return
	}

	switch inst.status {
	case PlaybackQueued:
		inst.player.Play()
		inst.status = PlaybackPlaying
	case PlaybackPlaying:
		// 播放到结尾：播放器自行停止
		if !inst.player.IsPlaying() {
			inst.status = PlaybackStopped
			log.Printf("[AudioManager] Instance #%d reached the end", inst.id)
		}
	case PlaybackPausing:
		if am.advanceFade(inst, am.pauseFade, deltaTime) {
			inst.player.Pause()
			inst.status = PlaybackPaused
		}
	case PlaybackStopping:
		if am.advanceFade(inst, am.stopFade, deltaTime) {
			inst.player.Pause()
			inst.status = PlaybackStopped
		}
	}
}

// advanceFade 按淡出曲线降低音量，返回淡出是否完成
func (am *AudioManager) advanceFade(inst *PlaybackInstance, duration, deltaTime float64) bool {
	if duration <= 0 {
		return true
	}
	inst.fadeElapsed += deltaTime
	t := utils.Clamp01(inst.fadeElapsed / duration)
	inst.setVolume(utils.Lerp(inst.fadeFrom, 0, am.fadeCurve(t)))
	return t >= 1
}

// startFade 从当前音量开始一次新的淡出
func (pi *PlaybackInstance) startFade() {
	pi.fadeFrom = pi.volume
	pi.fadeElapsed = 0
}

// setVolume 设置播放器音量并记录
func (pi *PlaybackInstance) setVolume(volume float64) {
	pi.volume = volume
	pi.player.SetVolume(volume)
}

// Status 当前实例的状态；没有实例时视为 Stopped
func (am *AudioManager) Status() PlaybackStatus {
	if am.instance == nil {
		return PlaybackStopped
	}
	return am.instance.status
}

// Instance 当前播放实例，可能为 nil
func (am *AudioManager) Instance() *PlaybackInstance {
	return am.instance
}

// Position 当前播放位置（秒）
//
// 返回：
//   - float64: 播放位置
//   - bool: 位置是否可用（没有实例、Queued 或 Stopped 时不可用）
func (am *AudioManager) Position() (float64, bool) {
	inst := am.instance
	if inst == nil || !inst.status.HasPosition() {
		return 0, false
	}
	return inst.player.Position().Seconds(), true
}

// ApplyVolume 将当前音量设置应用到正在播放的实例
func (am *AudioManager) ApplyVolume() {
	if am.instance != nil && am.instance.status == PlaybackPlaying {
		am.instance.setVolume(am.volume())
	}
}

// Close 停止并释放当前实例
func (am *AudioManager) Close() {
	am.release()
}
