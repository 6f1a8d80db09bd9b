package game

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// bytesPerFrame 解码后的 PCM 为 16 位立体声，每帧 4 字节
const bytesPerFrame = 4

// Player 播放器接口
// *audio.Player 实现了该接口；测试中使用替身实现
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Position() time.Duration
	SetVolume(volume float64)
	Close() error
}

// TrackSource 可以创建播放器的音轨
type TrackSource interface {
	// NewPlayer 创建一个从头开始的新播放器
	NewPlayer() (Player, error)
	// Duration 音轨总时长
	Duration() time.Duration
}

// Track 已加载到内存的音乐
//
// 保存的是编码后的文件数据，每次 NewPlayer 都重新解码一个流，
// 因此重新播放会得到一个全新的、从头开始的播放实例。
// 音乐不循环：播放到结尾后播放器停止。
type Track struct {
	path         string
	data         []byte
	ext          string
	audioContext *audio.Context
	length       int64 // 解码后的 PCM 字节数
}

// decodeStream 根据扩展名解码音频，重采样到上下文采样率
func decodeStream(ext string, sampleRate int, data []byte) (io.ReadSeeker, int64, error) {
	reader := bytes.NewReader(data)

	switch ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio: %w", err)
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio: %w", err)
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode WAV audio: %w", err)
		}
		return s, s.Length(), nil
	}
	return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
}

// newTrack 解码一次音频以验证格式并测量时长
func newTrack(audioContext *audio.Context, path string, data []byte) (*Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	_, length, err := decodeStream(ext, audioContext.SampleRate(), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Track{
		path:         path,
		data:         data,
		ext:          ext,
		audioContext: audioContext,
		length:       length,
	}, nil
}

// Path 音轨文件路径
func (t *Track) Path() string {
	return t.path
}

// Duration 音轨总时长（由解码后的 PCM 长度计算）
func (t *Track) Duration() time.Duration {
	rate := int64(t.audioContext.SampleRate())
	if rate <= 0 {
		return 0
	}
	return time.Duration(t.length) * time.Second / time.Duration(rate*bytesPerFrame)
}

// NewPlayer 创建一个新的播放器（尚未开始播放）
func (t *Track) NewPlayer() (Player, error) {
	stream, _, err := decodeStream(t.ext, t.audioContext.SampleRate(), t.data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.path, err)
	}
	player, err := t.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", t.path, err)
	}
	return player, nil
}
