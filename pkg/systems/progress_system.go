package systems

import (
	"time"

	"github.com/decker502/aeiou/pkg/components"
	"github.com/decker502/aeiou/pkg/config"
	"github.com/decker502/aeiou/pkg/ecs"
)

// PositionSource 提供当前播放位置（秒），由 *game.AudioManager 实现
type PositionSource interface {
	Position() (float64, bool)
}

// ProgressMapping 播放位置到进度球 X 坐标的映射
//
//	x = Span * ((position / TrackLength) / Divisor) + Origin
type ProgressMapping struct {
	TrackLength float64
	Divisor     float64
	Span        float64
	Origin      float64
}

// NewProgressMapping 根据配置创建映射
// 开启 MeasureTrackLength 且测得的时长有效时，使用实际时长（秒）且不再除以 Divisor
func NewProgressMapping(cfg config.ProgressConfig, measured time.Duration) ProgressMapping {
	m := ProgressMapping{
		TrackLength: cfg.TrackLength,
		Divisor:     cfg.Divisor,
		Span:        cfg.Span,
		Origin:      cfg.Origin,
	}
	if cfg.MeasureTrackLength && measured > 0 {
		m.TrackLength = measured.Seconds()
		m.Divisor = 1
	}
	return m
}

// X 返回 position 对应的 X 坐标
func (m ProgressMapping) X(position float64) float64 {
	return ProgressOffset(position, m.TrackLength, m.Divisor, m.Span, m.Origin)
}

// ProgressOffset 计算进度球 X 坐标
func ProgressOffset(position, trackLength, divisor, span, origin float64) float64 {
	return span*((position/trackLength)/divisor) + origin
}

// ProgressSystem 每帧根据播放位置移动进度球
// 位置不可用（未开始或已停止）时保持原位
type ProgressSystem struct {
	entityManager *ecs.EntityManager
	source        PositionSource
	mapping       ProgressMapping
}

// NewProgressSystem 创建进度系统
func NewProgressSystem(em *ecs.EntityManager, source PositionSource, mapping ProgressMapping) *ProgressSystem {
	return &ProgressSystem{
		entityManager: em,
		source:        source,
		mapping:       mapping,
	}
}

// SetMapping 替换映射参数（配置热加载）
func (s *ProgressSystem) SetMapping(mapping ProgressMapping) {
	s.mapping = mapping
}

// Mapping 当前映射参数
func (s *ProgressSystem) Mapping() ProgressMapping {
	return s.mapping
}

// Update 更新进度球位置
func (s *ProgressSystem) Update(deltaTime float64) {
	position, ok := s.source.Position()
	if !ok {
		return
	}

	x := s.mapping.X(position)
	for _, id := range ecs.GetEntitiesWith2[*components.ProgressBallComponent, *components.TransformComponent](s.entityManager) {
		if transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok {
			transform.X = x
		}
	}
}
