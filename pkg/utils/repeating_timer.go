package utils

import "time"

// RepeatingTimer 重复计时器
//
// 每次 Tick 累加经过的时间；累计时间达到 Period 时完成一个周期，
// 余量保留到下一个周期。JustFinished 报告最近一次 Tick 是否完成了至少一个周期。
type RepeatingTimer struct {
	Period time.Duration

	elapsed       time.Duration
	timesFinished int
}

// NewRepeatingTimer 创建周期为 period 的重复计时器
func NewRepeatingTimer(period time.Duration) *RepeatingTimer {
	return &RepeatingTimer{Period: period}
}

// Tick 推进计时器
//
// 返回：
//   - bool: 本次推进是否完成了至少一个周期
func (t *RepeatingTimer) Tick(delta time.Duration) bool {
	t.timesFinished = 0
	if t.Period <= 0 || delta <= 0 {
		return false
	}

	t.elapsed += delta
	if t.elapsed >= t.Period {
		t.timesFinished = int(t.elapsed / t.Period)
		t.elapsed %= t.Period
	}
	return t.timesFinished > 0
}

// JustFinished 最近一次 Tick 是否完成了周期
func (t *RepeatingTimer) JustFinished() bool {
	return t.timesFinished > 0
}

// TimesFinished 最近一次 Tick 完成的周期数（帧率过低时可能大于 1）
func (t *RepeatingTimer) TimesFinished() int {
	return t.timesFinished
}

// Elapsed 当前周期内已经过的时间
func (t *RepeatingTimer) Elapsed() time.Duration {
	return t.elapsed
}

// Reset 清零计时器
func (t *RepeatingTimer) Reset() {
	t.elapsed = 0
	t.timesFinished = 0
}
