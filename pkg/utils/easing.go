package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制音量淡出的曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// Easing 缓动函数
type Easing func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快（淡出时前段音量保持得更久）
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// easingsByName 配置文件中可用的曲线名称
var easingsByName = map[string]Easing{
	"":          EaseLinear,
	"linear":    EaseLinear,
	"easeIn":    EaseInQuad,
	"easeOut":   EaseOutQuad,
	"easeInOut": EaseInOutCubic,
}

// EasingByName 根据名称查找缓动函数，空名称为线性
func EasingByName(name string) (Easing, bool) {
	e, ok := easingsByName[name]
	return e, ok
}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
