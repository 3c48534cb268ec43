package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 超出范围的进度先被截断

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseOutQuad 二次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = Clamp01(t)
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把数值限制在 [0, 1]，NaN 视为 0
func Clamp01(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return min(max(t, 0), 1)
}
