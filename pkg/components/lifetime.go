package components

import "github.com/decker502/cryptfall/pkg/utils"

// BannerFadeTime 限时实体在最后这段时间内淡出（秒）
const BannerFadeTime = 0.5

// LifetimeComponent 限时实体的倒计时
// Remaining 归零时实体被删除
type LifetimeComponent struct {
	Duration  float64 // 总显示时长（秒）
	Remaining float64 // 剩余时间（秒）
}

// NewLifetimeComponent 创建一个满额倒计时
func NewLifetimeComponent(duration float64) *LifetimeComponent {
	return &LifetimeComponent{Duration: duration, Remaining: duration}
}

// Expired 倒计时是否结束
func (l *LifetimeComponent) Expired() bool {
	return l.Remaining <= 0
}

// Alpha 当前不透明度：最后 BannerFadeTime 秒线性降到 0
func (l *LifetimeComponent) Alpha() float64 {
	return utils.Lerp(0, 1, utils.EaseLinear(l.Remaining/BannerFadeTime))
}
