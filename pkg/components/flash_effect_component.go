package components

import (
	"image/color"

	"github.com/decker502/cryptfall/pkg/utils"
)

// FlashEffectComponent 受击闪烁
// 挂在被击中的实体上，实体被删除时效果随之消失，不会残留延迟回调
type FlashEffectComponent struct {
	Duration float64    // 闪烁总时长（秒）
	Elapsed  float64    // 已经过的时间（秒），再次受击时归零
	Tint     color.RGBA // 闪烁颜色
}

// Done 闪烁是否结束
func (f *FlashEffectComponent) Done() bool {
	return f.Elapsed >= f.Duration
}

// CurrentTint 当前着色：从 Tint 缓出恢复到白色（原色）
func (f *FlashEffectComponent) CurrentTint() color.RGBA {
	t := 1.0
	if f.Duration > 0 {
		t = utils.EaseOutQuad(f.Elapsed / f.Duration)
	}
	mix := func(c uint8) uint8 {
		return uint8(utils.Lerp(float64(c), 255, t))
	}
	return color.RGBA{R: mix(f.Tint.R), G: mix(f.Tint.G), B: mix(f.Tint.B), A: 255}
}
