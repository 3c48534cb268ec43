package components

import "image/color"

// AuraComponent 以实体位置为圆心的范围效果可视化
type AuraComponent struct {
	Radius float32
	Color  color.RGBA
}
