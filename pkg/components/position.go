package components

import "github.com/ungerik/go3d/vec3"

// PositionComponent 实体在世界中的位置
// X/Y 为平面坐标（Y 轴向上），Z 为渲染深度
type PositionComponent struct {
	Pos vec3.T
}
