package utils

import (
	"github.com/ungerik/go3d/vec2"
	"github.com/ungerik/go3d/vec3"
)

// AABB 轴对齐包围盒（世界坐标，Y 轴向上）
type AABB struct {
	Min vec2.T
	Max vec2.T
}

// NewAABB 以中心点和半宽高构造包围盒
func NewAABB(centerX, centerY, halfWidth, halfHeight float32) AABB {
	return AABB{
		Min: vec2.T{centerX - halfWidth, centerY - halfHeight},
		Max: vec2.T{centerX + halfWidth, centerY + halfHeight},
	}
}

// Intersects 检查两个包围盒是否相交
// 边界接触同样视为相交
func (b AABB) Intersects(other AABB) bool {
	return !(other.Max[0] < b.Min[0] || other.Min[0] > b.Max[0] ||
		other.Max[1] < b.Min[1] || other.Min[1] > b.Max[1])
}

// IntersectsAny 检查包围盒是否与任意一个障碍相交
// 障碍集合为空时返回 false
func (b AABB) IntersectsAny(obstacles []AABB) bool {
	for _, o := range obstacles {
		if b.Intersects(o) {
			return true
		}
	}
	return false
}

// PlanarDelta 返回 to - from 在 XY 平面上的分量（忽略深度）
func PlanarDelta(from, to *vec3.T) vec2.T {
	return vec2.T{to[0] - from[0], to[1] - from[1]}
}

// PlanarDistance 返回两点在 XY 平面上的欧氏距离
// 所有角色共享同一深度，因此与三维距离一致
func PlanarDistance(a, b *vec3.T) float32 {
	d := PlanarDelta(a, b)
	return d.Length()
}
