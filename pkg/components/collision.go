package components

import "github.com/decker502/cryptfall/pkg/utils"

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒中心对齐实体位置，半宽高由精灵缩放推导（scale / 2）
type CollisionComponent struct {
	HalfWidth  float32
	HalfHeight float32
}

// BoxAt 返回实体位于 (x, y) 时的碰撞盒
func (c *CollisionComponent) BoxAt(x, y float32) utils.AABB {
	return utils.NewAABB(x, y, c.HalfWidth, c.HalfHeight)
}
