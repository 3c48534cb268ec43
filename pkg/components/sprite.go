package components

// SpriteComponent 实体的可渲染句柄
// 移除该组件即释放渲染资源，渲染系统不再绘制该实体
type SpriteComponent struct {
	Sheet string  // 图集资源名，如 "player"、"enemy"、"lightning"
	Scale float32 // 世界坐标下的显示尺寸
}
