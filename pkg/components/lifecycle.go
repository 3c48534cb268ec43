package components

// LifecycleComponent 实体生命周期标记
// StopUpdate 仅在死亡动画播放到最后一帧后置为 true，表示实体可被移除
type LifecycleComponent struct {
	StopUpdate bool
}
