package components

// HealthComponent 存储实体的生命值信息
// 不变量：Health >= 0；IsAlive 只会从 true 变为 false 一次
type HealthComponent struct {
	Health  int  // 当前生命值
	IsAlive bool // 是否存活
}
