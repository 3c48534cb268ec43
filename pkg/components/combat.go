package components

// CombatComponent 战斗与移动属性
type CombatComponent struct {
	Damage         int     // 攻击力
	MoveSpeed      float32 // 每帧移动距离
	AttackSpeed    float64 // 攻击冷却（秒）
	AttackRange    float32 // 攻击距离
	LastAttackTime float64 // 上次攻击的时间戳（秒，模拟时钟）

	IsAttacking   bool // 攻击意图（玩家由按键驱动）
	IsInteracting bool // 交互意图
}
